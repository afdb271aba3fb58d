// internal/utils/math.go
package utils

import (
	"elemental-td/internal/config"
	"elemental-td/pkg/geom"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// WorldToScreen переводит мировые координаты в пиксели окна.
func WorldToScreen(p geom.Vec2) (float32, float32) {
	return float32(config.WorldOffsetX + p.X*config.WorldScale),
		float32(config.WorldOffsetY + p.Y*config.WorldScale)
}

// ScreenToWorld — обратное преобразование, для кликов мышью.
func ScreenToWorld(x, y float64) geom.Vec2 {
	return geom.Vec2{
		X: (x - config.WorldOffsetX) / config.WorldScale,
		Y: (y - config.WorldOffsetY) / config.WorldScale,
	}
}
