// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 4
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 3.0
)

var (
	healthFullColor  = color.RGBA{70, 130, 220, 255}
	healthLowColor   = color.RGBA{220, 50, 50, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
	goldColor        = color.RGBA{255, 215, 0, 255}
)

// PlayerHealthIndicator отображает здоровье базы сеткой кружков и золото под ней.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// cellColor: пустые ячейки черные; при здоровье не выше половины все красные,
// иначе "избыток" синий, остальное красное.
func cellColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return healthEmptyColor
	}
	half := maxHealth / 2
	if health <= half || j >= health-half {
		return healthLowColor
	}
	return healthFullColor
}

// Draw рисует индикатор здоровья игрока в виде сетки кружков.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth, gold int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	DrawText(screen, label, float64(i.X), float64(i.Y)-LineHeight-2, color.White)

	for j := 0; j < maxHealth; j++ {
		row := j / HealthCols
		col := j % HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius
		vector.FillCircle(screen, cx, cy, HealthCircleRadius, cellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	DrawText(screen, "gold "+strconv.Itoa(gold), float64(i.X), float64(i.Y+i.Height(maxHealth))+4, goldColor)
}

// Height возвращает высоту сетки.
func (i *PlayerHealthIndicator) Height(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return float32(rows) * float32(HealthCircleRadius*2+HealthCircleSpacing)
}
