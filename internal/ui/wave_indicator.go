// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"elemental-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float64
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		BossColor:        config.UIColorRed,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveLabel — подпись вида "III / X".
func WaveLabel(wave, total int) string {
	if wave <= 0 {
		return ""
	}
	if total <= 0 {
		return toRoman(wave)
	}
	return toRoman(wave) + " / " + toRoman(total)
}

// Draw отрисовывает индикатор; boss — в волне есть босс.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int, boss bool) {
	label := WaveLabel(wave, total)
	if label == "" {
		return
	}
	textColor := i.Color
	if boss {
		textColor = i.BossColor
	}

	w, h := MeasureText(label)
	x := i.X - w/2
	y := i.Y - h/2

	// обводка
	t := i.OutlineThickness
	for dy := -t; dy <= t; dy++ {
		for dx := -t; dx <= t; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, label, x+float64(dx), y+float64(dy), i.OutlineColor)
		}
	}
	DrawText(screen, label, x, y, textColor)
}
