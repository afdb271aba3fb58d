// internal/ui/countdown_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CountdownIndicator — полоса отсчёта до следующей волны и ряд
// прямоугольников пройденных волн.
type CountdownIndicator struct {
	X, Y float32
}

const (
	barWidth    = 118
	barHeight   = 12
	pipWidth    = 10
	pipHeight   = 10
	pipGap      = 4
	borderWidth = 1
)

var (
	barColorFill = color.RGBA{70, 100, 120, 220}
	borderColor  = color.White
)

func NewCountdownIndicator(x, y float32) *CountdownIndicator {
	return &CountdownIndicator{X: x, Y: y}
}

// FillRatio — доля прошедшего ожидания, 0..1.
func FillRatio(remaining, full float64) float64 {
	if full <= 0 {
		return 1
	}
	r := 1 - remaining/full
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Draw отрисовывает индикатор. При remaining <= 0 полоса не показывается.
func (i *CountdownIndicator) Draw(screen *ebiten.Image, remaining, full float64, cleared, total int) {
	if remaining > 0 {
		vector.StrokeRect(screen, i.X, i.Y, barWidth, barHeight, borderWidth, borderColor, true)
		fillWidth := float32(float64(barWidth-borderWidth*2) * FillRatio(remaining, full))
		if fillWidth > 0 {
			vector.FillRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, barHeight-borderWidth*2, barColorFill, true)
		}
		DrawText(screen, fmt.Sprintf("%.0fs", remaining), float64(i.X+barWidth+6), float64(i.Y)-2, color.White)
	}

	pipY := i.Y + barHeight + 8
	for j := 0; j < total; j++ {
		x := i.X + float32(j)*(pipWidth+pipGap)
		vector.StrokeRect(screen, x, pipY, pipWidth, pipHeight, borderWidth, borderColor, true)
		if j < cleared {
			vector.FillRect(screen, x+borderWidth, pipY+borderWidth, pipWidth-borderWidth*2, pipHeight-borderWidth*2, barColorFill, true)
		}
	}
}
