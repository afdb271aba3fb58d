// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	vector.FillCircle(screen, b.X, b.Y, size*1.5, color.RGBA{30, 30, 45, 230}, true)
	vector.StrokeCircle(screen, b.X, b.Y, size*1.5, 1, color.White, true)

	if b.IsPaused {
		// треугольник (play) контуром
		x0, x1 := b.X-size*0.5, b.X+size*0.7
		y0, y1 := b.Y-size*0.7, b.Y+size*0.7
		vector.StrokeLine(screen, x0, y0, x0, y1, 2.5, b.PlayColor, true)
		vector.StrokeLine(screen, x0, y0, x1, b.Y, 2.5, b.PlayColor, true)
		vector.StrokeLine(screen, x0, y1, x1, b.Y, 2.5, b.PlayColor, true)
		return
	}
	// два прямоугольника (pause)
	width := size * 0.35
	height := size * 1.4
	spacing := size * 0.3
	vector.FillRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.FillRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

func (b *PauseButton) IsClicked(x, y float32) bool {
	dx, dy := x-b.X, y-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
