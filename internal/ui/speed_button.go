// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает множитель скорости. Число шевронов равно
// номеру состояния.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)
	clr := b.StateColors[b.CurrentState]

	vector.FillCircle(screen, b.X, b.Y, size*1.5, color.RGBA{30, 30, 45, 230}, true)
	vector.StrokeCircle(screen, b.X, b.Y, size*1.5, 1, color.White, true)

	chevrons := b.CurrentState + 1
	step := size * 0.5
	startX := b.X - step*float32(chevrons-1)/2 - size*0.25
	for i := 0; i < chevrons; i++ {
		x := startX + float32(i)*step
		vector.StrokeLine(screen, x, b.Y-size*0.6, x+size*0.5, b.Y, 2.5, clr, true)
		vector.StrokeLine(screen, x+size*0.5, b.Y, x, b.Y+size*0.6, 2.5, clr, true)
	}
}

// IsClicked — круг, так как форма сложная
func (b *SpeedButton) IsClicked(x, y float32) bool {
	dx, dy := x-b.X, y-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) SetState(state int) {
	if len(b.StateColors) == 0 {
		return
	}
	b.CurrentState = state % len(b.StateColors)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
