// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"elemental-td/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	idleStateColor      = color.RGBA{70, 180, 90, 255}
	spawningStateColor  = color.RGBA{220, 60, 60, 255}
	exhaustedStateColor = color.RGBA{120, 120, 120, 255}
)

// PhaseColor — цвет индикатора для фазы планировщика волн.
func PhaseColor(phase system.WavePhase) color.RGBA {
	switch phase {
	case system.WaveSpawning:
		return spawningStateColor
	case system.WaveExhausted:
		return exhaustedStateColor
	default:
		return idleStateColor
	}
}

// StateIndicator — круглый индикатор фазы волны. Клик по нему запускает
// следующую волну досрочно.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.FillCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y float32) bool {
	dx, dy := x-i.X, y-i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

// HandleClick запоминает время клика для анимации.
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
