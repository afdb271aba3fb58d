// internal/component/visual.go
package component

import (
	"elemental-td/internal/defs"
	"elemental-td/pkg/geom"
)

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer   float64 // сколько времени осталось
	Element defs.ElementType
}

// Laser — дуга молнии между двумя точками.
type Laser struct {
	From, To geom.Vec2
	Element  defs.ElementType
	Timer    float64 // сколько времени осталось
	Duration float64
}

// Pulse — расходящееся кольцо ледяного импульса.
type Pulse struct {
	Center    geom.Vec2
	MaxRadius float64
	Element   defs.ElementType
	Timer     float64 // сколько времени прошло
	Duration  float64
}

// Progress returns how far the pulse animation is, 0..1.
func (p *Pulse) Progress() float64 {
	if p.Duration <= 0 {
		return 1
	}
	t := p.Timer / p.Duration
	if t > 1 {
		return 1
	}
	return t
}
