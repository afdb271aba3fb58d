// internal/system/visual_effect.go
package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
)

// VisualEffectSystem превращает боевые события в короткоживущие эффекты:
// дуги молний, кольца ледяных импульсов и вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.ChainArc, s)
	eventDispatcher.Subscribe(event.IcePulse, s)
	eventDispatcher.Subscribe(event.EnemyHit, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ChainArcData:
		id := s.ecs.NewEntity()
		s.ecs.Lasers[id] = &component.Laser{
			From:     data.From,
			To:       data.To,
			Element:  data.Element,
			Timer:    config.LaserDuration,
			Duration: config.LaserDuration,
		}
	case event.IcePulseData:
		id := s.ecs.NewEntity()
		s.ecs.Pulses[id] = &component.Pulse{
			Center:    data.Center,
			MaxRadius: data.Radius,
			Element:   data.Element,
			Duration:  config.PulseDuration,
		}
	case event.EnemyHitData:
		// Враг мог погибнуть от этого удара — вспышку рисовать некому.
		if s.ecs.IsLiveEnemy(data.EnemyID) {
			s.ecs.DamageFlashes[data.EnemyID] = &component.DamageFlash{
				Timer:   config.DamageFlashDuration,
				Element: data.Element,
			}
		}
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 || !s.ecs.IsLiveEnemy(id) {
			delete(s.ecs.DamageFlashes, id)
		}
	}
	for id, laser := range s.ecs.Lasers {
		laser.Timer -= deltaTime
		if laser.Timer <= 0 {
			delete(s.ecs.Lasers, id)
		}
	}
	for id, pulse := range s.ecs.Pulses {
		pulse.Timer += deltaTime
		if pulse.Timer >= pulse.Duration {
			delete(s.ecs.Pulses, id)
		}
	}
}

// Clear убирает все эффекты, например при перезапуске уровня.
func (s *VisualEffectSystem) Clear() {
	clear(s.ecs.DamageFlashes)
	clear(s.ecs.Lasers)
	clear(s.ecs.Pulses)
}
