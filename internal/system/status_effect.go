// internal/system/status_effect.go
package system

import (
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
)

// StatusEffectSystem продвигает таймеры эффектов и наносит урон от горения.
type StatusEffectSystem struct {
	ecs    *entity.ECS
	health *HealthSystem
}

func NewStatusEffectSystem(ecs *entity.ECS, health *HealthSystem) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, health: health}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.StatusEffects) {
		if !s.ecs.IsLiveEnemy(id) {
			continue
		}
		if burn := s.ecs.StatusEffects[id].Tick(deltaTime); burn > 0 {
			// Горение — огненный урон, гранты его режут.
			s.health.TakeDamage(id, burn, defs.Fire)
		}
	}
}
