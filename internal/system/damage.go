// internal/system/damage.go
package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/interfaces"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

// HealthSystem — единственная точка нанесения урона и наложения статусов на врагов.
type HealthSystem struct {
	ecs             *entity.ECS
	economy         interfaces.Economy
	eventDispatcher *event.Dispatcher
}

func NewHealthSystem(ecs *entity.ECS, economy interfaces.Economy, eventDispatcher *event.Dispatcher) *HealthSystem {
	return &HealthSystem{ecs: ecs, economy: economy, eventDispatcher: eventDispatcher}
}

// ResolveDamage applies the resistance rule: damage is halved only when the
// batch left resistance enabled and the element belongs to the resisted family.
func ResolveDamage(amount float64, enemyType defs.EnemyType, resistance bool, element defs.ElementType) float64 {
	if amount < 0 {
		return 0
	}
	if resistance && enemyType.Resists(element) {
		return amount * config.ResistanceFactor
	}
	return amount
}

// TakeDamage наносит урон врагу и возвращает фактически нанесённый урон.
// Мёртвые и удалённые враги урон игнорируют.
func (s *HealthSystem) TakeDamage(id types.EntityID, amount float64, element defs.ElementType) float64 {
	if !s.ecs.IsLiveEnemy(id) {
		return 0
	}
	enemy := s.ecs.Enemies[id]
	health, ok := s.ecs.Healths[id]
	if !ok {
		return 0
	}

	dealt := ResolveDamage(amount, enemy.Type, enemy.Resistance, element)
	health.Value -= dealt
	if health.Value < 0 {
		health.Value = 0
	}

	pos := s.position(id)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyHit,
		Data: event.EnemyHitData{EnemyID: id, Damage: dealt, Element: element, Position: pos},
	})

	if health.Value <= 0 {
		enemy.IsDead = true
		s.ecs.RemoveEntity(id)
		s.economy.AddGold(enemy.Reward)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{EnemyID: id, Type: enemy.Type, Reward: enemy.Reward, Position: pos},
		})
	}
	return dealt
}

func (s *HealthSystem) ApplySlow(id types.EntityID, factor, duration float64) {
	if st, ok := s.statuses(id); ok {
		st.ApplySlow(factor, duration)
	}
}

func (s *HealthSystem) ApplyBurn(id types.EntityID, damagePerTick, duration float64) {
	if st, ok := s.statuses(id); ok {
		st.ApplyBurn(damagePerTick, duration)
	}
}

func (s *HealthSystem) ApplyShock(id types.EntityID, duration float64) {
	if st, ok := s.statuses(id); ok {
		st.ApplyShock(duration)
	}
}

// ApplySecondary накладывает эффекты, которые следуют из состава стихии:
// огонь поджигает, лёд замедляет, молния оглушает.
func (s *HealthSystem) ApplySecondary(id types.EntityID, element defs.ElementType, stats defs.CombatStats) {
	if element.Contains(defs.Fire) && stats.BurnDamage > 0 {
		s.ApplyBurn(id, stats.BurnDamage, config.BurnDuration)
	}
	if element.Contains(defs.Ice) && stats.SlowAmount > 0 {
		s.ApplySlow(id, stats.SlowAmount, stats.SlowDuration)
	}
	if element.Contains(defs.Lightning) {
		s.ApplyShock(id, config.ShockDuration)
	}
}

func (s *HealthSystem) statuses(id types.EntityID) (*component.StatusEffects, bool) {
	if !s.ecs.IsLiveEnemy(id) {
		return nil, false
	}
	st, ok := s.ecs.StatusEffects[id]
	return st, ok
}

func (s *HealthSystem) position(id types.EntityID) geom.Vec2 {
	if pos, ok := s.ecs.Positions[id]; ok {
		return *pos
	}
	return geom.Vec2{}
}
