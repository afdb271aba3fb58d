// internal/system/attacks.go
package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

// pulseAttack бьёт всех врагов в радиусе башни и замедляет их.
func (s *CombatSystem) pulseAttack(tower *component.Tower, center geom.Vec2, slowFactor, slowDuration float64) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.IcePulse,
		Data: event.IcePulseData{Center: center, Radius: tower.Stats.Range, Element: tower.Element},
	})
	for _, enemyID := range s.ecs.EnemiesWithin(center, tower.Stats.Range) {
		s.health.TakeDamage(enemyID, tower.Stats.Damage, tower.Element)
		s.health.ApplySlow(enemyID, slowFactor, slowDuration)
	}
}

// chainAttack — цепная молния. Каждый прыжок идёт к ближайшему ещё не
// задетому врагу в радиусе отскока от последнего поражённого.
func (s *CombatSystem) chainAttack(tower *component.Tower, from geom.Vec2) {
	damage := tower.Stats.Damage
	hopCap := config.ChainHopCap
	if tower.Element == defs.LightningLightning {
		damage *= config.OverloadFactor
		hopCap = config.ChainUnlimited
	}

	hit := make(map[types.EntityID]bool)
	current := tower.TargetID
	prev := from
	for hop := 0; ; hop++ {
		pos := *s.ecs.Positions[current]
		hit[current] = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ChainArc,
			Data: event.ChainArcData{From: prev, To: pos, Element: tower.Element, Hop: hop},
		})
		s.health.TakeDamage(current, damage, tower.Element)
		s.health.ApplySecondary(current, tower.Element, tower.Stats)
		prev = pos

		if hopCap != config.ChainUnlimited && hop >= hopCap {
			break
		}
		next, dist, ok := s.ecs.NearestEnemy(pos, func(id types.EntityID) bool { return hit[id] })
		if !ok || dist > config.ChainBounceRadius {
			break
		}
		current = next
	}

	// Завершение цепи: бонус по последней цели.
	switch tower.Element {
	case defs.FireLightning:
		for _, id := range s.ecs.EnemiesWithin(prev, config.SplashRadius) {
			s.health.ApplyBurn(id, tower.Stats.BurnDamage, config.BurnDuration)
		}
	case defs.IceLightning:
		s.health.ApplySlow(current, config.DeepFreezeFactor, config.ChainFreezeDuration)
	}
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, tower *component.Tower, from geom.Vec2) {
	projID := s.ecs.NewEntity()
	pos := from
	s.ecs.Positions[projID] = &pos
	s.ecs.Projectiles[projID] = &component.Projectile{
		SourceID: towerID,
		TargetID: tower.TargetID,
		Speed:    config.ProjectileSpeed,
		Damage:   tower.Stats.Damage,
		Element:  tower.Element,
		Stats:    tower.Stats,
		Splash:   tower.Element == defs.FireFire,
	}
}
