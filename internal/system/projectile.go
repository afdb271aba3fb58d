// internal/system/projectile.go
package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/entity"
	"elemental-td/internal/types"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs    *entity.ECS
	health *HealthSystem
}

func NewProjectileSystem(ecs *entity.ECS, health *HealthSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, health: health}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}

		// Цель пропала — снаряд исчезает, повторного выстрела нет.
		if !s.ecs.IsLiveEnemy(proj.TargetID) {
			s.ecs.RemoveEntity(id)
			continue
		}
		targetPos := *s.ecs.Positions[proj.TargetID]

		next, arrived := pos.MoveTowards(targetPos, proj.Speed*deltaTime)
		*pos = next
		if arrived || next.Dist(targetPos) <= config.ProjectileHitRadius {
			s.hitTarget(proj)
			s.ecs.RemoveEntity(id)
		}
	}
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile) {
	center := *s.ecs.Positions[proj.TargetID]
	var neighbours []types.EntityID
	if proj.Splash {
		// Соседей собираем до удара: цель может погибнуть и исчезнуть из реестра.
		for _, id := range s.ecs.EnemiesWithin(center, config.SplashRadius) {
			if id != proj.TargetID {
				neighbours = append(neighbours, id)
			}
		}
	}

	s.health.TakeDamage(proj.TargetID, proj.Damage, proj.Element)
	s.health.ApplySecondary(proj.TargetID, proj.Element, proj.Stats)

	for _, id := range neighbours {
		s.health.TakeDamage(id, proj.Damage*config.SplashFactor, proj.Element)
		s.health.ApplyBurn(id, proj.Stats.BurnDamage*config.SplashFactor, config.BurnDuration)
	}
}
