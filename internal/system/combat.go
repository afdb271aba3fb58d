package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
	"elemental-td/pkg/utils"
)

// CombatSystem управляет прицеливанием и атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	health          *HealthSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, health *HealthSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		health:          health,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower, ok := s.ecs.Towers[id]
		if !ok {
			continue
		}
		if !s.hasValidTarget(id, tower) {
			tower.TargetID = s.acquireTarget(id, tower)
		}

		if tower.TargetID != 0 && tower.Cooldown <= config.TimerEpsilon {
			// Цель могла погибнуть от башни, отработавшей раньше в этом же тике.
			if s.hasValidTarget(id, tower) {
				s.fire(id, tower)
			} else {
				tower.TargetID = 0
			}
			tower.Cooldown = 1.0 / tower.Stats.FireRate
		}
		tower.Cooldown = utils.Countdown(tower.Cooldown, deltaTime)
	}
}

// hasValidTarget: цель жива и в пределах дальности.
func (s *CombatSystem) hasValidTarget(id types.EntityID, tower *component.Tower) bool {
	if !s.ecs.IsLiveEnemy(tower.TargetID) {
		return false
	}
	towerPos, ok := s.ecs.Positions[id]
	if !ok {
		return false
	}
	targetPos, ok := s.ecs.Positions[tower.TargetID]
	return ok && towerPos.Dist(*targetPos) <= tower.Stats.Range
}

// acquireTarget выбирает ближайшего живого врага; он принимается, только если
// находится в пределах дальности.
func (s *CombatSystem) acquireTarget(id types.EntityID, tower *component.Tower) types.EntityID {
	towerPos, ok := s.ecs.Positions[id]
	if !ok {
		return 0
	}
	nearest, dist, found := s.ecs.NearestEnemy(*towerPos, nil)
	if !found || dist > tower.Stats.Range {
		return 0
	}
	return nearest
}

func (s *CombatSystem) fire(id types.EntityID, tower *component.Tower) {
	from := *s.ecs.Positions[id]
	to := *s.ecs.Positions[tower.TargetID]
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerFired,
		Data: event.TowerFiredData{TowerID: id, TargetID: tower.TargetID, Element: tower.Element, From: from, To: to},
	})

	switch {
	case tower.Element.Contains(defs.Lightning):
		s.chainAttack(tower, from)
	case tower.Element == defs.Ice:
		s.pulseAttack(tower, from, tower.Stats.SlowAmount, config.IcePulseSlowDuration)
	case tower.Element == defs.IceIce:
		s.pulseAttack(tower, from, config.DeepFreezeFactor, config.DeepFreezeDuration)
	default:
		// Fire, FireFire, FireIce и всё остальное летит снарядом.
		s.createProjectile(id, tower, from)
	}
}
