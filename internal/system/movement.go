// internal/system/movement.go
package system

import (
	"elemental-td/internal/config"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/interfaces"
	"elemental-td/internal/types"
)

// MovementSystem ведёт врагов по пути и обрабатывает прорыв к концу пути.
type MovementSystem struct {
	ecs             *entity.ECS
	base            interfaces.Base
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, base interfaces.Base, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, base: base, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.LiveEnemies() {
		follower, hasPath := s.ecs.Paths[id]
		vel, hasVel := s.ecs.Velocities[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPath || !hasVel || !hasPos {
			continue
		}

		speed := vel.Speed
		if st, ok := s.ecs.StatusEffects[id]; ok {
			speed *= st.SpeedMultiplier()
		}
		follower.Distance += speed * deltaTime

		if follower.Remaining() <= config.TimerEpsilon {
			*pos = follower.Path.End()
			s.reachEnd(id)
			continue
		}
		*pos = follower.Path.PositionAt(follower.Distance)
	}
}

// reachEnd: враг дошёл до конца. Награды нет, база теряет здоровье.
func (s *MovementSystem) reachEnd(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	enemy.ReachedEnd = true
	s.ecs.RemoveEntity(id)
	s.base.ReduceHealth(config.LeakPenalty)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyReachedEnd,
		Data: event.EnemyReachedEndData{EnemyID: id, Type: enemy.Type, Penalty: config.LeakPenalty},
	})
}
