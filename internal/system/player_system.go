// internal/system/player_system.go
package system

import (
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
)

// PlayerSystem хранит золото и здоровье базы. Реализует interfaces.Economy и interfaces.Base.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	defeated        bool
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, gold, health int) *PlayerSystem {
	s := &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	s.Reset(gold, health)
	return s
}

// Reset restores the starting balance without emitting events.
func (s *PlayerSystem) Reset(gold, health int) {
	s.ecs.PlayerState.Gold = gold
	s.ecs.PlayerState.Health = health
	s.defeated = false
}

func (s *PlayerSystem) Gold() int   { return s.ecs.PlayerState.Gold }
func (s *PlayerSystem) Health() int { return s.ecs.PlayerState.Health }

// SpendGold списывает золото, только если его хватает.
func (s *PlayerSystem) SpendGold(amount int) bool {
	if amount < 0 || s.ecs.PlayerState.Gold < amount {
		return false
	}
	if amount == 0 {
		return true
	}
	s.ecs.PlayerState.Gold -= amount
	s.dispatchGold(-amount)
	return true
}

func (s *PlayerSystem) AddGold(amount int) {
	if amount <= 0 {
		return
	}
	s.ecs.PlayerState.Gold += amount
	s.dispatchGold(amount)
}

// ReduceHealth отнимает здоровье; при нуле один раз объявляется поражение.
func (s *PlayerSystem) ReduceHealth(amount int) {
	if amount <= 0 || s.defeated {
		return
	}
	ps := s.ecs.PlayerState
	before := ps.Health
	ps.Health -= amount
	if ps.Health < 0 {
		ps.Health = 0
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.HealthChanged,
		Data: event.HealthChangedData{Health: ps.Health, Delta: ps.Health - before},
	})
	if ps.Health == 0 {
		s.defeated = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.Defeat})
	}
}

func (s *PlayerSystem) dispatchGold(delta int) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GoldChanged,
		Data: event.GoldChangedData{Gold: s.ecs.PlayerState.Gold, Delta: delta},
	})
}
