// internal/system/state.go
package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
)

// StateSystem фиксирует итог сессии. Первый из Victory/Defeat побеждает,
// после него симуляция останавливается.
type StateSystem struct {
	ecs          *entity.ECS
	wavesCleared func() int
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, wavesCleared func() int) *StateSystem {
	ss := &StateSystem{ecs: ecs, wavesCleared: wavesCleared}
	eventDispatcher.Subscribe(event.Victory, ss)
	eventDispatcher.Subscribe(event.Defeat, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if s.ecs.Outcome != component.Playing {
		return
	}
	switch e.Type {
	case event.Victory:
		s.ecs.Outcome = component.Won
	case event.Defeat:
		s.ecs.Outcome = component.Lost
	}
}

func (s *StateSystem) Current() component.GameOutcome {
	return s.ecs.Outcome
}

func (s *StateSystem) Running() bool {
	return s.ecs.Outcome == component.Playing
}

func (s *StateSystem) Reset() {
	s.ecs.Outcome = component.Playing
}

// Summary is the payload shown on the end screen.
func (s *StateSystem) Summary() event.OutcomeData {
	return event.OutcomeData{WavesCleared: s.wavesCleared()}
}
