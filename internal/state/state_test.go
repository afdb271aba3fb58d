package state

import (
	"testing"

	"elemental-td/internal/component"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()                    { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Exit()                     { *s.log = append(*s.log, "exit "+s.name) }
func (s *recordingState) Update(deltaTime float64)  { *s.log = append(*s.log, "update "+s.name) }
func (s *recordingState) Draw(screen *ebiten.Image) {}

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1) // без состояния ничего не происходит

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	if sm.Current() != b {
		t.Fatalf("current state is not b")
	}
	sm.SetState(nil)

	want := []string{"enter a", "update a", "exit a", "enter b", "exit b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestMenuTitle(t *testing.T) {
	level, err := defs.DefaultLevel()
	if err != nil {
		t.Fatal(err)
	}
	session := &Session{Level: level}

	tests := []struct {
		result *Result
		want   string
	}{
		{nil, level.Name},
		{&Result{Outcome: component.Won, Summary: event.OutcomeData{WavesCleared: 10}}, "Victory! 10 waves held"},
		{&Result{Outcome: component.Lost, Summary: event.OutcomeData{WavesCleared: 3}}, "Defeat after 3 waves"},
	}
	for _, tt := range tests {
		m := NewMenuState(NewStateMachine(), session, tt.result)
		if got := m.Title(); got != tt.want {
			t.Errorf("Title() = %q, want %q", got, tt.want)
		}
	}
}

func TestPauseStateWithoutGame(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	prev := &recordingState{name: "prev", log: &log}
	p := NewPauseState(sm, prev)
	sm.SetState(p)

	if p.GetGame() != nil {
		t.Errorf("GetGame() should be nil for a state without a game")
	}
	p.Resume()
	if sm.Current() != prev {
		t.Errorf("Resume did not return to the previous state")
	}
}
