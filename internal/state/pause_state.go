// internal/state/pause_state.go
package state

import (
	"image/color"

	"elemental-td/internal/app"
	"elemental-td/internal/config"
	"elemental-td/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// GameInterface — состояние, у которого есть игра.
type GameInterface interface {
	GetGame() *app.Game
}

type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if gs, ok := s.previousState.(*GameState); ok {
			x, y := ebiten.CursorPosition()
			unpause = unpause || gs.pauseButton.IsClicked(float32(x), float32(y))
		}
	}

	if unpause {
		s.Resume()
	}
}

// Resume снимает паузу в игре и возвращает предыдущее состояние.
func (s *PauseState) Resume() {
	if gs, ok := s.previousState.(GameInterface); ok {
		if game := gs.GetGame(); game != nil && game.IsPaused() {
			game.HandlePauseClick()
		}
	}
	if gs, ok := s.previousState.(*GameState); ok {
		gs.pauseButton.TogglePause()
	}
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.FillRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	ui.DrawTextCentered(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2, color.White)
	ui.DrawTextCentered(screen, "P / Esc to resume", config.ScreenWidth/2, config.ScreenHeight/2+ui.LineHeight*1.5, config.TextLightColor)
}

func (s *PauseState) Exit() {}

func (s *PauseState) GetGame() *app.Game {
	if gs, ok := s.previousState.(GameInterface); ok {
		return gs.GetGame()
	}
	return nil
}
