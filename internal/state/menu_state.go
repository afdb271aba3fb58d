// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/event"
	"elemental-td/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Result — итог сыгранной партии для экрана меню.
type Result struct {
	Outcome component.GameOutcome
	Summary event.OutcomeData
}

// MenuState — титульный экран и экран итогов.
type MenuState struct {
	sm      *StateMachine
	session *Session
	result  *Result
}

func NewMenuState(sm *StateMachine, session *Session, result *Result) *MenuState {
	return &MenuState{sm: sm, session: session, result: result}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		gs, err := NewGameState(m.sm, m.session)
		if err != nil {
			log.Printf("MenuState: cannot start game: %v", err)
			return
		}
		m.sm.SetState(gs)
	}
}

// Title — заголовок экрана.
func (m *MenuState) Title() string {
	if m.result == nil {
		return m.session.Level.Name
	}
	if m.result.Outcome == component.Won {
		return fmt.Sprintf("Victory! %d waves held", m.result.Summary.WavesCleared)
	}
	return fmt.Sprintf("Defeat after %d waves", m.result.Summary.WavesCleared)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	cx := float64(config.ScreenWidth) / 2
	cy := float64(config.ScreenHeight) / 2
	ui.DrawTextCentered(screen, m.Title(), cx, cy-ui.LineHeight*2, config.NodeSelectColor)
	ui.DrawTextCentered(screen, "Space - play", cx, cy, config.TextLightColor)
	ui.DrawTextCentered(screen, "1-3 pick tower, click or drag onto a node, F fuse, N next wave, B recipes", cx, cy+ui.LineHeight*2, config.TextLightColor)
}

func (m *MenuState) Exit() {}
