// internal/state/game_state.go
package state

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"elemental-td/internal/app"
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/types"
	"elemental-td/internal/ui"
	"elemental-td/internal/utils"
	"elemental-td/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// outcomeHold — сколько секунд поле остаётся на экране после победы или поражения.
const outcomeHold = 2.5

var blueprintKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game

	renderer      *render.WorldRenderer
	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	waveIndicator *ui.WaveIndicator
	health        *ui.PlayerHealthIndicator
	countdown     *ui.CountdownIndicator
	infoPanel     *ui.InfoPanel
	recipeBook    *ui.RecipeBook

	blueprints []defs.TowerDefinition
	buttons    []*ui.Button

	dragging     string // чертёж, который тянут мышью
	hover        types.EntityID
	hoverOK      bool
	outcomeTimer float64
}

func NewGameState(sm *StateMachine, session *Session) (*GameState, error) {
	gameLogic, err := app.NewGame(session.Level)
	if err != nil {
		return nil, err
	}

	renderer := render.NewWorldRenderer(session.Level, gameLogic.Path)
	renderer.RenderMapImage() // подложка рисуется один раз

	gs := &GameState{
		sm:       sm,
		session:  session,
		game:     gameLogic,
		renderer: renderer,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		speedButton:   ui.NewSpeedButton(float32(config.ScreenWidth-config.IndicatorOffsetX*2-10), config.IndicatorOffsetX, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton:   ui.NewPauseButton(float32(config.ScreenWidth-config.IndicatorOffsetX*3-20), config.IndicatorOffsetX, config.SpeedButtonSize, config.UIColorBlue, config.HealthBarColor),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 20),
		health:        ui.NewPlayerHealthIndicator(20, 30),
		countdown:     ui.NewCountdownIndicator(200, 20),
		infoPanel:     ui.NewInfoPanel(session.Level),
		recipeBook:    ui.NewRecipeBook(config.ScreenWidth/2-200, 120, 400, 260, session.Level),
		blueprints:    session.Level.Blueprints(),
	}
	for i, bp := range gs.blueprints {
		x := config.ScreenWidth - 190
		y := 70 + i*36
		label := fmt.Sprintf("%d %s %dg", i+1, bp.Name, bp.Cost)
		gs.buttons = append(gs.buttons, ui.NewButton(image.Rect(x, y, x+170, y+28), label))
	}
	return gs, nil
}

func (g *GameState) GetGame() *app.Game { return g.game }

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	g.pauseButton.SetPaused(g.game.IsPaused())
	g.speedButton.SetState(g.game.SpeedIndex())
	g.infoPanel.Update(deltaTime)

	if g.game.Outcome() != component.Playing {
		g.outcomeTimer += deltaTime
		if g.outcomeTimer >= outcomeHold {
			g.sm.SetState(NewMenuState(g.sm, g.session, &Result{
				Outcome: g.game.Outcome(),
				Summary: g.game.StateSystem.Summary(),
			}))
			return
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.handlePauseClick()
		return
	}
	g.handleKeys()

	g.game.Update(deltaTime)

	events := g.game.DrainEvents()
	g.infoPanel.Notify(events)
	g.session.Audio.Notify(events)

	g.handleMouse()
	g.updatePreview()
}

func (g *GameState) handleKeys() {
	for i, key := range blueprintKeys {
		if i < len(g.blueprints) && inpututil.IsKeyJustPressed(key) {
			g.selectBlueprint(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.FuseSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.startNextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.recipeBook.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.session.Audio.SetMuted(!g.session.Audio.Muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
		g.dragging = ""
		g.outcomeTimer = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.ClearSelections()
		g.dragging = ""
	}
}

func (g *GameState) selectBlueprint(i int) {
	if g.game.SelectTowerToBuild(g.blueprints[i].ID) {
		for j, b := range g.buttons {
			b.Active = j == i
		}
	}
}

func (g *GameState) startNextWave() {
	if g.game.StartNextWave() {
		g.indicator.HandleClick()
	}
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	g.hover, _ = g.game.NodeAt(utils.ScreenToWorld(float64(x), float64(y)))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else if node, ok := g.game.NodeAt(utils.ScreenToWorld(float64(x), float64(y))); ok {
			g.game.HandleNodeClick(node)
		}
	}

	if g.dragging != "" && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if node, ok := g.game.NodeAt(utils.ScreenToWorld(float64(x), float64(y))); ok {
			g.game.TryFuseOrBuild(node, g.dragging)
		}
		g.dragging = ""
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.ClearSelections()
		for _, b := range g.buttons {
			b.Active = false
		}
		g.dragging = ""
	}
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	mx, my := float32(x), float32(y)
	if g.speedButton.IsClicked(mx, my) || g.pauseButton.IsClicked(mx, my) || g.indicator.IsClicked(mx, my) {
		return true
	}
	for _, b := range g.buttons {
		if b.Contains(x, y) {
			return true
		}
	}
	return g.infoPanel.Contains(y)
}

// handleUIClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleUIClick(x, y int) {
	mx, my := float32(x), float32(y)
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	switch {
	case g.speedButton.IsClicked(mx, my):
		if time.Since(g.speedButton.LastToggleTime) >= cooldown {
			g.game.HandleSpeedClick()
			g.speedButton.ToggleState()
		}
	case g.pauseButton.IsClicked(mx, my):
		if time.Since(g.pauseButton.LastToggleTime) >= cooldown {
			g.handlePauseClick()
		}
	case g.indicator.IsClicked(mx, my):
		if time.Since(g.indicator.LastClickTime) >= cooldown {
			g.startNextWave()
		}
	default:
		for i, b := range g.buttons {
			if b.Contains(x, y) {
				g.selectBlueprint(i)
				g.dragging = g.blueprints[i].ID
			}
		}
	}
}

func (g *GameState) handlePauseClick() {
	g.game.HandlePauseClick()
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// updatePreview обновляет подсказку панели и подсветку слота под курсором.
func (g *GameState) updatePreview() {
	g.hoverOK = false
	if g.dragging != "" && g.hover != 0 {
		fusion, ok := g.game.DragPreview(g.hover, g.dragging)
		g.hoverOK = ok
		if fusion {
			g.infoPanel.SetPreview("Drop to fuse with the tower on this node")
			return
		}
	}
	if def, ok := g.game.FusionPreview(); ok {
		g.infoPanel.SetPreview(fmt.Sprintf("F: fuse into %s for %d gold", def.Name, g.session.Level.Fusion.Cost))
		return
	}
	g.infoPanel.SetPreview("")
}

func (g *GameState) Draw(screen *ebiten.Image) {
	a, b := g.game.FusionSelection()
	g.renderer.Draw(screen, g.game.ECS, render.Highlight{
		FusionA:   a,
		FusionB:   b,
		Hover:     g.hover,
		HoverOK:   g.hoverOK,
		ShowHover: g.dragging != "" || g.hover != 0,
	})

	snap := g.game.Snapshot()
	g.indicator.Draw(screen, ui.PhaseColor(snap.Phase))
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, snap.Wave, snap.TotalWaves, g.bossWave(snap.Wave))
	g.health.Draw(screen, snap.Health, g.session.Level.StartingHealth, snap.Gold)
	g.countdown.Draw(screen, snap.Countdown, g.countdownFull(), g.game.WaveSystem.WaveIndex(), snap.TotalWaves)

	mx, my := ebiten.CursorPosition()
	for _, btn := range g.buttons {
		btn.Draw(screen, mx, my)
	}
	if g.dragging != "" {
		if def, ok := g.session.Level.Tower(g.dragging); ok {
			r := float32(config.TowerRadius * config.WorldScale)
			vector.FillCircle(screen, float32(mx), float32(my), r, render.WithAlpha(def.Visuals.Color, 0.6), true)
		}
	}

	g.recipeBook.Draw(screen, g.game.ElementCounts())
	g.infoPanel.Draw(screen)

	if snap.Outcome != component.Playing {
		banner := "VICTORY"
		clr := color.RGBA{80, 220, 120, 255}
		if snap.Outcome == component.Lost {
			banner, clr = "DEFEAT", color.RGBA{230, 70, 70, 255}
		}
		ui.DrawTextCentered(screen, banner, config.ScreenWidth/2, config.ScreenHeight/2, clr)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  x%.0f  enemies %d", ebiten.ActualTPS(), g.game.SpeedMultiplier, snap.ActiveEnemies), 10, config.ScreenHeight-20)
}

func (g *GameState) bossWave(wave int) bool {
	if wave <= 0 || wave > len(g.session.Level.Waves) {
		return false
	}
	for _, b := range g.session.Level.Waves[wave-1].Batches {
		if b.Enemy == defs.Boss {
			return true
		}
	}
	return false
}

func (g *GameState) countdownFull() float64 {
	if g.game.WaveSystem.WaveIndex() == 0 {
		return config.InitialWaveCountdown
	}
	return config.AutoStartThreshold
}
