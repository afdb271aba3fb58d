// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"elemental-td/internal/audio"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadLevel(path string) (*defs.Level, error) {
	if path == "" {
		return defs.DefaultLevel()
	}
	return defs.LoadLevel(path)
}

func main() {
	levelPath := flag.String("level", "", "level JSON file (default: embedded level)")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	startInMenu := flag.Bool("menu", false, "start from the title screen instead of the game")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	level, err := loadLevel(*levelPath)
	if err != nil {
		log.Fatalf("load level: %v", err)
	}

	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer player.Close()

	session := &state.Session{Level: level, Audio: player}
	sm := state.NewStateMachine()
	if *startInMenu {
		sm.SetState(state.NewMenuState(sm, session, nil))
	} else {
		gs, err := state.NewGameState(sm, session)
		if err != nil {
			log.Fatalf("start game: %v", err)
		}
		sm.SetState(gs)
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Elemental TD: " + level.Name)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
