// Терминальный зритель: бот строит башни, tcell рисует бой.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"elemental-td/internal/app"
	"elemental-td/internal/defs"
	"elemental-td/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	var levelPath string
	var seed int64
	var fps int
	var logPath string

	flag.StringVar(&levelPath, "level", "", "level JSON file (default: embedded level)")
	flag.Int64Var(&seed, "seed", 0, "auto-builder seed (0: time based)")
	flag.IntVar(&fps, "fps", 30, "frames per second")
	flag.StringVar(&logPath, "log", "", "write log output to this file")
	flag.Parse()

	// tcell владеет терминалом, лог туда писать нельзя
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(levelPath, seed, fps); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(levelPath string, seed int64, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("-fps must be > 0")
	}
	level, err := loadLevel(levelPath)
	if err != nil {
		return err
	}
	game, err := app.NewGame(level)
	if err != nil {
		return err
	}
	builder := app.NewAutoBuilder(game, seed)
	renderer := term.NewRenderer(level, game.Path)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	frame := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()
	auto := true

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ' || ev.Rune() == 'n':
					game.StartNextWave()
				case ev.Rune() == 'p':
					game.HandlePauseClick()
				case ev.Rune() == '+' || ev.Rune() == 's':
					game.HandleSpeedClick()
				case ev.Rune() == 'a':
					auto = !auto
				case ev.Rune() == 'r':
					game.Reset()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if auto && !game.IsPaused() {
				for builder.Step() {
				}
			}
			game.Update(dt)
			renderer.Notify(game.DrainEvents())
			renderer.Draw(screen, game.ECS, game.Snapshot())
			screen.Show()
		}
	}
}

func loadLevel(path string) (*defs.Level, error) {
	if path == "" {
		return defs.DefaultLevel()
	}
	return defs.LoadLevel(path)
}
