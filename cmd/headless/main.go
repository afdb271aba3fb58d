package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"elemental-td/internal/app"
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"

	"github.com/atotto/clipboard"
)

// builderInterval — бот думает дважды в секунду игрового времени.
const builderInterval = 30

type runStats struct {
	runIndex int
	seed     int64

	outcome      component.GameOutcome
	wavesCleared int
	steps        int
	simTime      float64

	spawned  int
	kills    int
	leaks    int
	denied   int
	built    int
	fused    int
	gold     int
	health   int
	goldEarn int
}

func main() {
	var runs int
	var maxMinutes float64
	var seedBase int64
	var seedStep int64
	var levelPath string
	var quiet bool
	var copyReport bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.Float64Var(&maxMinutes, "max-minutes", 60, "simulated minutes before a run is cut off")
	flag.Int64Var(&seedBase, "seed-base", 42, "base build-plan seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&levelPath, "level", "", "level JSON file (default: embedded level)")
	flag.BoolVar(&quiet, "quiet", true, "suppress simulation logging")
	flag.BoolVar(&copyReport, "clipboard", false, "also copy the aggregate block to the system clipboard")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxMinutes <= 0 {
		fmt.Println("error: -max-minutes must be > 0")
		return
	}
	if quiet {
		log.SetOutput(io.Discard)
	}

	level, err := loadLevel(levelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	maxSteps := int(maxMinutes * 60 / config.FixedTimeStep)

	fmt.Printf("=== Headless Defense Report ===\n")
	fmt.Printf("level=%q runs=%d max_minutes=%.0f seed_base=%d seed_step=%d\n\n", level.Name, runs, maxMinutes, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runLevel(i+1, level, seed, maxSteps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, stats)
		printRun(os.Stdout, stats)
	}

	var agg bytes.Buffer
	printAggregate(io.MultiWriter(os.Stdout, &agg), all)
	if copyReport {
		if err := clipboard.WriteAll(agg.String()); err != nil {
			fmt.Fprintf(os.Stderr, "clipboard: %v\n", err)
		}
	}
}

func loadLevel(path string) (*defs.Level, error) {
	if path == "" {
		return defs.DefaultLevel()
	}
	return defs.LoadLevel(path)
}

// runLevel проигрывает уровень ботом до исхода или до maxSteps.
func runLevel(runIndex int, level *defs.Level, seed int64, maxSteps int) (runStats, error) {
	g, err := app.NewGame(level)
	if err != nil {
		return runStats{}, err
	}
	builder := app.NewAutoBuilder(g, seed)
	rs := runStats{runIndex: runIndex, seed: seed}

	for g.Steps() < maxSteps && g.Outcome() == component.Playing {
		if g.Steps()%builderInterval == 0 {
			for builder.Step() {
			}
		}
		g.Step()
		countEvents(&rs, g.DrainEvents())
	}

	snap := g.Snapshot()
	rs.outcome = snap.Outcome
	rs.wavesCleared = g.WaveSystem.WaveIndex()
	rs.steps = g.Steps()
	rs.simTime = snap.Time
	rs.gold = snap.Gold
	rs.health = snap.Health
	rs.built = builder.Built
	rs.fused = builder.Fused
	return rs, nil
}

func countEvents(rs *runStats, events []event.Event) {
	for _, e := range events {
		switch e.Type {
		case event.EnemySpawned:
			rs.spawned++
		case event.EnemyKilled:
			rs.kills++
			if data, ok := e.Data.(event.EnemyKilledData); ok {
				rs.goldEarn += data.Reward
			}
		case event.EnemyReachedEnd:
			rs.leaks++
		case event.BuildDenied:
			rs.denied++
		}
	}
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "outcome=%s waves_cleared=%d sim_time=%.1fs steps=%d\n", rs.outcome, rs.wavesCleared, rs.simTime, rs.steps)
	fmt.Fprintf(w, "enemies: spawned=%d killed=%d leaked=%d\n", rs.spawned, rs.kills, rs.leaks)
	fmt.Fprintf(w, "economy: gold_end=%d gold_earned=%d health_end=%d\n", rs.gold, rs.goldEarn, rs.health)
	fmt.Fprintf(w, "builder: built=%d fused=%d denied=%d\n\n", rs.built, rs.fused, rs.denied)
}

func printAggregate(w io.Writer, all []runStats) {
	if len(all) == 0 {
		return
	}
	wins := 0
	var kills, leaks, waves int
	for _, rs := range all {
		if rs.outcome == component.Won {
			wins++
		}
		kills += rs.kills
		leaks += rs.leaks
		waves += rs.wavesCleared
	}
	n := float64(len(all))
	fmt.Fprintf(w, "=== Aggregate ===\n")
	fmt.Fprintf(w, "win_rate=%.2f avg_waves=%.1f avg_kills=%.1f avg_leaks=%.1f\n",
		float64(wins)/n, float64(waves)/n, float64(kills)/n, float64(leaks)/n)
}
