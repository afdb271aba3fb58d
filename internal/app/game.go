// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/system"
	"elemental-td/internal/types"
	"elemental-td/pkg/path"
)

// eventBacklog bounds the outbound queue when nobody drains it (headless runs).
const eventBacklog = 4096

// Game владеет всеми системами и связывает их. Глобальных менеджеров нет:
// каждая сессия — отдельный Game.
type Game struct {
	Level *defs.Level
	Path  *path.Path
	ECS   *entity.ECS

	EventDispatcher *event.Dispatcher
	Events          *event.Queue // исходящая очередь для отрисовки, звука и терминала

	PlayerSystem       *system.PlayerSystem
	HealthSystem       *system.HealthSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	FusionSystem       *system.FusionSystem
	BuildSystem        *system.BuildSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	SpeedMultiplier float64

	// Game state
	gameTime    float64
	accumulator float64
	isPaused    bool
	speedIndex  int
	steps       int
}

// NewGame initializes a new game instance for the level.
func NewGame(level *defs.Level) (*Game, error) {
	if level == nil {
		return nil, fmt.Errorf("new game: nil level")
	}
	enemyPath, err := level.Path.Build()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Level:           level,
		Path:            enemyPath,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Events:          event.NewQueue(eventBacklog),
		SpeedMultiplier: config.SpeedMultipliers[0],
	}
	eventDispatcher.SubscribeAll(g.Events)

	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, level.StartingGold, level.StartingHealth)
	g.HealthSystem = system.NewHealthSystem(ecs, g.PlayerSystem, eventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, g.HealthSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, g.HealthSystem, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.HealthSystem)
	g.MovementSystem = system.NewMovementSystem(ecs, g.PlayerSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, level, enemyPath, eventDispatcher)
	g.FusionSystem = system.NewFusionSystem(ecs, level, g.PlayerSystem, eventDispatcher)
	g.BuildSystem = system.NewBuildSystem(ecs, level, g.PlayerSystem, g.FusionSystem, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher, g.WaveSystem.WaveIndex)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)

	g.createNodes()
	log.Printf("Game: level %q ready, %d nodes, %d waves", level.Name, len(level.Nodes), len(level.Waves))
	return g, nil
}

func (g *Game) createNodes() {
	for i, p := range g.Level.Nodes {
		id := g.ECS.NewEntity()
		pos := p.Vec()
		g.ECS.Positions[id] = &pos
		g.ECS.Nodes[id] = &component.Node{Index: i}
	}
}

// Update накапливает реальное время и продвигает симуляцию фиксированными шагами.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.accumulator += deltaTime * g.SpeedMultiplier
	for g.accumulator+config.TimerEpsilon >= config.FixedTimeStep {
		g.accumulator -= config.FixedTimeStep
		g.Step()
	}
}

// Step — один фиксированный шаг в порядке: башни, снаряды, статусы, движение, волны.
// После победы или поражения мир замирает.
func (g *Game) Step() {
	if !g.StateSystem.Running() {
		return
	}
	dt := config.FixedTimeStep
	g.steps++
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
}

// Reset перезапускает уровень: волна отменяется, башни сносятся, баланс восстанавливается.
func (g *Game) Reset() {
	g.WaveSystem.Reset()
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		g.ECS.RemoveEntity(id)
	}
	for _, node := range g.ECS.Nodes {
		node.TowerID = 0
	}
	g.VisualEffectSystem.Clear()
	g.FusionSystem.ClearSelection()
	g.BuildSystem.ClearSelection()
	g.PlayerSystem.Reset(g.Level.StartingGold, g.Level.StartingHealth)
	g.StateSystem.Reset()
	g.Events.Drain()
	g.gameTime = 0
	g.accumulator = 0
	g.steps = 0
	g.ECS.GameTime = 0
}

func (g *Game) StartNextWave() bool { return g.WaveSystem.StartNextWave() }

// DrainEvents отдаёт накопившиеся события слою отображения.
func (g *Game) DrainEvents() []event.Event { return g.Events.Drain() }

func (g *Game) HandleSpeedClick() {
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	g.SpeedMultiplier = config.SpeedMultipliers[g.speedIndex]
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool { return g.isPaused }

func (g *Game) SpeedIndex() int { return g.speedIndex }

func (g *Game) GetGameTime() float64 { return g.gameTime }

func (g *Game) Steps() int { return g.steps }

func (g *Game) Outcome() component.GameOutcome { return g.StateSystem.Current() }

// Snapshot — сводка для HUD и отчётов.
type Snapshot struct {
	Gold          int
	Health        int
	Wave          int // номер текущей или следующей волны, с единицы
	TotalWaves    int
	Phase         system.WavePhase
	Countdown     float64
	ActiveEnemies int
	Towers        int
	Outcome       component.GameOutcome
	Time          float64
}

func (g *Game) Snapshot() Snapshot {
	wave := g.WaveSystem.WaveIndex() + 1
	if wave > g.WaveSystem.TotalWaves() {
		wave = g.WaveSystem.TotalWaves()
	}
	return Snapshot{
		Gold:          g.PlayerSystem.Gold(),
		Health:        g.PlayerSystem.Health(),
		Wave:          wave,
		TotalWaves:    g.WaveSystem.TotalWaves(),
		Phase:         g.WaveSystem.Phase(),
		Countdown:     g.WaveSystem.Countdown(),
		ActiveEnemies: g.WaveSystem.ActiveEnemies(),
		Towers:        len(g.ECS.Towers),
		Outcome:       g.Outcome(),
		Time:          g.gameTime,
	}
}

// NodeIDs — слоты в порядке уровня.
func (g *Game) NodeIDs() []types.EntityID {
	ids := make([]types.EntityID, len(g.ECS.Nodes))
	for id, node := range g.ECS.Nodes {
		ids[node.Index] = id
	}
	return ids
}
