package system

import (
	"testing"

	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
	"elemental-td/pkg/path"
)

const dt = config.FixedTimeStep

// testWorld wires the core systems the same way app.Game does.
type testWorld struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	queue      *event.Queue
	level      *defs.Level
	path       *path.Path

	player      *PlayerSystem
	health      *HealthSystem
	status      *StatusEffectSystem
	combat      *CombatSystem
	projectiles *ProjectileSystem
	movement    *MovementSystem
	waves       *WaveSystem
	fusion      *FusionSystem
	build       *BuildSystem
	state       *StateSystem
}

func newTestWorld(t *testing.T, waves ...defs.WaveDefinition) *testWorld {
	t.Helper()
	level, err := defs.DefaultLevel()
	if err != nil {
		t.Fatalf("DefaultLevel: %v", err)
	}
	level.Waves = waves

	// Прямой длинный путь: враги не доходят до конца, пока тест этого не захочет.
	p, err := path.New([]geom.Vec2{{X: 0, Y: 10}, {X: 100, Y: 10}}, path.Linear)
	if err != nil {
		t.Fatalf("path.New: %v", err)
	}

	w := &testWorld{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		queue:      event.NewQueue(0),
		level:      level,
		path:       p,
	}
	w.dispatcher.SubscribeAll(w.queue)
	w.player = NewPlayerSystem(w.ecs, w.dispatcher, config.StartingGold, config.StartingHealth)
	w.health = NewHealthSystem(w.ecs, w.player, w.dispatcher)
	w.status = NewStatusEffectSystem(w.ecs, w.health)
	w.combat = NewCombatSystem(w.ecs, w.health, w.dispatcher)
	w.projectiles = NewProjectileSystem(w.ecs, w.health)
	w.movement = NewMovementSystem(w.ecs, w.player, w.dispatcher)
	w.waves = NewWaveSystem(w.ecs, level, p, w.dispatcher)
	w.fusion = NewFusionSystem(w.ecs, level, w.player, w.dispatcher)
	w.build = NewBuildSystem(w.ecs, level, w.player, w.fusion, w.dispatcher)
	w.state = NewStateSystem(w.ecs, w.dispatcher, w.waves.WaveIndex)
	return w
}

func (w *testWorld) step() {
	w.combat.Update(dt)
	w.projectiles.Update(dt)
	w.status.Update(dt)
	w.movement.Update(dt)
	// Уровень без волн сразу выигран; боевым тестам это только мешает.
	if w.waves.TotalWaves() > 0 {
		w.waves.Update(dt)
	}
}

func (w *testWorld) steps(n int) {
	for i := 0; i < n; i++ {
		w.step()
	}
}

func (w *testWorld) addEnemy(typ defs.EnemyType, x, y, hp float64, resistance bool) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	w.ecs.Enemies[id] = &component.Enemy{Type: typ, Resistance: resistance, Reward: 5}
	w.ecs.StatusEffects[id] = &component.StatusEffects{}
	return id
}

func (w *testWorld) addNode(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Nodes[id] = &component.Node{Index: len(w.ecs.Nodes)}
	return id
}

func (w *testWorld) addTower(x, y float64, element defs.ElementType, stats defs.CombatStats) types.EntityID {
	node := w.addNode(x, y)
	return placeTower(w.ecs, node, defs.TowerDefinition{ID: "TEST_" + element.String(), Element: element, Combat: stats})
}

func (w *testWorld) placeDef(node types.EntityID, id string) types.EntityID {
	def, ok := w.level.Tower(id)
	if !ok {
		panic("unknown tower " + id)
	}
	return placeTower(w.ecs, node, def)
}

// drain returns the queued events of type typ, discarding the rest.
func (w *testWorld) drain(typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range w.queue.Drain() {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func count(events []event.Event, typ event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
