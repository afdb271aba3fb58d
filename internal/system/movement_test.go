package system

import (
	"testing"

	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"
)

func oneGrunt() defs.WaveDefinition {
	return defs.WaveDefinition{
		Batches:   []defs.Batch{{Enemy: defs.Grunt, Count: 1, Resistance: true}},
		SpawnRate: 2,
		Density:   1,
	}
}

func TestEnemyAtPathEndCostsHealthNotGold(t *testing.T) {
	w := newTestWorld(t, oneGrunt(), oneGrunt())
	w.waves.StartNextWave()
	enemies := w.ecs.LiveEnemies()
	if len(enemies) != 1 || w.waves.ActiveEnemies() != 1 {
		t.Fatalf("live = %v, active = %d; want one spawned enemy", enemies, w.waves.ActiveEnemies())
	}
	id := enemies[0]
	w.ecs.Paths[id].Distance = w.path.Length()
	w.queue.Drain()
	gold, health := w.player.Gold(), w.player.Health()

	w.movement.Update(dt)

	if got := w.player.Health(); got != health-config.LeakPenalty {
		t.Errorf("health = %d; want %d", got, health-config.LeakPenalty)
	}
	if got := w.player.Gold(); got != gold {
		t.Errorf("gold = %d; want %d (no reward for leaks)", got, gold)
	}
	if got := w.waves.ActiveEnemies(); got != 0 {
		t.Errorf("active enemies = %d; want 0", got)
	}
	if w.ecs.IsLiveEnemy(id) {
		t.Errorf("leaked enemy still in play")
	}
	events := w.queue.Drain()
	if count(events, event.EnemyReachedEnd) != 1 || count(events, event.EnemyKilled) != 0 {
		t.Errorf("events = %v; want one EnemyReachedEnd and no EnemyKilled", events)
	}
}

func TestSlowedEnemyMovesSlower(t *testing.T) {
	w := newTestWorld(t, oneGrunt(), oneGrunt())
	w.waves.StartNextWave()
	id := w.ecs.LiveEnemies()[0]
	w.health.ApplySlow(id, 0.5, 10)

	w.movement.Update(1)

	speed := w.level.Enemies[0].Speed
	if got := w.ecs.Paths[id].Distance; !approx(got, speed*0.5) {
		t.Errorf("distance = %v; want %v", got, speed*0.5)
	}
	if pos := w.ecs.Positions[id]; !approx(pos.X, speed*0.5) || pos.Y != 10 {
		t.Errorf("position = %+v", *pos)
	}
}
