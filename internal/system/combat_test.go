package system

import (
	"testing"

	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
)

func TestFireTowerHitsResistantGruntForHalfAndBurns(t *testing.T) {
	w := newTestWorld(t)
	w.addTower(0, 0, defs.Fire, defs.CombatStats{Damage: 10, FireRate: 1, Range: 3, BurnDamage: 2})
	grunt := w.addEnemy(defs.Grunt, 2, 0, 25, true)

	for i := 0; i < 60 && w.ecs.Healths[grunt].Value == 25; i++ {
		w.step()
	}

	// Попадание 5 и первый тик горения 1 в том же шаге: свежий поджог жжёт сразу.
	if got := w.ecs.Healths[grunt].Value; got != 19 {
		t.Fatalf("health after first hit = %v; want 19", got)
	}
	hits := w.drain(event.EnemyHit)
	if len(hits) != 2 {
		t.Fatalf("got %d hits; want impact and burn tick", len(hits))
	}
	if d := hits[0].Data.(event.EnemyHitData); d.Damage != 5 || d.Element != defs.Fire {
		t.Errorf("hit = %+v; want 5 Fire damage", d)
	}
	if d := hits[1].Data.(event.EnemyHitData); d.Damage != 1 || d.Element != defs.Fire {
		t.Errorf("burn tick = %+v; want 1 Fire damage (resisted)", d)
	}
	st := w.ecs.StatusEffects[grunt]
	if !st.Burning() || st.BurnDamage != 2 {
		t.Fatalf("burn = %+v; want active burn of 2", st)
	}
	if st.BurnTimer < config.BurnDuration-2*dt || st.BurnTimer > config.BurnDuration {
		t.Errorf("BurnTimer = %v; want about %v", st.BurnTimer, config.BurnDuration)
	}
}

func TestTargetOutOfRangeIsNotAcquired(t *testing.T) {
	w := newTestWorld(t)
	tower := w.addTower(0, 0, defs.Fire, defs.CombatStats{Damage: 10, FireRate: 1, Range: 3})
	w.addEnemy(defs.Boss, 3.5, 0, 100, true)

	w.step()
	if w.ecs.Towers[tower].TargetID != 0 {
		t.Errorf("tower acquired a target beyond its range")
	}
	if n := count(w.queue.Drain(), event.TowerFired); n != 0 {
		t.Errorf("tower fired %d times at nothing", n)
	}
}

func TestTargetIsDroppedWhenItLeavesRange(t *testing.T) {
	w := newTestWorld(t)
	tower := w.addTower(0, 0, defs.Fire, defs.CombatStats{Damage: 1, FireRate: 1, Range: 3})
	first := w.addEnemy(defs.Boss, 1, 0, 100, true)
	second := w.addEnemy(defs.Boss, 2.5, 0, 100, true)

	w.step()
	if got := w.ecs.Towers[tower].TargetID; got != first {
		t.Fatalf("target = %d; want nearest %d", got, first)
	}
	w.ecs.Positions[first].X = 10
	w.step()
	if got := w.ecs.Towers[tower].TargetID; got != second {
		t.Errorf("target = %d; want %d after the first left range", got, second)
	}
}

func TestEquidistantTargetsResolveInSpawnOrder(t *testing.T) {
	w := newTestWorld(t)
	tower := w.addTower(0, 0, defs.Fire, defs.CombatStats{Damage: 1, FireRate: 1, Range: 3})
	first := w.addEnemy(defs.Boss, 0, 2, 100, true)
	w.addEnemy(defs.Boss, 0, -2, 100, true)

	w.step()
	if got := w.ecs.Towers[tower].TargetID; got != first {
		t.Errorf("target = %d; want earlier spawn %d", got, first)
	}
}

func TestCooldownFiresOncePerPeriod(t *testing.T) {
	w := newTestWorld(t)
	w.addTower(0, 0, defs.Ice, defs.CombatStats{Damage: 0, FireRate: 1, Range: 3, SlowAmount: 0.3})
	w.addEnemy(defs.Boss, 1, 0, 100, true)

	w.steps(61)
	if n := count(w.queue.Drain(), event.TowerFired); n != 2 {
		t.Errorf("fired %d times in 61 steps at 1 shot/s; want 2", n)
	}
}

func TestIcePulseSlowsEveryoneInRange(t *testing.T) {
	w := newTestWorld(t)
	w.addTower(0, 0, defs.Ice, defs.CombatStats{Damage: 4, FireRate: 1, Range: 2.5, SlowAmount: 0.3, SlowDuration: 2})
	near := w.addEnemy(defs.Runner, 1, 0, 50, true)
	edge := w.addEnemy(defs.Runner, 0, 2.5, 50, true)
	outside := w.addEnemy(defs.Runner, 3, 0, 50, true)

	w.combat.Update(dt)

	for _, id := range []types.EntityID{near, edge} {
		st := w.ecs.StatusEffects[id]
		if st.SlowFactor != 0.3 || st.SlowTimer != config.IcePulseSlowDuration {
			t.Errorf("enemy %d slow = %v/%v; want 0.3/%v", id, st.SlowFactor, st.SlowTimer, config.IcePulseSlowDuration)
		}
		if w.ecs.Healths[id].Value != 46 {
			t.Errorf("enemy %d health = %v; want 46", id, w.ecs.Healths[id].Value)
		}
	}
	if w.ecs.StatusEffects[outside].Slowed() || w.ecs.Healths[outside].Value != 50 {
		t.Errorf("enemy outside range was affected")
	}
	if n := len(w.drain(event.IcePulse)); n != 1 {
		t.Errorf("IcePulse events = %d; want 1", n)
	}
}

func TestIceIcePulseFreezes(t *testing.T) {
	w := newTestWorld(t)
	w.addTower(0, 0, defs.IceIce, defs.CombatStats{Damage: 6, FireRate: 0.5, Range: 2.8, SlowAmount: 0.3})
	e := w.addEnemy(defs.Grunt, 1, 0, 50, true)

	w.combat.Update(dt)

	st := w.ecs.StatusEffects[e]
	if st.SlowFactor != config.DeepFreezeFactor || st.SlowTimer != config.DeepFreezeDuration {
		t.Errorf("slow = %v/%v; want full freeze for %v", st.SlowFactor, st.SlowTimer, config.DeepFreezeDuration)
	}
	if st.SpeedMultiplier() != 0 {
		t.Errorf("frozen enemy still moves at x%v", st.SpeedMultiplier())
	}
}

func TestFireFireSplashesAroundTarget(t *testing.T) {
	w := newTestWorld(t)
	w.addTower(0, 0, defs.FireFire, defs.CombatStats{Damage: 20, FireRate: 1, Range: 3, BurnDamage: 4})
	primary := w.addEnemy(defs.Boss, 2, 0, 100, true)
	neighbour := w.addEnemy(defs.Boss, 3, 0, 100, true)   // 1.0 от цели, 3.0 от башни
	far := w.addEnemy(defs.Boss, 2, 2, 100, true)         // 2.0 от цели

	for i := 0; i < 60 && w.ecs.Healths[primary].Value == 100; i++ {
		w.step()
	}

	// Удар плюс первый тик горения в том же шаге.
	if got := w.ecs.Healths[primary].Value; got != 76 {
		t.Errorf("primary health = %v; want 76 (20 hit + 4 burn)", got)
	}
	if got := w.ecs.Healths[neighbour].Value; got != 88 {
		t.Errorf("neighbour health = %v; want 88 (half damage, half burn)", got)
	}
	if st := w.ecs.StatusEffects[neighbour]; st.BurnDamage != 2 {
		t.Errorf("neighbour burn = %v; want 2 (half burn)", st.BurnDamage)
	}
	if got := w.ecs.Healths[far].Value; got != 100 {
		t.Errorf("enemy outside splash radius took damage: %v", got)
	}
}

func TestFireIceProjectileBurnsAndSlows(t *testing.T) {
	w := newTestWorld(t)
	w.addTower(0, 0, defs.FireIce, defs.CombatStats{Damage: 16, FireRate: 1, Range: 3, BurnDamage: 3, SlowAmount: 0.35, SlowDuration: 2})
	e := w.addEnemy(defs.Boss, 1, 0, 100, true)

	for i := 0; i < 60 && w.ecs.Healths[e].Value == 100; i++ {
		w.step()
	}
	st := w.ecs.StatusEffects[e]
	if !st.Burning() || !st.Slowed() || st.SlowFactor != 0.35 {
		t.Errorf("FireIce impact statuses = %+v; want burn and 0.35 slow", st)
	}
	if st.Shocked() {
		t.Errorf("FireIce must not shock")
	}
}

func TestProjectileDiscardedWhenTargetGone(t *testing.T) {
	w := newTestWorld(t)
	w.addTower(0, 0, defs.Fire, defs.CombatStats{Damage: 10, FireRate: 1, Range: 3})
	e := w.addEnemy(defs.Boss, 2.9, 0, 100, true)

	w.step()
	if len(w.ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d; want 1 in flight", len(w.ecs.Projectiles))
	}
	w.ecs.RemoveEntity(e)
	w.step()
	if len(w.ecs.Projectiles) != 0 {
		t.Errorf("projectile kept flying after its target vanished")
	}
}

func TestStaleTargetIsSkippedNotCaughtUp(t *testing.T) {
	w := newTestWorld(t)
	tower := w.addTower(0, 0, defs.Lightning, defs.CombatStats{Damage: 10, FireRate: 1, Range: 3})
	e := w.addEnemy(defs.Boss, 1, 0, 100, true)
	w.ecs.Towers[tower].TargetID = e
	w.ecs.Enemies[e].IsDead = true

	w.step()
	if n := count(w.queue.Drain(), event.TowerFired); n != 0 {
		t.Errorf("tower fired %d times at a dead target", n)
	}
	if w.ecs.Towers[tower].TargetID != 0 {
		t.Errorf("dead target kept")
	}
}

func TestEmptyWorldHasNoTarget(t *testing.T) {
	w := newTestWorld(t)
	w.addTower(0, 0, defs.LightningLightning, defs.CombatStats{Damage: 10, FireRate: 1, Range: 3})
	w.steps(10)
	if n := count(w.queue.Drain(), event.TowerFired); n != 0 {
		t.Errorf("fired %d times with no enemies", n)
	}
}
