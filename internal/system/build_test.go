package system

import (
	"testing"

	"elemental-td/internal/defs"
	"elemental-td/internal/event"
)

func TestBuildTowerOn(t *testing.T) {
	w := newTestWorld(t, oneGrunt())
	node := w.addNode(3, 4)

	if !w.build.SelectTowerToBuild("TOWER_FIRE") {
		t.Fatal("TOWER_FIRE not selectable")
	}
	id, ok := w.build.BuildTowerOn(node)
	if !ok {
		t.Fatalf("build denied: %v", w.drain(event.BuildDenied))
	}
	if w.player.Gold() != 60 {
		t.Errorf("gold = %d; want 60", w.player.Gold())
	}
	if w.ecs.Nodes[node].TowerID != id || w.ecs.Towers[id].Element != defs.Fire {
		t.Errorf("tower not placed on node")
	}
	if n := len(w.drain(event.TowerPlaced)); n != 1 {
		t.Errorf("TowerPlaced dispatched %d times", n)
	}
}

func TestBuildDenials(t *testing.T) {
	w := newTestWorld(t, oneGrunt())
	node := w.addNode(0, 0)

	expectDenied := func(reason event.DenyReason) {
		t.Helper()
		denied := w.drain(event.BuildDenied)
		if len(denied) != 1 || denied[0].Data.(event.BuildDeniedData).Reason != reason {
			t.Errorf("denials = %v; want %q", denied, reason)
		}
	}

	if _, ok := w.build.BuildTowerOn(node); ok {
		t.Error("built without a selection")
	}
	expectDenied(event.DenyNoSelection)

	if w.build.SelectTowerToBuild("TOWER_STEAM") {
		t.Error("derived tower selectable for building")
	}

	w.build.SelectTowerToBuild("TOWER_LIGHTNING")
	w.build.BuildTowerOn(node)
	w.queue.Drain()
	if _, ok := w.build.BuildTowerOn(node); ok {
		t.Error("built on an occupied node")
	}
	expectDenied(event.DenyOccupied)

	other := w.addNode(5, 5)
	w.ecs.PlayerState.Gold = 10
	if _, ok := w.build.BuildTowerOn(other); ok {
		t.Error("built without gold")
	}
	expectDenied(event.DenyInsufficientGold)
	if w.ecs.Nodes[other].Occupied() || w.player.Gold() != 10 {
		t.Error("denied build changed state")
	}
}

func TestTryFuseOrBuild(t *testing.T) {
	w := newTestWorld(t, oneGrunt())
	w.ecs.PlayerState.Gold = 500
	node := w.addNode(0, 0)

	// Пустой слот — обычная постройка.
	id, ok := w.build.TryFuseOrBuild(node, "TOWER_FIRE")
	if !ok || w.ecs.Towers[id].Element != defs.Fire || w.player.Gold() != 460 {
		t.Fatalf("build fallback: id %d ok %v gold %d", id, ok, w.player.Gold())
	}

	// Занятый слот с рецептом — слияние за цену чертежа и слияния.
	id, ok = w.build.TryFuseOrBuild(node, "TOWER_LIGHTNING")
	if !ok {
		t.Fatalf("fusion denied: %v", w.drain(event.BuildDenied))
	}
	if w.ecs.Towers[id].Element != defs.FireLightning || len(w.ecs.Towers) != 1 {
		t.Errorf("fused into %v with %d towers", w.ecs.Towers[id].Element, len(w.ecs.Towers))
	}
	if got := w.player.Gold(); got != 460-50-50 {
		t.Errorf("gold = %d; want %d", got, 460-50-50)
	}

	// FireLightning + Fire — рецепта нет, слот занят.
	w.queue.Drain()
	if _, ok := w.build.TryFuseOrBuild(node, "TOWER_FIRE"); ok {
		t.Error("fused without a recipe")
	}
	denied := w.drain(event.BuildDenied)
	if len(denied) != 1 || denied[0].Data.(event.BuildDeniedData).Reason != event.DenyOccupied {
		t.Errorf("denials = %v; want occupied", denied)
	}
}

func TestBuildAfterGameOverIsDenied(t *testing.T) {
	w := newTestWorld(t, oneGrunt())
	node := w.addNode(0, 0)
	w.player.ReduceHealth(100)
	w.build.SelectTowerToBuild("TOWER_ICE")
	if _, ok := w.build.BuildTowerOn(node); ok {
		t.Error("built after defeat")
	}
}
