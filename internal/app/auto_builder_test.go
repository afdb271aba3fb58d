package app

import "testing"

func TestAutoBuilderPicksBestCoverage(t *testing.T) {
	g := newTestGame(t)
	b := NewAutoBuilder(g, 7)
	def, ok := g.Level.Tower(b.Next())
	if !ok {
		t.Fatalf("unknown planned tower %q", b.Next())
	}

	if !b.Step() {
		t.Fatal("first Step should build")
	}
	if b.Built != 1 || g.PlayerSystem.Gold() != g.Level.StartingGold-def.Cost {
		t.Fatalf("built=%d gold=%d", b.Built, g.PlayerSystem.Gold())
	}

	var builtOn = -1
	best := -1
	for _, id := range g.NodeIDs() {
		score := b.nodeCoverage(id, def.Combat.Range)
		if g.ECS.Nodes[id].Occupied() {
			builtOn = score
		}
		if score > best {
			best = score
		}
	}
	if builtOn != best {
		t.Errorf("built on coverage %d, best is %d", builtOn, best)
	}
}

func TestAutoBuilderWaitsForGold(t *testing.T) {
	g := newTestGame(t)
	g.PlayerSystem.SpendGold(g.PlayerSystem.Gold())
	b := NewAutoBuilder(g, 1)
	if b.Step() {
		t.Error("Step acted without gold")
	}
	if len(g.ECS.Towers) != 0 {
		t.Error("tower built without gold")
	}
}

func TestAutoBuilderFusesWhenNodesAreFull(t *testing.T) {
	g := newTestGame(t)
	g.PlayerSystem.AddGold(10000)
	g.SelectTowerToBuild("TOWER_FIRE")
	for _, id := range g.NodeIDs() {
		if _, ok := g.BuildTowerOn(id); !ok {
			t.Fatalf("BuildTowerOn(%d) failed", id)
		}
	}

	b := NewAutoBuilder(g, 3)
	if !b.Step() || b.Fused != 1 {
		t.Fatalf("expected a fusion, built=%d fused=%d", b.Built, b.Fused)
	}
	nodes := g.NodeIDs()
	if g.ECS.Nodes[nodes[0]].Occupied() {
		t.Error("first node should be emptied by the fusion")
	}
	tower := g.ECS.Towers[g.ECS.Nodes[nodes[1]].TowerID]
	if tower == nil || tower.DefID != "TOWER_INFERNO" {
		t.Errorf("second node holds %+v; want TOWER_INFERNO", tower)
	}
}

func TestAutoBuilderIsSeeded(t *testing.T) {
	a := NewAutoBuilder(newTestGame(t), 42)
	b := NewAutoBuilder(newTestGame(t), 42)
	for i := 0; i < 20; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("plans diverged at %d: %s vs %s", i, a.Next(), b.Next())
		}
		a.next, b.next = "", ""
	}
}
