// internal/app/tower_management.go
package app

import (
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/system"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

// NodeAt finds the build node under a world point.
func (g *Game) NodeAt(p geom.Vec2) (types.EntityID, bool) {
	for _, id := range entity.SortedIDs(g.ECS.Nodes) {
		if pos, ok := g.ECS.Positions[id]; ok && pos.Dist(p) <= config.NodeRadius {
			return id, true
		}
	}
	return 0, false
}

// TowerOn returns the tower standing on the node, if any.
func (g *Game) TowerOn(nodeID types.EntityID) (types.EntityID, bool) {
	node, ok := g.ECS.Nodes[nodeID]
	if !ok || !node.Occupied() {
		return 0, false
	}
	return node.TowerID, true
}

func (g *Game) SelectTowerToBuild(towerID string) bool {
	return g.BuildSystem.SelectTowerToBuild(towerID)
}

func (g *Game) BuildTowerOn(nodeID types.EntityID) (types.EntityID, bool) {
	return g.BuildSystem.BuildTowerOn(nodeID)
}

func (g *Game) TryFuseOrBuild(nodeID types.EntityID, towerID string) (types.EntityID, bool) {
	return g.BuildSystem.TryFuseOrBuild(nodeID, towerID)
}

func (g *Game) TryFuse(nodeA, nodeB types.EntityID) (types.EntityID, bool) {
	return g.FusionSystem.TryFuse(nodeA, nodeB)
}

func (g *Game) CanFuse(nodeA, nodeB types.EntityID) bool {
	_, reason := g.FusionSystem.CanFuse(nodeA, nodeB)
	return reason == ""
}

// HandleNodeClick — клик по слоту. С выбранным чертежом пустой слот
// застраивается; по занятому слоту клик выбирает его для слияния.
func (g *Game) HandleNodeClick(nodeID types.EntityID) {
	if _, hasSelection := g.BuildSystem.Selected(); hasSelection && !g.ECS.Nodes[nodeID].Occupied() {
		g.BuildSystem.BuildTowerOn(nodeID)
		return
	}
	if g.ECS.Nodes[nodeID].Occupied() {
		g.FusionSystem.SelectForFusion(nodeID)
	}
}

// FusionPreview — результат слияния выбранной пары, для подсказки в интерфейсе.
func (g *Game) FusionPreview() (defs.TowerDefinition, bool) {
	a, b := g.FusionSystem.Selection()
	if a == 0 || b == 0 {
		return defs.TowerDefinition{}, false
	}
	plan, reason := g.FusionSystem.CanFuse(a, b)
	return plan.Result, reason == ""
}

// DragPreview сообщает, чем закончится бросок чертежа на слот.
func (g *Game) DragPreview(nodeID types.EntityID, towerID string) (fusion bool, ok bool) {
	node, exists := g.ECS.Nodes[nodeID]
	def, known := g.Level.Tower(towerID)
	if !exists || !known {
		return false, false
	}
	if !node.Occupied() {
		return false, g.PlayerSystem.Gold() >= def.Cost
	}
	existing := g.ECS.Towers[node.TowerID]
	if _, found := g.Level.Fusion.Lookup(existing.Element, def.Element); !found {
		return false, false
	}
	return true, g.PlayerSystem.Gold() >= def.Cost+g.Level.Fusion.Cost
}

// WavePhase is exposed for the HUD.
func (g *Game) WavePhase() system.WavePhase { return g.WaveSystem.Phase() }

// FuseSelection сливает пару, выбранную кликами.
func (g *Game) FuseSelection() (types.EntityID, bool) {
	return g.FusionSystem.FuseSelection()
}

func (g *Game) FusionSelection() (types.EntityID, types.EntityID) {
	return g.FusionSystem.Selection()
}

// ClearSelections сбрасывает и чертёж, и выбор для слияния.
func (g *Game) ClearSelections() {
	g.BuildSystem.ClearSelection()
	g.FusionSystem.ClearSelection()
}

// ElementCounts — число башен каждой стихии на поле.
func (g *Game) ElementCounts() map[defs.ElementType]int {
	counts := make(map[defs.ElementType]int)
	for _, tower := range g.ECS.Towers {
		counts[tower.Element]++
	}
	return counts
}
