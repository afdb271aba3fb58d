// internal/app/auto_builder.go
package app

import (
	"elemental-td/internal/defs"
	"elemental-td/internal/types"
	"elemental-td/internal/utils"
)

// coverageSamples — сколько точек пути проверяется при оценке слота.
const coverageSamples = 120

// AutoBuilder — бот для прогонов без игрока и для зрителя в терминале.
// Чертёж выбирается взвешенно по BuildPlan уровня; слот — тот, из которого
// башня накрывает больше всего пути. Когда свободных слотов нет, бот
// сливает первую подходящую пару.
type AutoBuilder struct {
	game     *Game
	picker   *utils.BuildPicker
	next     string
	coverage map[coverageKey]int

	Built int
	Fused int
}

type coverageKey struct {
	node  types.EntityID
	reach float64
}

func NewAutoBuilder(g *Game, seed int64) *AutoBuilder {
	plan := g.Level.BuildPlan
	if len(plan) == 0 {
		for _, bp := range g.Level.Blueprints() {
			plan = append(plan, defs.BuildPlanEntry{TowerID: bp.ID, Weight: 1})
		}
	}
	return &AutoBuilder{
		game:     g,
		picker:   utils.NewBuildPicker(plan, seed),
		coverage: make(map[coverageKey]int),
	}
}

// Next — чертёж, который бот собирается построить.
func (b *AutoBuilder) Next() string {
	if b.next == "" {
		b.next = b.picker.Pick()
	}
	return b.next
}

// Step делает не больше одного действия и сообщает, было ли оно.
func (b *AutoBuilder) Step() bool {
	if !b.game.StateSystem.Running() {
		return false
	}
	def, ok := b.game.Level.Tower(b.Next())
	if !ok {
		b.next = ""
		return false
	}

	if node, free := b.bestFreeNode(def.Combat.Range); free {
		if b.game.PlayerSystem.Gold() < def.Cost {
			return false
		}
		b.game.SelectTowerToBuild(def.ID)
		if _, built := b.game.BuildTowerOn(node); built {
			b.Built++
			b.next = ""
			return true
		}
		return false
	}
	return b.fuseAny()
}

func (b *AutoBuilder) fuseAny() bool {
	nodes := b.game.NodeIDs()
	for i, a := range nodes {
		for _, c := range nodes[i+1:] {
			if !b.game.CanFuse(a, c) {
				continue
			}
			if _, ok := b.game.TryFuse(a, c); ok {
				b.Fused++
				return true
			}
		}
	}
	return false
}

// bestFreeNode: лучший по покрытию пути пустой слот; при равенстве — первый в порядке уровня.
func (b *AutoBuilder) bestFreeNode(towerRange float64) (types.EntityID, bool) {
	var best types.EntityID
	bestScore := -1
	for _, id := range b.game.NodeIDs() {
		if b.game.ECS.Nodes[id].Occupied() {
			continue
		}
		score := b.nodeCoverage(id, towerRange)
		if score > bestScore {
			bestScore = score
			best = id
		}
	}
	return best, bestScore >= 0
}

func (b *AutoBuilder) nodeCoverage(node types.EntityID, towerRange float64) int {
	key := coverageKey{node: node, reach: towerRange}
	if score, ok := b.coverage[key]; ok {
		return score
	}
	pos := *b.game.ECS.Positions[node]
	score := 0
	for _, p := range b.game.Path.Sample(coverageSamples) {
		if pos.Dist(p) <= towerRange {
			score++
		}
	}
	b.coverage[key] = score
	return score
}
