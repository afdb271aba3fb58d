// internal/entity/query.go
package entity

import (
	"cmp"
	"math"
	"slices"

	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

// SortedIDs returns the keys of m in ascending order. Systems iterate over
// these snapshots so that ties always resolve in spawn order.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, cmp.Compare[types.EntityID])
	return ids
}

// IsLiveEnemy reports whether id is an enemy that is still in play.
func (ecs *ECS) IsLiveEnemy(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	enemy, ok := ecs.Enemies[id]
	return ok && !enemy.IsDead
}

// LiveEnemies is a sorted snapshot of every live enemy.
func (ecs *ECS) LiveEnemies() []types.EntityID {
	ids := SortedIDs(ecs.Enemies)
	live := ids[:0]
	for _, id := range ids {
		if ecs.IsLiveEnemy(id) {
			live = append(live, id)
		}
	}
	return live
}

// NearestEnemy finds the live enemy closest to from, skipping the ones for
// which skip returns true. Equal distances keep the earlier spawn.
func (ecs *ECS) NearestEnemy(from geom.Vec2, skip func(types.EntityID) bool) (types.EntityID, float64, bool) {
	var nearest types.EntityID
	best := math.MaxFloat64
	for _, id := range ecs.LiveEnemies() {
		if skip != nil && skip(id) {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if d := from.Dist(*pos); d < best {
			best = d
			nearest = id
		}
	}
	if nearest == 0 {
		return 0, 0, false
	}
	return nearest, best, true
}

// EnemiesWithin returns live enemies whose distance to center is <= radius.
func (ecs *ECS) EnemiesWithin(center geom.Vec2, radius float64) []types.EntityID {
	var found []types.EntityID
	for _, id := range ecs.LiveEnemies() {
		if pos, ok := ecs.Positions[id]; ok && center.Dist(*pos) <= radius {
			found = append(found, id)
		}
	}
	return found
}

// NodeByIndex finds the build node with the given level index.
func (ecs *ECS) NodeByIndex(index int) (types.EntityID, bool) {
	for _, id := range SortedIDs(ecs.Nodes) {
		if ecs.Nodes[id].Index == index {
			return id, true
		}
	}
	return 0, false
}
