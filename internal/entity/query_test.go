package entity

import (
	"testing"

	"elemental-td/internal/component"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

func addEnemy(ecs *ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Enemies[id] = &component.Enemy{}
	return id
}

func TestNearestEnemyTieKeepsSpawnOrder(t *testing.T) {
	ecs := NewECS()
	first := addEnemy(ecs, 1, 0)
	addEnemy(ecs, -1, 0)

	for i := 0; i < 20; i++ {
		id, dist, ok := ecs.NearestEnemy(geom.Vec2{}, nil)
		if !ok || id != first || dist != 1 {
			t.Fatalf("NearestEnemy = %d, %v, %v; want %d, 1, true", id, dist, ok, first)
		}
	}
}

func TestNearestEnemySkipsDeadAndExcluded(t *testing.T) {
	ecs := NewECS()
	dead := addEnemy(ecs, 0.5, 0)
	ecs.Enemies[dead].IsDead = true
	hit := addEnemy(ecs, 1, 0)
	far := addEnemy(ecs, 3, 0)

	id, _, ok := ecs.NearestEnemy(geom.Vec2{}, func(id types.EntityID) bool { return id == hit })
	if !ok || id != far {
		t.Errorf("NearestEnemy = %d; want %d", id, far)
	}
}

func TestNearestEnemyEmptyWorld(t *testing.T) {
	ecs := NewECS()
	if _, _, ok := ecs.NearestEnemy(geom.Vec2{}, nil); ok {
		t.Error("NearestEnemy on an empty world should report no target")
	}
}

func TestEnemiesWithinIsInclusive(t *testing.T) {
	ecs := NewECS()
	a := addEnemy(ecs, 1.5, 0)
	addEnemy(ecs, 1.6, 0)
	got := ecs.EnemiesWithin(geom.Vec2{}, 1.5)
	if len(got) != 1 || got[0] != a {
		t.Errorf("EnemiesWithin = %v; want [%d]", got, a)
	}
}

func TestRemoveEntityDropsLiveness(t *testing.T) {
	ecs := NewECS()
	id := addEnemy(ecs, 0, 0)
	ecs.RemoveEntity(id)
	if ecs.IsLiveEnemy(id) {
		t.Error("removed enemy still reported live")
	}
	if len(ecs.LiveEnemies()) != 0 {
		t.Error("LiveEnemies not empty after removal")
	}
}
