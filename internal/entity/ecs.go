// internal/entity/ecs.go
package entity

import (
	"elemental-td/internal/component"
	"elemental-td/internal/types"
)

// ECS — реестр всех сущностей. Сущность жива, пока у неё есть хотя бы
// один компонент; ссылки по ID проверяются через этот реестр.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.PathFollower
	Healths       map[types.EntityID]*component.Health
	Enemies       map[types.EntityID]*component.Enemy
	StatusEffects map[types.EntityID]*component.StatusEffects
	Towers        map[types.EntityID]*component.Tower
	Projectiles   map[types.EntityID]*component.Projectile
	Nodes         map[types.EntityID]*component.Node
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Lasers        map[types.EntityID]*component.Laser
	Pulses        map[types.EntityID]*component.Pulse
	PlayerState   *component.PlayerStateComponent
	Outcome       component.GameOutcome
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.PathFollower),
		Healths:       make(map[types.EntityID]*component.Health),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		Towers:        make(map[types.EntityID]*component.Tower),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Nodes:         make(map[types.EntityID]*component.Node),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Lasers:        make(map[types.EntityID]*component.Laser),
		Pulses:        make(map[types.EntityID]*component.Pulse),
		PlayerState:   &component.PlayerStateComponent{},
		Outcome:       component.Playing,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.StatusEffects, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Nodes, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Lasers, id)
	delete(ecs.Pulses, id)
}
