// internal/system/build.go
package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/interfaces"
	"elemental-td/internal/types"
)

// BuildSystem — граница слоя постройки: выбор чертежа, постройка на слоте,
// слияние перетаскиванием.
type BuildSystem struct {
	ecs             *entity.ECS
	level           *defs.Level
	economy         interfaces.Economy
	fusion          *FusionSystem
	eventDispatcher *event.Dispatcher
	selected        *defs.TowerDefinition
}

func NewBuildSystem(ecs *entity.ECS, level *defs.Level, economy interfaces.Economy, fusion *FusionSystem, eventDispatcher *event.Dispatcher) *BuildSystem {
	return &BuildSystem{
		ecs:             ecs,
		level:           level,
		economy:         economy,
		fusion:          fusion,
		eventDispatcher: eventDispatcher,
	}
}

// SelectTowerToBuild выбирает чертёж. Производные башни строить нельзя,
// для них выбор сбрасывается.
func (s *BuildSystem) SelectTowerToBuild(towerID string) bool {
	def, ok := s.level.Tower(towerID)
	if !ok || !def.Buildable {
		s.selected = nil
		return false
	}
	s.selected = &def
	return true
}

func (s *BuildSystem) Selected() (defs.TowerDefinition, bool) {
	if s.selected == nil {
		return defs.TowerDefinition{}, false
	}
	return *s.selected, true
}

func (s *BuildSystem) ClearSelection() { s.selected = nil }

// BuildTowerOn строит выбранную башню на пустом слоте, если хватает золота.
func (s *BuildSystem) BuildTowerOn(nodeID types.EntityID) (types.EntityID, bool) {
	if s.selected == nil {
		return s.deny(nodeID, event.DenyNoSelection)
	}
	return s.build(nodeID, *s.selected)
}

// TryFuseOrBuild — перетаскивание чертежа на слот. На занятом слоте сначала
// пробуется слияние существующей башни со стихией чертежа (цена чертежа плюс
// цена слияния одной транзакцией); пустой слот застраивается как обычно.
func (s *BuildSystem) TryFuseOrBuild(nodeID types.EntityID, towerID string) (types.EntityID, bool) {
	def, ok := s.level.Tower(towerID)
	if !ok || !def.Buildable {
		return s.deny(nodeID, event.DenyNoSelection)
	}
	node, ok := s.ecs.Nodes[nodeID]
	if !ok {
		return s.deny(nodeID, event.DenyInvalidNode)
	}
	if !node.Occupied() {
		return s.build(nodeID, def)
	}
	return s.fusion.fuseWithBlueprint(nodeID, def)
}

func (s *BuildSystem) build(nodeID types.EntityID, def defs.TowerDefinition) (types.EntityID, bool) {
	if s.ecs.Outcome != component.Playing {
		return s.deny(nodeID, event.DenyGameOver)
	}
	node, ok := s.ecs.Nodes[nodeID]
	if !ok {
		return s.deny(nodeID, event.DenyInvalidNode)
	}
	if node.Occupied() {
		return s.deny(nodeID, event.DenyOccupied)
	}
	if !s.economy.SpendGold(def.Cost) {
		return s.deny(nodeID, event.DenyInsufficientGold)
	}
	id := placeTower(s.ecs, nodeID, def)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPlacedData{TowerID: id, NodeID: nodeID, DefID: def.ID, Element: def.Element},
	})
	return id, true
}

func (s *BuildSystem) deny(nodeID types.EntityID, reason event.DenyReason) (types.EntityID, bool) {
	dispatchDenied(s.eventDispatcher, nodeID, reason)
	return 0, false
}

func dispatchDenied(d *event.Dispatcher, nodeID types.EntityID, reason event.DenyReason) {
	d.Dispatch(event.Event{
		Type: event.BuildDenied,
		Data: event.BuildDeniedData{NodeID: nodeID, Reason: reason},
	})
}

// placeTower создаёт башню на слоте. Проверки выполняет вызывающий.
func placeTower(ecs *entity.ECS, nodeID types.EntityID, def defs.TowerDefinition) types.EntityID {
	id := ecs.NewEntity()
	pos := *ecs.Positions[nodeID]
	ecs.Positions[id] = &pos
	ecs.Towers[id] = &component.Tower{
		DefID:   def.ID,
		Element: def.Element,
		Stats:   def.Combat,
		NodeID:  nodeID,
	}
	ecs.Nodes[nodeID].TowerID = id
	return id
}

// removeTower освобождает слот и возвращает ID удалённой башни.
func removeTower(ecs *entity.ECS, nodeID types.EntityID) types.EntityID {
	node := ecs.Nodes[nodeID]
	id := node.TowerID
	ecs.RemoveEntity(id)
	node.TowerID = 0
	return id
}
