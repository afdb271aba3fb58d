package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/interfaces"
	"elemental-td/internal/types"
)

// FusionSystem объединяет две башни в гибрид по таблице рецептов.
// Слияние либо выполняется целиком, либо не меняет ничего.
type FusionSystem struct {
	ecs             *entity.ECS
	level           *defs.Level
	economy         interfaces.Economy
	eventDispatcher *event.Dispatcher

	// Выбор слотов для слияния кликами.
	nodeA, nodeB types.EntityID
}

func NewFusionSystem(ecs *entity.ECS, level *defs.Level, economy interfaces.Economy, eventDispatcher *event.Dispatcher) *FusionSystem {
	return &FusionSystem{ecs: ecs, level: level, economy: economy, eventDispatcher: eventDispatcher}
}

// FusionPlan — результат проверки возможного слияния.
type FusionPlan struct {
	Result defs.TowerDefinition
	Cost   int
}

// CanFuse проверяет слияние без изменения состояния. Пустая причина значит, что слияние возможно.
func (s *FusionSystem) CanFuse(nodeA, nodeB types.EntityID) (FusionPlan, event.DenyReason) {
	if s.ecs.Outcome != component.Playing {
		return FusionPlan{}, event.DenyGameOver
	}
	a, okA := s.ecs.Nodes[nodeA]
	b, okB := s.ecs.Nodes[nodeB]
	if !okA || !okB {
		return FusionPlan{}, event.DenyInvalidNode
	}
	if nodeA == nodeB {
		return FusionPlan{}, event.DenySameNode
	}
	if !a.Occupied() || !b.Occupied() {
		return FusionPlan{}, event.DenyEmptyNode
	}
	plan, reason := s.plan(s.ecs.Towers[a.TowerID].Element, s.ecs.Towers[b.TowerID].Element)
	if reason != "" {
		return plan, reason
	}
	if s.economy.Gold() < plan.Cost {
		return plan, event.DenyInsufficientGold
	}
	return plan, ""
}

func (s *FusionSystem) plan(x, y defs.ElementType) (FusionPlan, event.DenyReason) {
	result, ok := s.level.Fusion.Lookup(x, y)
	if !ok {
		return FusionPlan{}, event.DenyNoRecipe
	}
	def, ok := s.level.TowerForElement(result)
	if !ok {
		return FusionPlan{}, event.DenyMissingBlueprint
	}
	return FusionPlan{Result: def, Cost: s.level.Fusion.Cost}, ""
}

// TryFuse сливает башни со слотов A и B. Гибрид встаёт на слот B, слот A освобождается.
func (s *FusionSystem) TryFuse(nodeA, nodeB types.EntityID) (types.EntityID, bool) {
	plan, reason := s.CanFuse(nodeA, nodeB)
	if reason != "" {
		dispatchDenied(s.eventDispatcher, nodeB, reason)
		return 0, false
	}
	if !s.economy.SpendGold(plan.Cost) {
		dispatchDenied(s.eventDispatcher, nodeB, event.DenyInsufficientGold)
		return 0, false
	}

	removedA := removeTower(s.ecs, nodeA)
	removedB := removeTower(s.ecs, nodeB)
	s.dispatchRemoved(removedA, nodeA)
	s.dispatchRemoved(removedB, nodeB)
	id := placeTower(s.ecs, nodeB, plan.Result)
	s.dispatchFused(id, nodeA, nodeB, plan)
	s.ClearSelection()
	return id, true
}

// fuseWithBlueprint сливает башню на слоте с перетаскиваемым чертежом.
func (s *FusionSystem) fuseWithBlueprint(nodeID types.EntityID, blueprint defs.TowerDefinition) (types.EntityID, bool) {
	if s.ecs.Outcome != component.Playing {
		dispatchDenied(s.eventDispatcher, nodeID, event.DenyGameOver)
		return 0, false
	}
	node := s.ecs.Nodes[nodeID]
	existing := s.ecs.Towers[node.TowerID]
	plan, reason := s.plan(existing.Element, blueprint.Element)
	if reason == event.DenyNoRecipe {
		// Рецепта нет — обычная постройка, а слот занят.
		reason = event.DenyOccupied
	}
	if reason != "" {
		dispatchDenied(s.eventDispatcher, nodeID, reason)
		return 0, false
	}
	plan.Cost += blueprint.Cost
	if !s.economy.SpendGold(plan.Cost) {
		dispatchDenied(s.eventDispatcher, nodeID, event.DenyInsufficientGold)
		return 0, false
	}

	removed := removeTower(s.ecs, nodeID)
	s.dispatchRemoved(removed, nodeID)
	id := placeTower(s.ecs, nodeID, plan.Result)
	s.dispatchFused(id, nodeID, nodeID, plan)
	return id, true
}

// SelectForFusion переключает выбор слота: повторный клик снимает выбор,
// третий слот начинает выбор заново. Возвращает текущую пару.
func (s *FusionSystem) SelectForFusion(nodeID types.EntityID) (types.EntityID, types.EntityID) {
	switch {
	case s.nodeA == nodeID:
		s.nodeA = 0
	case s.nodeB == nodeID:
		s.nodeB = 0
	case s.nodeA == 0:
		s.nodeA = nodeID
	case s.nodeB == 0:
		s.nodeB = nodeID
	default:
		s.nodeA = nodeID
		s.nodeB = 0
	}
	return s.nodeA, s.nodeB
}

func (s *FusionSystem) Selection() (types.EntityID, types.EntityID) { return s.nodeA, s.nodeB }

// SelectionFusable — можно ли слить выбранную пару прямо сейчас.
func (s *FusionSystem) SelectionFusable() bool {
	if s.nodeA == 0 || s.nodeB == 0 {
		return false
	}
	_, reason := s.CanFuse(s.nodeA, s.nodeB)
	return reason == ""
}

// FuseSelection сливает выбранную пару.
func (s *FusionSystem) FuseSelection() (types.EntityID, bool) {
	return s.TryFuse(s.nodeA, s.nodeB)
}

func (s *FusionSystem) ClearSelection() {
	s.nodeA, s.nodeB = 0, 0
}

func (s *FusionSystem) dispatchRemoved(towerID, nodeID types.EntityID) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerRemoved,
		Data: event.TowerRemovedData{TowerID: towerID, NodeID: nodeID},
	})
}

func (s *FusionSystem) dispatchFused(id, nodeA, nodeB types.EntityID, plan FusionPlan) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerFused,
		Data: event.TowerFusedData{TowerID: id, NodeA: nodeA, NodeB: nodeB, Result: plan.Result.Element, Cost: plan.Cost},
	})
}
