// component/tower.go
package component

import (
	"elemental-td/internal/defs"
	"elemental-td/internal/types"
)

type Tower struct {
	DefID    string           // ID из уровня
	Element  defs.ElementType // стихия определяет форму атаки
	Stats    defs.CombatStats // дальность, урон, скорострельность и параметры статусов
	NodeID   types.EntityID   // слот, на котором стоит башня
	TargetID types.EntityID   // текущая цель, 0 если нет
	Cooldown float64          // до следующего выстрела, >= 0
}
