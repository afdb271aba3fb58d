// internal/component/projectile.go
package component

import (
	"elemental-td/internal/defs"
	"elemental-td/internal/types"
)

// Projectile представляет летящий самонаводящийся снаряд.
type Projectile struct {
	SourceID types.EntityID
	TargetID types.EntityID
	Speed    float64
	Damage   float64
	Element  defs.ElementType
	Stats    defs.CombatStats // burn/slow параметры башни на момент выстрела
	Splash   bool             // FireFire: разлёт на соседей цели
}
