package component

import "elemental-td/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Type       defs.EnemyType
	Resistance bool // устойчивость к стихии включена для этой пачки
	Reward     int  // золото за убийство
	IsDead     bool // выставляется один раз, дальше урон и статусы игнорируются
	ReachedEnd bool // дошёл до конца пути
}
