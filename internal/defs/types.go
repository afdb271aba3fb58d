// internal/defs/types.go
package defs

import (
	"fmt"
	"strings"
)

// EnemyType — вид врага. Каждый вид устойчив не более чем к одной стихии.
type EnemyType int

const (
	Grunt EnemyType = iota
	Runner
	Tank
	Boss
)

var enemyTypeNames = [...]string{
	Grunt:  "Grunt",
	Runner: "Runner",
	Tank:   "Tank",
	Boss:   "Boss",
}

func (t EnemyType) String() string {
	if t < Grunt || t > Boss {
		return fmt.Sprintf("EnemyType(%d)", int(t))
	}
	return enemyTypeNames[t]
}

// ResistedFamily returns the base element whose family this enemy type halves.
// Boss resists nothing.
func (t EnemyType) ResistedFamily() (ElementType, bool) {
	switch t {
	case Grunt:
		return Fire, true
	case Runner:
		return Lightning, true
	case Tank:
		return Ice, true
	default:
		return 0, false
	}
}

// Resists reports whether damage of element e is halved for this type.
func (t EnemyType) Resists(e ElementType) bool {
	base, ok := t.ResistedFamily()
	return ok && e.Contains(base)
}

func ParseEnemyType(s string) (EnemyType, error) {
	for i, name := range enemyTypeNames {
		if strings.EqualFold(name, s) {
			return EnemyType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown enemy type %q", s)
}

func (t EnemyType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *EnemyType) UnmarshalText(b []byte) error {
	v, err := ParseEnemyType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
