// internal/defs/element.go
package defs

import (
	"fmt"
	"strings"
)

// ElementType is the damage element of a tower. There are exactly nine:
// three base elements, three same-element upgrades and three cross pairs.
// Derived elements are only ever produced by fusion.
type ElementType int

const (
	Fire ElementType = iota
	Ice
	Lightning
	FireFire
	IceIce
	LightningLightning
	FireIce
	FireLightning
	IceLightning

	elementCount
)

var elementNames = [...]string{
	Fire:               "Fire",
	Ice:                "Ice",
	Lightning:          "Lightning",
	FireFire:           "FireFire",
	IceIce:             "IceIce",
	LightningLightning: "LightningLightning",
	FireIce:            "FireIce",
	FireLightning:      "FireLightning",
	IceLightning:       "IceLightning",
}

// AllElements lists every element in declaration order.
func AllElements() []ElementType {
	out := make([]ElementType, 0, elementCount)
	for e := Fire; e < elementCount; e++ {
		out = append(out, e)
	}
	return out
}

func (e ElementType) Valid() bool { return e >= Fire && e < elementCount }

func (e ElementType) String() string {
	if !e.Valid() {
		return fmt.Sprintf("ElementType(%d)", int(e))
	}
	return elementNames[e]
}

// IsBase reports whether e is one of Fire, Ice, Lightning.
func (e ElementType) IsBase() bool { return e == Fire || e == Ice || e == Lightning }

// Components returns the two base elements e was fused from, or e twice
// for a base element.
func (e ElementType) Components() (ElementType, ElementType) {
	switch e {
	case FireFire:
		return Fire, Fire
	case IceIce:
		return Ice, Ice
	case LightningLightning:
		return Lightning, Lightning
	case FireIce:
		return Fire, Ice
	case FireLightning:
		return Fire, Lightning
	case IceLightning:
		return Ice, Lightning
	default:
		return e, e
	}
}

// Contains reports family membership: whether base is one of e's components.
// Fire family = {Fire, FireFire, FireIce, FireLightning}.
func (e ElementType) Contains(base ElementType) bool {
	a, b := e.Components()
	return a == base || b == base
}

// ParseElement accepts the element name, case-insensitively.
func ParseElement(s string) (ElementType, error) {
	for i, name := range elementNames {
		if strings.EqualFold(name, s) {
			return ElementType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

func (e ElementType) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("invalid element %d", int(e))
	}
	return []byte(e.String()), nil
}

func (e *ElementType) UnmarshalText(b []byte) error {
	v, err := ParseElement(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
