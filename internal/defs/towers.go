// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerDefinition holds all the static data for a specific type of tower.
// Buildable towers are offered to the player; the rest only come out of fusion.
type TowerDefinition struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Element   ElementType `json:"element"`
	Cost      int         `json:"cost"`
	Buildable bool        `json:"buildable"`
	Combat    CombatStats `json:"combat"`
	Visuals   Visuals     `json:"visuals"`
}

// CombatStats contains parameters related to a tower's combat abilities.
type CombatStats struct {
	Damage       float64 `json:"damage"`
	FireRate     float64 `json:"fire_rate"` // Shots per second
	Range        float64 `json:"range"`
	BurnDamage   float64 `json:"burn_damage,omitempty"`   // per burn tick
	SlowAmount   float64 `json:"slow_amount,omitempty"`   // 0..1
	SlowDuration float64 `json:"slow_duration,omitempty"` // seconds, projectile slows only
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	Glyph        string     `json:"glyph,omitempty"` // terminal rendering
}
