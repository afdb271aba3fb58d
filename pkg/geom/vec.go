// Package geom holds the small amount of 2D geometry the simulation needs.
package geom

import "math"

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Scale(k float64) Vec2 { return Vec2{a.X * k, a.Y * k} }

// Len returns the Euclidean length of a.
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// Dist returns the Euclidean distance between a and b.
func (a Vec2) Dist(b Vec2) float64 { return b.Sub(a).Len() }

// Lerp interpolates between a and b; t is not clamped.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// MoveTowards steps from a to b by at most maxStep. The second result
// reports whether b was reached.
func (a Vec2) MoveTowards(b Vec2, maxStep float64) (Vec2, bool) {
	d := b.Sub(a)
	dist := d.Len()
	if dist <= maxStep || dist == 0 {
		return b, true
	}
	return a.Add(d.Scale(maxStep / dist)), false
}
