package geom

import "elemental-td/pkg/utils"

// QuadraticBezier evaluates a quadratic curve at t, t clamped to [0, 1].
func QuadraticBezier(p0, p1, p2 Vec2, t float64) Vec2 {
	t = utils.Clamp01(t)
	u := 1 - t
	return p0.Scale(u * u).Add(p1.Scale(2 * u * t)).Add(p2.Scale(t * t))
}

// CubicBezier evaluates a cubic curve at t, t clamped to [0, 1].
func CubicBezier(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	t = utils.Clamp01(t)
	u := 1 - t
	return p0.Scale(u * u * u).
		Add(p1.Scale(3 * u * u * t)).
		Add(p2.Scale(3 * u * t * t)).
		Add(p3.Scale(t * t * t))
}

// QuadraticLength approximates the arc length with a polyline of steps pieces.
func QuadraticLength(p0, p1, p2 Vec2, steps int) float64 {
	return polylineLength(steps, func(t float64) Vec2 { return QuadraticBezier(p0, p1, p2, t) })
}

// CubicLength approximates the arc length with a polyline of steps pieces.
func CubicLength(p0, p1, p2, p3 Vec2, steps int) float64 {
	return polylineLength(steps, func(t float64) Vec2 { return CubicBezier(p0, p1, p2, p3, t) })
}

func polylineLength(steps int, at func(t float64) Vec2) float64 {
	if steps < 1 {
		steps = 1
	}
	length := 0.0
	last := at(0)
	for i := 1; i <= steps; i++ {
		cur := at(float64(i) / float64(steps))
		length += last.Dist(cur)
		last = cur
	}
	return length
}
