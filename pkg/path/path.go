// Package path turns an ordered list of waypoints into a walkable route.
// Enemies never search for a route: they only ask for the position at a
// given travelled distance.
package path

import (
	"errors"
	"fmt"
	"sort"

	"elemental-td/pkg/geom"
)

// Mode selects how consecutive waypoints are joined.
type Mode string

const (
	Linear    Mode = "linear"
	Quadratic Mode = "quadratic" // p0 c p1 c p2 ... (2k+1 points)
	Cubic     Mode = "cubic"     // p0 c c p1 c c p2 ... (3k+1 points)
)

// Number of polyline pieces used to estimate curve length.
const (
	quadraticSteps = 10
	cubicSteps     = 20
)

var (
	ErrTooFewWaypoints = errors.New("path needs at least two waypoints")
	ErrWaypointCount   = errors.New("waypoint count does not fit the curve mode")
	ErrUnknownMode     = errors.New("unknown path mode")
)

type segment struct {
	pts    []geom.Vec2
	length float64
}

func (s segment) at(t float64) geom.Vec2 {
	switch len(s.pts) {
	case 3:
		return geom.QuadraticBezier(s.pts[0], s.pts[1], s.pts[2], t)
	case 4:
		return geom.CubicBezier(s.pts[0], s.pts[1], s.pts[2], s.pts[3], t)
	default:
		return s.pts[0].Lerp(s.pts[1], t)
	}
}

// Path is immutable once built and may be shared by every enemy.
type Path struct {
	waypoints []geom.Vec2
	segments  []segment
	starts    []float64 // cumulative distance at the start of each segment
	total     float64
}

// New builds a path. Curved modes treat the in-between points as control points.
func New(waypoints []geom.Vec2, mode Mode) (*Path, error) {
	if mode == "" {
		mode = Linear
	}
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	var stride int
	switch mode {
	case Linear:
		stride = 1
	case Quadratic:
		stride = 2
	case Cubic:
		stride = 3
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if (len(waypoints)-1)%stride != 0 {
		return nil, fmt.Errorf("%w: %d points for %s", ErrWaypointCount, len(waypoints), mode)
	}

	p := &Path{waypoints: append([]geom.Vec2(nil), waypoints...)}
	for i := 0; i+stride < len(waypoints); i += stride {
		pts := waypoints[i : i+stride+1]
		var l float64
		switch stride {
		case 1:
			l = pts[0].Dist(pts[1])
		case 2:
			l = geom.QuadraticLength(pts[0], pts[1], pts[2], quadraticSteps)
		case 3:
			l = geom.CubicLength(pts[0], pts[1], pts[2], pts[3], cubicSteps)
		}
		p.starts = append(p.starts, p.total)
		p.segments = append(p.segments, segment{pts: pts, length: l})
		p.total += l
	}
	return p, nil
}

// Length is the total travel distance from start to end.
func (p *Path) Length() float64 { return p.total }

func (p *Path) Start() geom.Vec2 { return p.waypoints[0] }

func (p *Path) End() geom.Vec2 { return p.waypoints[len(p.waypoints)-1] }

// Waypoints returns a copy of the defining points.
func (p *Path) Waypoints() []geom.Vec2 { return append([]geom.Vec2(nil), p.waypoints...) }

// PositionAt returns the point reached after travelling distance along the path.
// Distances outside [0, Length] are clamped to the ends.
func (p *Path) PositionAt(distance float64) geom.Vec2 {
	if distance <= 0 {
		return p.Start()
	}
	if distance >= p.total {
		return p.End()
	}
	i := sort.Search(len(p.starts), func(i int) bool { return p.starts[i] > distance }) - 1
	if i < 0 {
		i = 0
	}
	seg := p.segments[i]
	if seg.length == 0 {
		return seg.pts[len(seg.pts)-1]
	}
	return seg.at((distance - p.starts[i]) / seg.length)
}

// Sample returns n+1 evenly spaced points, used to draw the route.
func (p *Path) Sample(n int) []geom.Vec2 {
	if n < 1 {
		n = 1
	}
	out := make([]geom.Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, p.PositionAt(p.total*float64(i)/float64(n)))
	}
	return out
}
