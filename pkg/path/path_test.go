package path

import (
	"errors"
	"math"
	"testing"

	"elemental-td/pkg/geom"
)

func TestLinearPositionAt(t *testing.T) {
	p, err := New([]geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}}, Linear)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Length() != 15 {
		t.Fatalf("Length = %v; want 15", p.Length())
	}
	cases := []struct {
		d    float64
		want geom.Vec2
	}{
		{-1, geom.V(0, 0)},
		{4, geom.V(4, 0)},
		{10, geom.V(10, 0)},
		{12, geom.V(10, 2)},
		{99, geom.V(10, 5)},
	}
	for _, c := range cases {
		got := p.PositionAt(c.d)
		if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
			t.Errorf("PositionAt(%v) = %v; want %v", c.d, got, c.want)
		}
	}
}

func TestCurvedModesValidateCounts(t *testing.T) {
	pts := []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 1}}
	if _, err := New(pts, Quadratic); !errors.Is(err, ErrWaypointCount) {
		t.Errorf("quadratic with 4 points: err = %v; want ErrWaypointCount", err)
	}
	if _, err := New(pts, Cubic); err != nil {
		t.Errorf("cubic with 4 points: unexpected err %v", err)
	}
	if _, err := New(pts[:1], Linear); !errors.Is(err, ErrTooFewWaypoints) {
		t.Errorf("single point: err = %v; want ErrTooFewWaypoints", err)
	}
	if _, err := New(pts, Mode("spline")); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("unknown mode: err = %v; want ErrUnknownMode", err)
	}
}

func TestQuadraticPathEndsOnLastWaypoint(t *testing.T) {
	p, err := New([]geom.Vec2{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}, {X: 15, Y: -5}, {X: 20, Y: 0}}, Quadratic)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Length() <= 20 {
		t.Errorf("curved length %v should exceed the chord length 20", p.Length())
	}
	if got := p.PositionAt(p.Length()); got != geom.V(20, 0) {
		t.Errorf("end = %v; want (20,0)", got)
	}
	if got := len(p.Sample(8)); got != 9 {
		t.Errorf("Sample(8) returned %d points; want 9", got)
	}
}
