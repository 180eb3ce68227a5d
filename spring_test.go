package softbody

import (
	"math"
	"testing"
)

func TestSpringForce(t *testing.T) {
	tests := []struct {
		name                     string
		k, d, limit, rest, ln, v float64
		want                     float64
	}{
		{"at rest", 25, 5, 1000, 100, 100, 0, 0},
		{"compressed", 25, 0, 1000, 100, 90, 0, 250},
		{"stretched", 25, 0, 1000, 100, 110, 0, -250},
		{"damped closing", 25, 4, 1000, 100, 100, 10, -20},
		{"clamped high", 25, 0, 1000, 100, 0, 0, 1000},
		{"clamped low", 25, 0, 1000, 100, 500, 0, -1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "force", SpringForce(tt.k, tt.d, tt.limit, tt.rest, tt.ln, tt.v), tt.want)
		})
	}
}

func TestSpringForceBounded(t *testing.T) {
	for _, ln := range []float64{0, 1e-9, 50, 1e6, math.MaxFloat64 / 1e10} {
		for _, v := range []float64{-1e9, 0, 1e9} {
			f := SpringForce(25, 5, 1000, 100, ln, v)
			if f < -1000 || f > 1000 {
				t.Errorf("SpringForce(len=%v, v=%v) = %v outside limit", ln, v, f)
			}
		}
	}
}

func TestApplySpringsAtRest(t *testing.T) {
	cfg := DefaultConfig()
	b := newSquare(cfg.DefaultRestingLength, Vec2{})
	// The diagonal rests at the side length, so only edges are at rest.
	b.Connections = b.Connections[:4]
	b.applySprings(cfg, 1.0/60)
	for i, n := range b.Nodes {
		if !n.Vel.IsZero() {
			t.Errorf("node %d: Vel = %v, want zero at rest", i, n.Vel)
		}
	}
}

func TestApplySpringsStretched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Damping = 0
	pts := []Vec2{{0, 0}, {120, 0}}
	b := NewBody(pts, []Connection{{I1: 0, I2: 1, RestingLength: 100}})

	dt := 0.1
	b.applySprings(cfg, dt)

	// f = 25 * (100 - 120) = -500; n1 moves toward n2 and vice versa.
	assertVecNear(t, "n1 vel", b.Nodes[0].Vel, Vec2{50, 0}, epsilon)
	assertVecNear(t, "n2 vel", b.Nodes[1].Vel, Vec2{-50, 0}, epsilon)
	if b.Nodes[0].Pos != pts[0] || b.Nodes[0].Next != pts[0] {
		t.Error("springs must not move positions")
	}
}

func TestApplySpringsMomentum(t *testing.T) {
	cfg := DefaultConfig()
	s := RegularPolygon(6, 80)
	b := NewBody(s.Points, s.Connections)
	// Deform and give the nodes some velocity.
	for i := range b.Nodes {
		b.Nodes[i].Pos = b.Nodes[i].Pos.Scale(1 + 0.1*float64(i%3))
		b.Nodes[i].Vel = Vec2{float64(i), -float64(i)}
	}
	var before Vec2
	for _, n := range b.Nodes {
		before = before.Add(n.Vel)
	}
	b.applySprings(cfg, 1.0/60)
	var after Vec2
	for _, n := range b.Nodes {
		after = after.Add(n.Vel)
	}
	assertVecNear(t, "total velocity", after, before, 1e-9)
}

func TestApplySpringsCoincidentSkipped(t *testing.T) {
	cfg := DefaultConfig()
	pts := []Vec2{{5, 5}, {5, 5}}
	b := NewBody(pts, []Connection{{I1: 0, I2: 1, RestingLength: 100}})
	b.applySprings(cfg, 1.0/60)
	for i, n := range b.Nodes {
		if n.Vel.IsNaN() || !n.Vel.IsZero() {
			t.Errorf("node %d: Vel = %v, want zero", i, n.Vel)
		}
	}
}

func TestApplySpringsIterationScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Damping = 0
	pts := []Vec2{{0, 0}, {120, 0}}

	one := NewBody(pts, []Connection{{I1: 0, I2: 1, RestingLength: 100}})
	one.applySprings(cfg, 0.1)

	cfg.SubIterations = 4
	four := NewBody(pts, []Connection{{I1: 0, I2: 1, RestingLength: 100}})
	four.applySprings(cfg, 0.1)

	assertNear(t, "scaled", four.Nodes[0].Vel.X, one.Nodes[0].Vel.X/4)
}
