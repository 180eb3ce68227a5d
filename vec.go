package softbody

import "math"

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// PerpDot returns the 2D cross product v.X*o.Y - v.Y*o.X. It is positive when
// o lies counter-clockwise of v.
func (v Vec2) PerpDot(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalize returns v scaled to unit length. The zero vector has no direction
// and normalizes to NaN components; callers check the result with IsNaN.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	return Vec2{v.X / l, v.Y / l}
}

// IsNaN reports whether either component of v is NaN.
func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }

// IsZero reports whether v is exactly the zero vector.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perp returns the left-perpendicular of v (v rotated by +90 degrees).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// ProjectOnLine projects p onto the infinite line through a and b. It returns
// the closest point on that line and the parameter t such that
// closest = a + (b-a)*t; t in [0, 1] means the projection falls on the segment.
// A degenerate segment (a == b) yields a NaN t.
func ProjectOnLine(p, a, b Vec2) (Vec2, float64) {
	ab := b.Sub(a)
	t := p.Sub(a).Dot(ab) / ab.LenSq()
	return a.Add(ab.Scale(t)), t
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
