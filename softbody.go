package softbody

import "math"

// Vec2 is a 2D vector used for positions, velocities, offsets and directions
// throughout the API. The world is y-up: gravity pulls toward negative Y.
type Vec2 struct {
	X, Y float64
}

// BoundingBox is an axis-aligned box given by its minimum and maximum corners.
type BoundingBox struct {
	Min, Max Vec2
}

// Contains reports whether the point p lies inside the box.
// Points on the edge are considered inside.
func (b BoundingBox) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Overlaps reports whether b and other overlap on both axes.
// Boxes sharing only an edge are considered overlapping.
func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return IntervalsOverlap(b.Min.X, b.Max.X, other.Min.X, other.Max.X) &&
		IntervalsOverlap(b.Min.Y, b.Max.Y, other.Min.Y, other.Max.Y)
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.Max.Y - b.Min.Y }

// IntervalsOverlap reports whether [min1, max1] and [min2, max2] share at
// least one point.
func IntervalsOverlap(min1, max1, min2, max2 float64) bool {
	return min1 <= max2 && max1 >= min2
}

// emptyBounds returns a box that any point will grow.
func emptyBounds() BoundingBox {
	return BoundingBox{
		Min: Vec2{math.Inf(1), math.Inf(1)},
		Max: Vec2{math.Inf(-1), math.Inf(-1)},
	}
}

// grow extends the box to include p.
func (b *BoundingBox) grow(p Vec2) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
}

// pad expands the box by r on every side.
func (b *BoundingBox) pad(r float64) {
	b.Min.X -= r
	b.Min.Y -= r
	b.Max.X += r
	b.Max.Y += r
}
