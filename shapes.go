package softbody

import (
	"errors"
	"fmt"
	"math"
)

// Shape is a declarative body description: node positions relative to the
// shape's origin and the connections between them. Every topology is a
// Shape; there is one Body type for all of them.
type Shape struct {
	Points      []Vec2
	Connections []Connection
}

// Square returns the stock four-node square of the given side, centered on
// the origin. Its perimeter runs top-left, top-right, bottom-right,
// bottom-left, and one diagonal braces it. Every connection, diagonal
// included, rests at side.
func Square(side float64) Shape {
	h := side / 2
	return Shape{
		Points: []Vec2{
			{-h, h},
			{h, h},
			{-h, -h},
			{h, -h},
		},
		Connections: []Connection{
			{I1: 0, I2: 1, IsEdge: true, RestingLength: side},
			{I1: 1, I2: 3, IsEdge: true, RestingLength: side},
			{I1: 3, I2: 2, IsEdge: true, RestingLength: side},
			{I1: 2, I2: 0, IsEdge: true, RestingLength: side},
			{I1: 0, I2: 3, IsEdge: false, RestingLength: side},
		},
	}
}

// Box returns a w x h rectangle centered on the origin, subdivided into
// cols x rows cells. The perimeter is traced counter-clockwise; every cell
// is braced by its inner grid lines and both diagonals. Resting lengths are
// the measured lengths.
func Box(w, h float64, cols, rows int) Shape {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	vcols := cols + 1
	vrows := rows + 1
	idx := func(c, r int) int { return r*vcols + c }

	points := make([]Vec2, vcols*vrows)
	for r := 0; r < vrows; r++ {
		for c := 0; c < vcols; c++ {
			points[idx(c, r)] = Vec2{
				X: -w/2 + w*float64(c)/float64(cols),
				Y: -h/2 + h*float64(r)/float64(rows),
			}
		}
	}

	var conns []Connection
	link := func(i1, i2 int, edge bool) {
		conns = append(conns, Connection{
			I1: i1, I2: i2, IsEdge: edge,
			RestingLength: points[i2].Sub(points[i1]).Len(),
		})
	}

	// Perimeter, counter-clockwise from the bottom-left corner.
	for c := 0; c < cols; c++ {
		link(idx(c, 0), idx(c+1, 0), true)
	}
	for r := 0; r < rows; r++ {
		link(idx(cols, r), idx(cols, r+1), true)
	}
	for c := cols; c > 0; c-- {
		link(idx(c, rows), idx(c-1, rows), true)
	}
	for r := rows; r > 0; r-- {
		link(idx(0, r), idx(0, r-1), true)
	}

	// Inner grid lines.
	for r := 1; r < rows; r++ {
		for c := 0; c < cols; c++ {
			link(idx(c, r), idx(c+1, r), false)
		}
	}
	for c := 1; c < cols; c++ {
		for r := 0; r < rows; r++ {
			link(idx(c, r), idx(c, r+1), false)
		}
	}

	// Cell diagonals.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			link(idx(c, r), idx(c+1, r+1), false)
			link(idx(c+1, r), idx(c, r+1), false)
		}
	}

	return Shape{Points: points, Connections: conns}
}

// RegularPolygon returns a regular polygon with the given number of sides
// and circumradius, centered on the origin, with its first vertex at the top
// and its perimeter traced counter-clockwise. Every vertex is braced to its
// second neighbor and to the vertex opposite it.
func RegularPolygon(sides int, radius float64) Shape {
	if sides < 3 {
		sides = 3
	}
	points := make([]Vec2, sides)
	for i := range points {
		angle := 2*math.Pi*float64(i)/float64(sides) + math.Pi/2
		points[i] = Vec2{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
	return Polygon(points, func(i, j int) bool {
		d := (j - i + sides) % sides
		return d == 2 || d == sides-2 || d == sides/2
	})
}

// Polygon returns a shape whose perimeter follows points in order. brace
// selects which non-adjacent vertex pairs (i < j) get an internal
// connection; a nil brace connects every pair. Resting lengths are the
// measured lengths.
func Polygon(points []Vec2, brace func(i, j int) bool) Shape {
	n := len(points)
	s := Shape{Points: append([]Vec2(nil), points...)}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		s.Connections = append(s.Connections, Connection{
			I1: i, I2: j, IsEdge: true,
			RestingLength: points[j].Sub(points[i]).Len(),
		})
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // perimeter edge
			}
			if brace != nil && !brace(i, j) {
				continue
			}
			s.Connections = append(s.Connections, Connection{
				I1: i, I2: j,
				RestingLength: points[j].Sub(points[i]).Len(),
			})
		}
	}
	return s
}

// Translate returns a copy of s with every point moved by offset.
func (s Shape) Translate(offset Vec2) Shape {
	out := Shape{
		Points:      make([]Vec2, len(s.Points)),
		Connections: append([]Connection(nil), s.Connections...),
	}
	for i, p := range s.Points {
		out.Points[i] = p.Add(offset)
	}
	return out
}

// Validate reports problems that would make NewBody panic or the body
// unusable for collision: too few nodes, invalid connection indices,
// negative resting lengths, or a perimeter with fewer than three edges.
func (s Shape) Validate() error {
	n := len(s.Points)
	if n < 3 {
		return fmt.Errorf("shape has %d nodes, need at least 3", n)
	}
	var errs []error
	edges := 0
	for i, c := range s.Connections {
		if c.I1 < 0 || c.I1 >= n || c.I2 < 0 || c.I2 >= n {
			errs = append(errs, fmt.Errorf("connection %d (%d, %d) out of range for %d nodes", i, c.I1, c.I2, n))
			continue
		}
		if c.I1 == c.I2 {
			errs = append(errs, fmt.Errorf("connection %d joins node %d to itself", i, c.I1))
		}
		if c.RestingLength < 0 {
			errs = append(errs, fmt.Errorf("connection %d has negative resting length %v", i, c.RestingLength))
		}
		if c.IsEdge {
			edges++
		}
	}
	if edges < 3 {
		errs = append(errs, fmt.Errorf("shape has %d edge connections, need at least 3", edges))
	}
	return errors.Join(errs...)
}
