package softbody

import "math"

// Pointer is the per-tick cursor signal. When Active is false the pointer has
// no effect.
type Pointer struct {
	Active bool
	Pos    Vec2
}

// Grab pins the single node nearest to cursor, across every body, onto the
// cursor and stops it. Ties resolve to the first node in body then node
// order. It reports whether a node was moved.
func (w *World) Grab(cursor Vec2) bool {
	best := math.Inf(1)
	for _, b := range w.bodies {
		for i := range b.Nodes {
			if d := b.Nodes[i].Pos.Sub(cursor).Len(); d < best {
				best = d
			}
		}
	}
	if math.IsInf(best, 1) {
		return false
	}

	for _, b := range w.bodies {
		for i := range b.Nodes {
			n := &b.Nodes[i]
			if n.Pos.Sub(cursor).Len() == best {
				n.Next = cursor
				n.Vel = Vec2{}
				return true
			}
		}
	}
	return false
}
