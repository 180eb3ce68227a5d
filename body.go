package softbody

import (
	"fmt"

	"github.com/google/uuid"
)

// Node is a point mass. Pos is the position every force and collision phase
// reads during a sub-iteration; Next accumulates the pending displacement and
// is committed into Pos once per sub-iteration.
type Node struct {
	Pos  Vec2
	Next Vec2
	Vel  Vec2
}

// Connection is a spring between two nodes of the same body. Edge connections
// trace the body's outer perimeter and take part in collision; the rest are
// internal bracing that only adds stiffness.
type Connection struct {
	I1, I2        int
	IsEdge        bool
	RestingLength float64
}

// Segment is a connection resolved to its endpoint positions, for drawing.
type Segment struct {
	A, B   Vec2
	IsEdge bool
}

// Body is a deformable polygon of nodes and springs with a rigid reference
// shape (the skeleton) it is pulled toward. Node and connection topology is
// fixed at creation; only positions, velocities and the derived fields change.
type Body struct {
	ID uuid.UUID

	Nodes       []Node
	Connections []Connection

	// BaseSkeleton holds each node's offset from the centroid at creation.
	// It never changes. BaseSkeletonNorm is the same offsets at unit length.
	BaseSkeleton     []Vec2
	BaseSkeletonNorm []Vec2

	// Skeleton is BaseSkeleton rotated by Angle and moved to Center,
	// recomputed at the end of every step.
	Skeleton []Vec2

	Center Vec2
	// Angle is the best-fit rotation relative to the creation pose, radians.
	Angle float64

	// Bounds covers every node position padded by the node radius.
	Bounds BoundingBox

	// winding is +1 when the perimeter runs counter-clockwise, -1 otherwise.
	winding float64
}

// NewBody creates a body from node positions and connections. Connection
// indices must be distinct and in range; edge connections must trace a simple
// closed perimeter in order. NewBody panics when the indices are invalid.
//
// The body's bounds are unpadded until it is added to a World or stepped.
func NewBody(positions []Vec2, connections []Connection) *Body {
	n := len(positions)
	for i, c := range connections {
		if c.I1 < 0 || c.I1 >= n || c.I2 < 0 || c.I2 >= n {
			panic(fmt.Sprintf("softbody: connection %d (%d, %d) out of range for %d nodes", i, c.I1, c.I2, n))
		}
		if c.I1 == c.I2 {
			panic(fmt.Sprintf("softbody: connection %d joins node %d to itself", i, c.I1))
		}
	}

	b := &Body{
		ID:               uuid.New(),
		Nodes:            make([]Node, n),
		Connections:      append([]Connection(nil), connections...),
		BaseSkeleton:     make([]Vec2, n),
		BaseSkeletonNorm: make([]Vec2, n),
		Skeleton:         make([]Vec2, n),
	}
	for i, p := range positions {
		b.Nodes[i] = Node{Pos: p, Next: p}
	}

	centroid := b.centroid()
	for i, p := range positions {
		off := p.Sub(centroid)
		b.BaseSkeleton[i] = off
		b.BaseSkeletonNorm[i] = off.Normalize()
	}
	b.winding = b.perimeterWinding()

	b.refreshCenter()
	b.refreshAngle()
	b.refreshSkeleton()
	b.refreshBounds(0)

	if globalDebug {
		debugCheckNodeCount(b)
	}
	return b
}

// NodeCount returns the number of nodes in the body.
func (b *Body) NodeCount() int {
	return len(b.Nodes)
}

// Positions returns the committed position of every node, in node order.
func (b *Body) Positions() []Vec2 {
	out := make([]Vec2, len(b.Nodes))
	for i := range b.Nodes {
		out[i] = b.Nodes[i].Pos
	}
	return out
}

// Segments returns the endpoint positions of every connection, in
// connection order.
func (b *Body) Segments() []Segment {
	out := make([]Segment, len(b.Connections))
	for i, c := range b.Connections {
		out[i] = Segment{
			A:      b.Nodes[c.I1].Pos,
			B:      b.Nodes[c.I2].Pos,
			IsEdge: c.IsEdge,
		}
	}
	return out
}

// Outline returns the perimeter as a polygon: the first endpoint of each edge
// connection in connection order.
func (b *Body) Outline() []Vec2 {
	var out []Vec2
	for _, c := range b.Connections {
		if c.IsEdge {
			out = append(out, b.Nodes[c.I1].Pos)
		}
	}
	return out
}

// centroid is the mean committed node position.
func (b *Body) centroid() Vec2 {
	var sum Vec2
	for i := range b.Nodes {
		sum = sum.Add(b.Nodes[i].Pos)
	}
	return sum.Scale(1 / float64(len(b.Nodes)))
}

// perimeterWinding returns the sign of the area enclosed by the edge
// connections: +1 for counter-clockwise, -1 for clockwise. A body without a
// perimeter reports +1.
func (b *Body) perimeterWinding() float64 {
	var area float64
	for _, c := range b.Connections {
		if !c.IsEdge {
			continue
		}
		area += b.Nodes[c.I1].Pos.PerpDot(b.Nodes[c.I2].Pos)
	}
	if area < 0 {
		return -1
	}
	return 1
}

// outwardNormal returns the unit normal of the edge from a to b that points
// out of the body's perimeter.
func (b *Body) outwardNormal(a, c Vec2) Vec2 {
	// For a counter-clockwise loop the outside is on the right of each edge.
	return c.Sub(a).Perp().Scale(-b.winding).Normalize()
}
