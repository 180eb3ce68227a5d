package softbody

import "github.com/google/uuid"

const (
	// edgeParamMin and edgeParamMax bound the projection parameter accepted by
	// the closest-edge search, slightly past the segment's true endpoints.
	edgeParamMin = -0.1
	edgeParamMax = 1.1

	// facingThreshold rejects edges whose outward normal points toward the
	// intruded body's local center.
	facingThreshold = 0.2

	// localCenterNodes is how many nearest nodes form the local center.
	localCenterNodes = 4
)

// Contact describes one resolved penetration: node Node of the intruding body
// was found inside the target body and pushed out across connection Edge.
type Contact struct {
	Intruder uuid.UUID
	Target   uuid.UUID
	Node     int
	Edge     int
	// T is the projection parameter of the node along the edge.
	T float64
	// Point is the closest point on the edge's line.
	Point Vec2
	// Correction is the node position minus Point. The node receives
	// -Correction; the edge endpoints receive Correction*(1-T) and
	// Correction*T, so the pair's net displacement is zero.
	Correction Vec2
}

// Collide resolves penetrations between a and b in both directions, a's nodes
// into b and then b's nodes into a, and returns the resolved contacts. Bodies
// whose bounds do not overlap are rejected without a narrow-phase test.
//
// Detection reads committed positions; corrections are written to Next and
// Vel and take effect at the next commit.
func Collide(a, b *Body) []Contact {
	return collide(a, b, nil)
}

func collide(a, b *Body, dst []Contact) []Contact {
	if !a.Bounds.Overlaps(b.Bounds) {
		return dst
	}
	dst = intrude(a, b, dst)
	dst = intrude(b, a, dst)
	return dst
}

// intrude tests every node of a against the perimeter of b.
func intrude(a, b *Body, dst []Contact) []Contact {
	for i := range a.Nodes {
		p := a.Nodes[i].Pos
		if !b.ContainsPoint(p) {
			continue
		}

		edge, closest, t, distSq, ok := b.closestEdge(p)
		if !ok {
			continue
		}
		half := b.Connections[edge].RestingLength / 2
		// Deeper than half an edge usually means the node came through a
		// sharp concave joint, not across this edge.
		if distSq >= half*half {
			continue
		}

		corr := p.Sub(closest)
		resolve(&a.Nodes[i], b, edge, t, corr)

		dst = append(dst, Contact{
			Intruder:   a.ID,
			Target:     b.ID,
			Node:       i,
			Edge:       edge,
			T:          t,
			Point:      closest,
			Correction: corr,
		})
	}
	return dst
}

// resolve splits the correction between the intruding node and the two
// endpoints of the penetrated edge, weighted by the projection parameter.
func resolve(n *Node, b *Body, edge int, t float64, corr Vec2) {
	n.Next = n.Next.Sub(corr)
	n.Vel = n.Vel.Sub(corr)

	c := b.Connections[edge]
	e1 := &b.Nodes[c.I1]
	e2 := &b.Nodes[c.I2]

	w1 := corr.Scale(1 - t)
	e1.Next = e1.Next.Add(w1)
	e1.Vel = e1.Vel.Add(w1)

	w2 := corr.Scale(t)
	e2.Next = e2.Next.Add(w2)
	e2.Vel = e2.Vel.Add(w2)
}

// ContainsPoint reports whether p lies inside the body's perimeter using the
// even-odd rule: a horizontal ray from p toward +X is tested against every
// edge connection and an odd number of crossings means inside. Internal
// connections never participate.
func (b *Body) ContainsPoint(p Vec2) bool {
	inside := false
	for _, c := range b.Connections {
		if !c.IsEdge {
			continue
		}
		a := b.Nodes[c.I1].Pos
		e := b.Nodes[c.I2].Pos
		if (a.Y > p.Y) == (e.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(e.X-a.X)/(e.Y-a.Y)
		if p.X < x {
			inside = !inside
		}
	}
	return inside
}

// closestEdge finds the edge connection nearest to p among those whose
// projection parameter lies within the tolerance band and whose outward side
// does not face the local center. It returns the connection index, the
// closest point on the edge's line, the projection parameter and the squared
// distance. ok is false when no edge qualifies.
func (b *Body) closestEdge(p Vec2) (edge int, closest Vec2, t, distSq float64, ok bool) {
	center := b.localCenter(p)
	edge = -1
	for i, c := range b.Connections {
		if !c.IsEdge {
			continue
		}
		a := b.Nodes[c.I1].Pos
		e := b.Nodes[c.I2].Pos

		cp, ct := ProjectOnLine(p, a, e)
		if !(ct >= edgeParamMin && ct <= edgeParamMax) {
			continue
		}

		normal := b.outwardNormal(a, e)
		toCenter := center.Sub(cp).Normalize()
		if normal.IsNaN() || toCenter.IsNaN() {
			continue
		}
		if normal.Dot(toCenter) >= facingThreshold {
			continue
		}

		d := p.Sub(cp).LenSq()
		if edge < 0 || d < distSq {
			edge, closest, t, distSq = i, cp, ct, d
		}
	}
	return edge, closest, t, distSq, edge >= 0
}

// localCenter returns the mean position of the nodes nearest to p, which
// follows the body's local shape better than its centroid on concave
// outlines.
func (b *Body) localCenter(p Vec2) Vec2 {
	var idx [localCenterNodes]int
	var dist [localCenterNodes]float64
	count := 0
	for i := range b.Nodes {
		d := b.Nodes[i].Pos.Sub(p).LenSq()
		// Insertion into the sorted nearest set.
		j := count
		if j == localCenterNodes {
			if d >= dist[j-1] {
				continue
			}
			j--
		} else {
			count++
		}
		for j > 0 && dist[j-1] > d {
			dist[j] = dist[j-1]
			idx[j] = idx[j-1]
			j--
		}
		dist[j] = d
		idx[j] = i
	}

	var sum Vec2
	for k := 0; k < count; k++ {
		sum = sum.Add(b.Nodes[idx[k]].Pos)
	}
	return sum.Scale(1 / float64(count))
}
