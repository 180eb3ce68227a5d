package softbody

import "math"

// refreshCenter sets Center to the mean committed node position.
func (b *Body) refreshCenter() {
	b.Center = b.centroid()
}

// refreshAngle estimates the body's rotation from its creation pose. Each
// node contributes the signed angle between its current offset from Center
// and its base offset. Contributions are unwrapped against the running
// average so that nodes straddling the 0/2π seam do not cancel out.
//
// Nodes with no direction (one sitting on the center) are left out of the
// average. This is a per-node average, not a least-squares shape match.
func (b *Body) refreshAngle() {
	var sum float64
	var counted int
	for i := range b.Nodes {
		v1 := b.Nodes[i].Pos.Sub(b.Center).Normalize()
		v2 := b.BaseSkeletonNorm[i]
		if v1.IsNaN() || v2.IsNaN() {
			continue
		}

		raw := math.Acos(clamp(v1.Dot(v2), -1, 1))
		if v1.PerpDot(v2) >= 0 {
			raw = 2*math.Pi - raw
		}

		if counted > 0 {
			avg := sum / float64(counted)
			if raw-avg > math.Pi {
				raw -= 2 * math.Pi
			} else if avg-raw > math.Pi {
				raw += 2 * math.Pi
			}
		}

		sum += raw
		counted++
	}
	if counted == 0 {
		b.Angle = 0
		return
	}
	b.Angle = sum / float64(counted)
}

// refreshSkeleton places every skeleton target at its base offset rotated by
// Angle around Center.
func (b *Body) refreshSkeleton() {
	for i, off := range b.BaseSkeleton {
		b.Skeleton[i] = off.Rotate(b.Angle).Add(b.Center)
	}
}

// applySkeleton accelerates each node toward its skeleton target with a force
// proportional to the distance, clamped to the force limit. F is the negated
// magnitude, so subtracting dir*F moves the node toward the target.
func (b *Body) applySkeleton(cfg Config, dt float64) {
	scale := dt * cfg.iterationScale()
	for i := range b.Nodes {
		n := &b.Nodes[i]
		target := b.Skeleton[i].Sub(n.Pos)
		if target.IsZero() {
			continue
		}
		f := clamp(cfg.SkeletonStiffness*-target.Len(), -cfg.ForceLimit, cfg.ForceLimit)
		n.Vel = n.Vel.Sub(target.Normalize().Scale(f * scale))
	}
}
