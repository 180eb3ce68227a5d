package softbody

// Step advances the body by one sub-iteration of dt seconds. The phase order
// matters: forces read the positions committed by the previous step, and
// boundary corrections written here only become visible after the next
// commit.
func (b *Body) Step(cfg Config, dt float64) {
	b.applySprings(cfg, dt)
	b.applySkeleton(cfg, dt)
	b.advance(cfg, dt)
	b.commit()
	b.refreshBounds(cfg.NodeRadius)
	b.contain(cfg)
	b.refreshCenter()
	b.refreshAngle()
	b.refreshSkeleton()
}

// advance applies gravity and moves every pending position by its velocity.
func (b *Body) advance(cfg Config, dt float64) {
	scale := dt * cfg.iterationScale()
	g := cfg.Gravity.Scale(scale)
	for i := range b.Nodes {
		n := &b.Nodes[i]
		n.Vel = n.Vel.Sub(g)
		n.Next = n.Next.Add(n.Vel.Scale(scale))
	}
}

// commit copies every pending position into the committed position.
func (b *Body) commit() {
	for i := range b.Nodes {
		b.Nodes[i].Pos = b.Nodes[i].Next
	}
}

// refreshBounds recomputes Bounds from the committed positions, padded by
// radius on every side.
func (b *Body) refreshBounds(radius float64) {
	bb := emptyBounds()
	for i := range b.Nodes {
		bb.grow(b.Nodes[i].Pos)
	}
	bb.pad(radius)
	b.Bounds = bb
}
