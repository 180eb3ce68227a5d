package softbody

// contain keeps nodes inside the world rectangle centered at the origin. The
// test reads committed positions; the correction lands in Next and Vel. There
// is no ceiling: bodies may leave through the top.
func (b *Body) contain(cfg Config) {
	half := cfg.HalfExtents()
	for i := range b.Nodes {
		n := &b.Nodes[i]
		if n.Pos.Y < -half.Y {
			n.Next.Y = -half.Y
			n.Vel.Y = 0
		}
		if n.Pos.X > half.X {
			n.Next.X = half.X
			n.Vel.X = 0
		} else if n.Pos.X < -half.X {
			n.Next.X = -half.X
			n.Vel.X = 0
		}
	}
}
