package softbody

// SpringForce returns the clamped scalar force of a damped spring. Positive
// values push the endpoints apart; closingSpeed is the relative velocity of
// the second endpoint along the spring direction.
func SpringForce(stiffness, damping, limit, restingLength, length, closingSpeed float64) float64 {
	f := stiffness*(restingLength-length) - 0.5*damping*closingSpeed
	return clamp(f, -limit, limit)
}

// applySprings adds every connection's Hookean force to the velocities of its
// endpoints. It reads committed positions only. Connections whose endpoints
// coincide have no direction and are skipped until they separate.
func (b *Body) applySprings(cfg Config, dt float64) {
	scale := dt * cfg.iterationScale()
	for _, c := range b.Connections {
		n1 := &b.Nodes[c.I1]
		n2 := &b.Nodes[c.I2]

		d := n2.Pos.Sub(n1.Pos)
		dir := d.Normalize()
		if dir.IsNaN() {
			continue
		}

		closing := dir.Dot(n2.Vel.Sub(n1.Vel))
		f := SpringForce(cfg.Stiffness, cfg.Damping, cfg.ForceLimit, c.RestingLength, d.Len(), closing)

		impulse := dir.Scale(f * scale)
		n1.Vel = n1.Vel.Sub(impulse)
		n2.Vel = n2.Vel.Add(impulse)
	}
}
