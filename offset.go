package draft

// OuterLoop derives the wall's outer face: each inner edge's infinite line
// offset outward by thickness along its clockwise-outward normal, with
// each outer vertex at the intersection of the two adjacent offset lines.
// Near-parallel intersections fall back to the un-offset corner point.
func OuterLoop(inner []Vec2, thickness float64) []Vec2 {
	n := len(inner)
	if n < 3 {
		return inner
	}
	out := make([]Vec2, n)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n

		pa, pb := inner[prev], inner[i]
		ca, cb := inner[i], inner[(i+1)%n]

		pd := pb.Sub(pa).Norm()
		cd := cb.Sub(ca).Norm()

		// Offset lines through the shifted edge endpoints.
		po := pa.Add(pd.Perp().Mul(thickness))
		co := ca.Add(cd.Perp().Mul(thickness))

		p, ok := intersectLines(po, pd, co, cd)
		if !ok {
			p = inner[i]
		}
		out[i] = p
	}
	return out
}

// intersectLines returns the intersection of two infinite lines given as
// point+direction. Near-parallel directions report failure.
func intersectLines(p1, d1, p2, d2 Vec2) (Vec2, bool) {
	cross := d1.X*d2.Y - d1.Y*d2.X
	if absf(cross) < Epsilon {
		return Vec2{}, false
	}
	diff := p2.Sub(p1)
	t := (diff.X*d2.Y - diff.Y*d2.X) / cross
	return p1.Add(d1.Mul(t)), true
}
