package draft

// Triangulate splits a simple polygon (no holes, no self-intersection)
// into triangles by ear clipping. Works for both windings; degenerate
// input returns nil. Renderers that can only draw triangles use this for
// zone fills.
func Triangulate(poly []Vec2) [][3]Vec2 {
	n := len(poly)
	if n < 3 {
		return nil
	}

	// Work on an index list so removed ears don't copy vertices.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	cw := SignedArea(poly) > 0

	var out [][3]Vec2
	guard := 0
	for len(idx) > 3 && guard < n*n {
		guard++
		clipped := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i-1+len(idx))%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			a, b, c := poly[prev], poly[cur], poly[next]

			if !convexCorner(a, b, c, cw) {
				continue
			}
			if anyInsideTriangle(poly, idx, prev, cur, next) {
				continue
			}
			out = append(out, [3]Vec2{a, b, c})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Degenerate remainder (collinear run); stop rather than spin.
			break
		}
	}
	if len(idx) == 3 {
		out = append(out, [3]Vec2{poly[idx[0]], poly[idx[1]], poly[idx[2]]})
	}
	return out
}

// convexCorner reports whether b is a convex corner for the winding.
func convexCorner(a, b, c Vec2, cw bool) bool {
	cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	if cw {
		return cross > Epsilon
	}
	return cross < -Epsilon
}

// anyInsideTriangle reports whether any remaining vertex lies strictly
// inside the candidate ear.
func anyInsideTriangle(poly []Vec2, idx []int, ia, ib, ic int) bool {
	a, b, c := poly[ia], poly[ib], poly[ic]
	for _, i := range idx {
		if i == ia || i == ib || i == ic {
			continue
		}
		if pointInTriangle(poly[i], a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c Vec2) bool {
	s1 := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	s2 := (c.X-b.X)*(p.Y-b.Y) - (c.Y-b.Y)*(p.X-b.X)
	s3 := (a.X-c.X)*(p.Y-c.Y) - (a.Y-c.Y)*(p.X-c.X)
	neg := s1 < -Epsilon || s2 < -Epsilon || s3 < -Epsilon
	pos := s1 > Epsilon || s2 > Epsilon || s3 > Epsilon
	return !(neg && pos)
}

// RingQuads tiles the region between a loop and its outward offset with
// one quad per edge: inner[i], inner[i+1], outer[i+1], outer[i]. With
// mitred outer corners the quads cover the wall ring exactly.
func RingQuads(inner, outer []Vec2) [][4]Vec2 {
	n := len(inner)
	if n < 3 || len(outer) != n {
		return nil
	}
	out := make([][4]Vec2, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		out = append(out, [4]Vec2{inner[i], inner[j], outer[j], outer[i]})
	}
	return out
}
