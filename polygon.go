package draft

// PointInPolygon reports whether p lies inside the polygon using the
// even-odd ray-casting rule. The polygon is implicitly closed.
func PointInPolygon(p Vec2, poly []Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PolyBounds returns the bounding box of the polygon.
// An empty polygon yields a zero rectangle.
func PolyBounds(poly []Vec2) Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Centroid returns the vertex average of the polygon.
func Centroid(poly []Vec2) Vec2 {
	if len(poly) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, p := range poly {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(poly)))
}

// SignedArea returns the shoelace signed area of the polygon.
// Positive for clockwise winding in screen coordinates (Y down).
func SignedArea(poly []Vec2) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2
}

// PointInExpandedQuad reports whether p lies inside the quad after each
// corner has been pushed outward from the quad's centroid by tol. Used for
// opening hit-testing with a tolerance margin.
func PointInExpandedQuad(p Vec2, quad [4]Vec2, tol float64) bool {
	c := Centroid(quad[:])
	expanded := make([]Vec2, 4)
	for i, q := range quad {
		expanded[i] = q.Add(q.Sub(c).Norm().Mul(tol))
	}
	return PointInPolygon(p, expanded)
}

// SegmentParam projects p onto the infinite line through a and b and
// returns the parameter t such that a+t*(b-a) is the projection.
// A degenerate segment yields t=0 (the first endpoint).
func SegmentParam(p, a, b Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 < Epsilon*Epsilon {
		return 0
	}
	return p.Sub(a).Dot(d) / l2
}

// PointOnSegment returns the point at parameter t along the segment a..b.
func PointOnSegment(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
