package opengl

import (
	"github.com/roomdraft/draft"
)

// Transform maps world millimetres to screen pixels.
type Transform struct {
	Scale  float64    // pixels per mm
	Offset draft.Vec2 // screen position of world origin, pixels
}

// Apply converts a world point to screen coordinates.
func (t Transform) Apply(p draft.Vec2) (float32, float32) {
	return float32(p.X*t.Scale + t.Offset.X), float32(p.Y*t.Scale + t.Offset.Y)
}

// Invert converts a screen point back to world coordinates, used to map
// pointer input onto the model.
func (t Transform) Invert(x, y float64) draft.Vec2 {
	return draft.Vec2{X: (x - t.Offset.X) / t.Scale, Y: (y - t.Offset.Y) / t.Scale}
}

// Pan shifts the view by a screen-space delta.
func (t Transform) Pan(dx, dy float64) Transform {
	t.Offset.X += dx
	t.Offset.Y += dy
	return t
}

// ZoomAt scales the view around a screen point so the world point under
// the cursor stays put.
func (t Transform) ZoomAt(x, y, factor float64) Transform {
	t.Offset.X = x + (t.Offset.X-x)*factor
	t.Offset.Y = y + (t.Offset.Y-y)*factor
	t.Scale *= factor
	return t
}

// FitTransform centers the scene bounds in a viewport with a margin in
// pixels.
func FitTransform(bounds draft.Rect, width, height, margin float64) Transform {
	if bounds.W <= 0 || bounds.H <= 0 {
		return Transform{Scale: 1}
	}
	sx := (width - 2*margin) / bounds.W
	sy := (height - 2*margin) / bounds.H
	s := sx
	if sy < s {
		s = sy
	}
	return Transform{
		Scale: s,
		Offset: draft.Vec2{
			X: width/2 - (bounds.X+bounds.W/2)*s,
			Y: height/2 - (bounds.Y+bounds.H/2)*s,
		},
	}
}

// Append converts a scene to draw-list triangles under the transform.
// fontTex is the renderer's font atlas for dimension labels.
func Append(dl *DrawList, sc draft.Scene, view Transform, fontTex uint32) {
	for _, prim := range sc.Prims {
		switch p := prim.(type) {
		case draft.FillPolygon:
			appendFill(dl, p, view)
		case draft.StrokePolygon:
			n := len(p.Points)
			for i := 0; i < n; i++ {
				appendLine(dl, p.Points[i], p.Points[(i+1)%n], p.Color, p.Weight, view)
			}
		case draft.Line:
			appendLine(dl, p.A, p.B, p.Color, p.Weight, view)
		case draft.Polyline:
			for i := 0; i+1 < len(p.Points); i++ {
				appendLine(dl, p.Points[i], p.Points[i+1], p.Color, p.Weight, view)
			}
		case draft.Dimension:
			appendDimension(dl, p, view, fontTex)
		}
	}
}

func appendLine(dl *DrawList, a, b draft.Vec2, color uint32, weight float64, view Transform) {
	x1, y1 := view.Apply(a)
	x2, y2 := view.Apply(b)
	dl.AddLine(x1, y1, x2, y2, color, strokePx(weight, view))
}

// strokePx converts a world line weight to pixels, keeping hairlines
// visible at any zoom.
func strokePx(weight float64, view Transform) float32 {
	px := float32(weight * view.Scale)
	if px < 1 {
		px = 1
	}
	return px
}

// appendFill draws a filled region. The common hole case is the wall
// ring, a loop paired with its outward offset, which tiles exactly with
// one quad per edge; other polygons are ear clipped. The hatch pattern
// overlays as clipped lines.
func appendFill(dl *DrawList, p draft.FillPolygon, view Transform) {
	ring := len(p.Holes) == 1 && len(p.Holes[0]) == len(p.Outline)
	if p.Color&0xFF000000 != 0 {
		if ring {
			for _, q := range draft.RingQuads(p.Holes[0], p.Outline) {
				x1, y1 := view.Apply(q[0])
				x2, y2 := view.Apply(q[1])
				x3, y3 := view.Apply(q[2])
				x4, y4 := view.Apply(q[3])
				dl.AddQuad(x1, y1, x2, y2, x3, y3, x4, y4, p.Color)
			}
		} else {
			for _, tri := range draft.Triangulate(p.Outline) {
				x1, y1 := view.Apply(tri[0])
				x2, y2 := view.Apply(tri[1])
				x3, y3 := view.Apply(tri[2])
				dl.AddTriangle(x1, y1, x2, y2, x3, y3, p.Color)
			}
		}
	}
	if p.Hatch == nil {
		return
	}
	if ring {
		// Hatch each wall-ring quad separately; the quads are axis
		// aligned for orthogonal walls so the scissor box is exact.
		for _, q := range draft.RingQuads(p.Holes[0], p.Outline) {
			appendHatch(dl, draft.PolyBounds(q[:]), *p.Hatch, view)
		}
	} else {
		appendHatch(dl, draft.PolyBounds(p.Outline), *p.Hatch, view)
	}
}

// appendHatch overlays pattern lines scissored to a bounding box.
func appendHatch(dl *DrawList, bounds draft.Rect, h draft.Hatch, view Transform) {
	if h.Pattern == draft.HatchPatternNone || h.Foreground&0xFF000000 == 0 {
		return
	}
	x1, y1 := view.Apply(draft.Vec2{X: bounds.X, Y: bounds.Y})
	x2, y2 := view.Apply(draft.Vec2{X: bounds.X + bounds.W, Y: bounds.Y + bounds.H})
	dl.PushClipRect(x1, y1, x2, y2)
	defer dl.PopClipRect()

	switch h.Pattern {
	case "diagonal":
		spacing := h.Spacing
		if spacing <= 0 {
			spacing = 100
		}
		// 45 degree lines swept across the box diagonal.
		for d := -bounds.H; d < bounds.W; d += spacing {
			a := draft.Vec2{X: bounds.X + d, Y: bounds.Y}
			b := draft.Vec2{X: bounds.X + d + bounds.H, Y: bounds.Y + bounds.H}
			appendLine(dl, a, b, h.Foreground, 0, view)
			if h.Paired {
				a2 := draft.Vec2{X: bounds.X + d + bounds.H, Y: bounds.Y}
				b2 := draft.Vec2{X: bounds.X + d, Y: bounds.Y + bounds.H}
				appendLine(dl, a2, b2, h.Foreground, 0, view)
			}
		}
	case "grid":
		tile := h.TileSize
		if tile <= 0 {
			tile = 300
		}
		for x := bounds.X; x <= bounds.X+bounds.W; x += tile {
			appendLine(dl, draft.Vec2{X: x, Y: bounds.Y}, draft.Vec2{X: x, Y: bounds.Y + bounds.H}, h.Foreground, 0, view)
		}
		for y := bounds.Y; y <= bounds.Y+bounds.H; y += tile {
			appendLine(dl, draft.Vec2{X: bounds.X, Y: y}, draft.Vec2{X: bounds.X + bounds.W, Y: y}, h.Foreground, 0, view)
		}
	case "horizontal":
		spacing := h.Spacing
		if spacing <= 0 {
			spacing = 100
		}
		for y := bounds.Y; y <= bounds.Y+bounds.H; y += spacing {
			appendLine(dl, draft.Vec2{X: bounds.X, Y: y}, draft.Vec2{X: bounds.X + bounds.W, Y: y}, h.Foreground, 0, view)
		}
	}
}

// appendDimension draws a dimension annotation: extension lines from the
// measured points, the offset dimension line with oblique ticks, and the
// centered label.
func appendDimension(dl *DrawList, d draft.Dimension, view Transform, fontTex uint32) {
	dir := d.B.Sub(d.A).Norm()
	n := dir.Perp().Mul(d.Offset)
	a := d.A.Add(n)
	b := d.B.Add(n)

	appendLine(dl, d.A, a, d.Color, 0, view)
	appendLine(dl, d.B, b, d.Color, 0, view)
	appendLine(dl, a, b, d.Color, 0, view)

	// Oblique ticks at the ends, drafting style.
	tick := dir.Add(dir.Perp()).Norm().Mul(60)
	appendLine(dl, a.Sub(tick), a.Add(tick), d.Color, 0, view)
	appendLine(dl, b.Sub(tick), b.Add(tick), d.Color, 0, view)

	if d.Text == "" {
		return
	}
	const scale = 1.5 // 12 px glyphs
	mid := a.Add(b).Mul(0.5)
	mx, my := view.Apply(mid)
	w := float32(len(d.Text)) * 8 * scale
	dl.AddText(mx-w/2, my-8*scale-2, d.Text, d.Color, scale, fontTex)
}
