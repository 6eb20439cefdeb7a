// Package raster renders drafting scenes to raster images using a 2D
// canvas. It is the export path: plan and elevation views drawn at a
// fixed pixel size and written out as PNG.
package raster

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/roomdraft/draft"
)

// Renderer rasterizes scenes at a fixed canvas size.
type Renderer struct {
	width  int
	height int
	margin float64
	font   *truetype.Font
}

// NewRenderer creates a renderer for the given canvas size in pixels.
func NewRenderer(width, height int) (*Renderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}
	return &Renderer{width: width, height: height, margin: 24, font: f}, nil
}

// Render draws a scene onto a fresh canvas, fitted and centered, and
// returns the drawing context.
func (r *Renderer) Render(sc draft.Scene, st draft.Style) *gg.Context {
	dc := gg.NewContext(r.width, r.height)
	setColor(dc, st.BackgroundColor)
	dc.Clear()

	view := fitView(sc.Bounds, float64(r.width), float64(r.height), r.margin)

	for _, prim := range sc.Prims {
		switch p := prim.(type) {
		case draft.FillPolygon:
			r.fillPolygon(dc, p, view)
		case draft.StrokePolygon:
			pathPolygon(dc, p.Points, view, true)
			setColor(dc, p.Color)
			dc.SetLineWidth(strokePx(p.Weight, view))
			dc.Stroke()
		case draft.Line:
			x1, y1 := view.apply(p.A)
			x2, y2 := view.apply(p.B)
			setColor(dc, p.Color)
			dc.SetLineWidth(strokePx(p.Weight, view))
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		case draft.Polyline:
			pathPolygon(dc, p.Points, view, false)
			setColor(dc, p.Color)
			dc.SetLineWidth(strokePx(p.Weight, view))
			dc.Stroke()
		case draft.Dimension:
			r.drawDimension(dc, p, st, view)
		}
	}
	return dc
}

// RenderPNG renders a scene and writes it to path.
func (r *Renderer) RenderPNG(path string, sc draft.Scene, st draft.Style) error {
	return r.Render(sc, st).SavePNG(path)
}

// view maps world millimetres onto the canvas.
type view struct {
	scale  float64
	ox, oy float64
}

func (v view) apply(p draft.Vec2) (float64, float64) {
	return p.X*v.scale + v.ox, p.Y*v.scale + v.oy
}

func fitView(bounds draft.Rect, width, height, margin float64) view {
	if bounds.W <= 0 || bounds.H <= 0 {
		return view{scale: 1}
	}
	sx := (width - 2*margin) / bounds.W
	sy := (height - 2*margin) / bounds.H
	s := sx
	if sy < s {
		s = sy
	}
	return view{
		scale: s,
		ox:    width/2 - (bounds.X+bounds.W/2)*s,
		oy:    height/2 - (bounds.Y+bounds.H/2)*s,
	}
}

func setColor(dc *gg.Context, c uint32) {
	cr, cg, cb, ca := draft.UnpackRGBA(c)
	dc.SetRGBA255(int(cr), int(cg), int(cb), int(ca))
}

// strokePx converts a world line weight to pixels, keeping hairlines
// visible at any scale.
func strokePx(weight float64, v view) float64 {
	px := weight * v.scale
	if px < 1 {
		px = 1
	}
	return px
}

func pathPolygon(dc *gg.Context, pts []draft.Vec2, v view, closed bool) {
	if len(pts) == 0 {
		return
	}
	x, y := v.apply(pts[0])
	dc.NewSubPath()
	dc.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = v.apply(p)
		dc.LineTo(x, y)
	}
	if closed {
		dc.ClosePath()
	}
}

// fillPolygon fills a region with holes using the even-odd rule, then
// overlays the hatch pattern clipped to the region.
func (r *Renderer) fillPolygon(dc *gg.Context, p draft.FillPolygon, v view) {
	buildPath := func() {
		pathPolygon(dc, p.Outline, v, true)
		for _, hole := range p.Holes {
			pathPolygon(dc, hole, v, true)
		}
	}

	if p.Color&0xFF000000 != 0 {
		buildPath()
		dc.SetFillRule(gg.FillRuleEvenOdd)
		setColor(dc, p.Color)
		dc.Fill()
	}

	if p.Hatch == nil || p.Hatch.Pattern == draft.HatchPatternNone {
		return
	}
	h := *p.Hatch
	if h.Foreground&0xFF000000 == 0 {
		return
	}

	buildPath()
	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.Clip()
	setColor(dc, h.Foreground)
	dc.SetLineWidth(1)
	bounds := draft.PolyBounds(p.Outline)
	switch h.Pattern {
	case "diagonal":
		spacing := h.Spacing
		if spacing <= 0 {
			spacing = 100
		}
		for d := -bounds.H; d < bounds.W; d += spacing {
			x1, y1 := v.apply(draft.Vec2{X: bounds.X + d, Y: bounds.Y})
			x2, y2 := v.apply(draft.Vec2{X: bounds.X + d + bounds.H, Y: bounds.Y + bounds.H})
			dc.DrawLine(x1, y1, x2, y2)
			if h.Paired {
				x3, y3 := v.apply(draft.Vec2{X: bounds.X + d + bounds.H, Y: bounds.Y})
				x4, y4 := v.apply(draft.Vec2{X: bounds.X + d, Y: bounds.Y + bounds.H})
				dc.DrawLine(x3, y3, x4, y4)
			}
		}
		dc.Stroke()
	case "grid":
		tile := h.TileSize
		if tile <= 0 {
			tile = 300
		}
		for x := bounds.X; x <= bounds.X+bounds.W; x += tile {
			x1, y1 := v.apply(draft.Vec2{X: x, Y: bounds.Y})
			x2, y2 := v.apply(draft.Vec2{X: x, Y: bounds.Y + bounds.H})
			dc.DrawLine(x1, y1, x2, y2)
		}
		for y := bounds.Y; y <= bounds.Y+bounds.H; y += tile {
			x1, y1 := v.apply(draft.Vec2{X: bounds.X, Y: y})
			x2, y2 := v.apply(draft.Vec2{X: bounds.X + bounds.W, Y: y})
			dc.DrawLine(x1, y1, x2, y2)
		}
		dc.Stroke()
	case "horizontal":
		spacing := h.Spacing
		if spacing <= 0 {
			spacing = 100
		}
		for y := bounds.Y; y <= bounds.Y+bounds.H; y += spacing {
			x1, y1 := v.apply(draft.Vec2{X: bounds.X, Y: y})
			x2, y2 := v.apply(draft.Vec2{X: bounds.X + bounds.W, Y: y})
			dc.DrawLine(x1, y1, x2, y2)
		}
		dc.Stroke()
	}
	dc.ResetClip()
}

// drawDimension draws a dimension annotation: extension lines, the
// offset dimension line with oblique end ticks, and a centered label.
func (r *Renderer) drawDimension(dc *gg.Context, d draft.Dimension, st draft.Style, v view) {
	dir := d.B.Sub(d.A).Norm()
	n := dir.Perp().Mul(d.Offset)
	a := d.A.Add(n)
	b := d.B.Add(n)

	setColor(dc, d.Color)
	dc.SetLineWidth(1)
	drawWorldLine(dc, v, d.A, a)
	drawWorldLine(dc, v, d.B, b)
	drawWorldLine(dc, v, a, b)

	tick := dir.Add(dir.Perp()).Norm().Mul(st.DimTickSize)
	drawWorldLine(dc, v, a.Sub(tick), a.Add(tick))
	drawWorldLine(dc, v, b.Sub(tick), b.Add(tick))
	dc.Stroke()

	if d.Text == "" {
		return
	}
	size := st.DimTextHeight * v.scale
	if size < 9 {
		size = 9
	}
	dc.SetFontFace(truetype.NewFace(r.font, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	}))
	mid := a.Add(b).Mul(0.5)
	mx, my := v.apply(mid)
	if dir.X*dir.X >= dir.Y*dir.Y {
		// Horizontal run: label sits just above the dimension line.
		dc.DrawStringAnchored(d.Text, mx, my-size*0.4, 0.5, 1)
	} else {
		// Vertical run: rotate the label to read along the line.
		dc.Push()
		dc.RotateAbout(-gg.Radians(90), mx, my)
		dc.DrawStringAnchored(d.Text, mx, my-size*0.4, 0.5, 1)
		dc.Pop()
	}
}

func drawWorldLine(dc *gg.Context, v view, a, b draft.Vec2) {
	x1, y1 := v.apply(a)
	x2, y2 := v.apply(b)
	dc.DrawLine(x1, y1, x2, y2)
}
