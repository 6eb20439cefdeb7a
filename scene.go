package draft

import (
	"math"
	"sort"
)

// Primitive is the closed set of drawables handed to a renderer. The
// renderer is purely a consumer; all geometry decisions happen here.
type Primitive interface {
	primitive()
}

// FillPolygon is a filled region with optional holes. When Hatch is
// non-nil the renderer fills with the hatch background and overlays the
// pattern; otherwise it fills with Color.
type FillPolygon struct {
	Outline []Vec2
	Holes   [][]Vec2
	Color   uint32
	Hatch   *Hatch
}

// StrokePolygon is a closed outline.
type StrokePolygon struct {
	Points []Vec2
	Color  uint32
	Weight float64
}

// Line is a single stroked segment.
type Line struct {
	A, B   Vec2
	Color  uint32
	Weight float64
}

// Polyline is an open stroked path.
type Polyline struct {
	Points []Vec2
	Color  uint32
	Weight float64
}

// Dimension annotates the distance between two points: a dimension line
// offset perpendicular from A-B (positive offset on the Perp side), end
// ticks, and a centered label.
type Dimension struct {
	A, B   Vec2
	Offset float64
	Text   string
	Color  uint32
}

func (FillPolygon) primitive()   {}
func (StrokePolygon) primitive() {}
func (Line) primitive()          {}
func (Polyline) primitive()      {}
func (Dimension) primitive()     {}

// Scene is an ordered list of primitives for one view, drawn first to
// last, plus the world-space bounds renderers fit into their viewport.
type Scene struct {
	Prims  []Primitive
	Bounds Rect
}

func (s *Scene) add(p Primitive) {
	s.Prims = append(s.Prims, p)
}

func (s *Scene) grow(r Rect) {
	if s.Bounds.W == 0 && s.Bounds.H == 0 {
		s.Bounds = r
		return
	}
	s.Bounds = s.Bounds.Union(r)
}

// Selection identifies what the user currently has selected, exposed for
// scene highlighting and panel consumers. Zero value selects nothing.
type Selection struct {
	EntityID string
	Seg      int // selected wall segment, -1 when none
}

// NoSelection returns an empty selection.
func NoSelection() Selection {
	return Selection{Seg: -1}
}

// BuildPlanScene derives the plan view's ordered primitive list: zone
// fills, wall outlines, openings, fixtures and the per-segment dimension
// chain, plus edge-distance dimensions for a selected opening.
func BuildPlanScene(m RoomModel, st Style, sel Selection, preview map[string]Hatch) Scene {
	var sc Scene
	outer := OuterLoop(m.InnerLoop, m.WallThickness)
	sc.grow(PolyBounds(outer).Expand(m.WallThickness + st.DimOffset + st.DimTextHeight))

	for _, z := range PlanZones(m) {
		if h, ok := ResolveFill(m, z, preview, st); ok {
			hatch := h
			sc.add(FillPolygon{Outline: z.Outline, Holes: z.Holes, Color: h.Background, Hatch: &hatch})
		}
	}

	outlineWeight := st.OutlineWeight
	if m.Wall.OutlineWeight > 0 {
		outlineWeight = m.Wall.OutlineWeight
	}
	sc.add(StrokePolygon{Points: outer, Color: st.OutlineColor, Weight: outlineWeight})
	sc.add(StrokePolygon{Points: m.InnerLoop, Color: st.OutlineColor, Weight: outlineWeight})

	for _, e := range sortedEntities(m) {
		switch ent := e.(type) {
		case WallOpening:
			addPlanOpening(&sc, m, st, ent, sel.EntityID == ent.EntityID)
		case Fixture:
			addPlanFixture(&sc, st, ent, sel.EntityID == ent.EntityID)
		}
	}

	addPlanDimChain(&sc, m, st)

	if o, ok := m.Opening(sel.EntityID); ok {
		addPlanEdgeDims(&sc, m, st, o)
	}
	return sc
}

// BuildElevationScene derives one elevation's ordered primitive list:
// section and end-wall fills, the face outline, return-wall dividers,
// openings facing the direction, and the bottom dimension chain.
func BuildElevationScene(m RoomModel, dir Direction, st Style, sel Selection, preview map[string]Hatch) Scene {
	var sc Scene
	faceLen := FaceLength(m.InnerLoop, dir)
	t := m.WallThickness
	h := m.WallHeight
	face := Rect{X: -t, Y: 0, W: faceLen + 2*t, H: h}
	sc.grow(face.Expand(st.DimOffset + st.DimTextHeight))

	for _, z := range ElevationZones(m, dir) {
		if hh, ok := ResolveFill(m, z, preview, st); ok {
			hatch := hh
			sc.add(FillPolygon{Outline: z.Outline, Color: hh.Background, Hatch: &hatch})
		}
	}

	sc.add(StrokePolygon{Points: rectOutline(face), Color: st.OutlineColor, Weight: st.OutlineWeight})
	sc.add(Line{A: Vec2{0, 0}, B: Vec2{0, h}, Color: st.OutlineColor, Weight: st.ThinWeight})
	sc.add(Line{A: Vec2{faceLen, 0}, B: Vec2{faceLen, h}, Color: st.OutlineColor, Weight: st.ThinWeight})

	for _, pos := range ReturnWallPositions(m.InnerLoop, dir) {
		sc.add(Line{A: Vec2{pos, 0}, B: Vec2{pos, h}, Color: st.DividerColor, Weight: st.ThinWeight})
	}

	for _, e := range sortedEntities(m) {
		o, ok := e.(WallOpening)
		if !ok {
			continue
		}
		r, ok := o.ElevationRect(m, dir)
		if !ok {
			continue
		}
		selected := sel.EntityID == o.EntityID
		sc.add(FillPolygon{Outline: rectOutline(r), Color: st.OpeningFill})
		outline := st.OpeningOutline
		if selected {
			outline = st.SelectionColor
		}
		sc.add(StrokePolygon{Points: rectOutline(r), Color: outline, Weight: st.ThinWeight})
		if o.Kind == Window {
			// Glazing cross.
			sc.add(Line{A: Vec2{r.X, r.Y + r.H/2}, B: Vec2{r.X + r.W, r.Y + r.H/2}, Color: st.OpeningOutline, Weight: st.ThinWeight})
			sc.add(Line{A: Vec2{r.X + r.W/2, r.Y}, B: Vec2{r.X + r.W/2, r.Y + r.H}, Color: st.OpeningOutline, Weight: st.ThinWeight})
		}
		if selected {
			addElevationOpeningDims(&sc, m, st, o, r, faceLen)
		}
	}

	for _, entry := range ElevationDims(m, dir) {
		sc.add(Dimension{
			A:      Vec2{entry.Start, h},
			B:      Vec2{entry.End, h},
			Offset: st.DimOffset,
			Text:   entry.Text,
			Color:  st.DimColor,
		})
	}
	return sc
}

func addPlanOpening(sc *Scene, m RoomModel, st Style, o WallOpening, selected bool) {
	quad := o.PlanQuad(m)
	sc.add(FillPolygon{Outline: quad[:], Color: st.OpeningFill})
	outline := st.OpeningOutline
	if selected {
		outline = st.SelectionColor
	}
	sc.add(StrokePolygon{Points: quad[:], Color: outline, Weight: st.ThinWeight})

	a, b := m.Segment(o.Attach.Seg)
	d := b.Sub(a).Norm()
	switch o.Kind {
	case Door:
		// Swing arc from the leading jamb into the room.
		hinge := quad[0]
		inward := d.Perp().Mul(-1)
		pts := make([]Vec2, 0, 17)
		for i := 0; i <= 16; i++ {
			th := float64(i) / 16 * math.Pi / 2
			pts = append(pts, hinge.Add(d.Mul(math.Cos(th)*o.Width)).Add(inward.Mul(math.Sin(th)*o.Width)))
		}
		sc.add(Polyline{Points: pts, Color: st.OpeningOutline, Weight: st.ThinWeight})
		sc.add(Line{A: hinge, B: hinge.Add(inward.Mul(o.Width)), Color: st.OpeningOutline, Weight: st.ThinWeight})
	case Window:
		// Glazing line through the middle of the wall.
		mid := d.Perp().Mul(m.WallThickness / 2)
		sc.add(Line{A: quad[0].Add(mid), B: quad[1].Add(mid), Color: st.OpeningOutline, Weight: st.ThinWeight})
	}
}

func addPlanFixture(sc *Scene, st Style, f Fixture, selected bool) {
	r := f.PlanRect()
	outline := st.FixtureOutline
	if selected {
		outline = st.SelectionColor
	}
	sc.add(StrokePolygon{Points: rectOutline(r), Color: outline, Weight: st.ThinWeight})
	sc.grow(r)
}

// addPlanDimChain emits one dimension per inner segment, offset outward
// past the wall's outer face.
func addPlanDimChain(sc *Scene, m RoomModel, st Style) {
	n := m.SegmentCount()
	for i := 0; i < n; i++ {
		a, b := m.Segment(i)
		if b.Sub(a).Len() < Epsilon {
			continue
		}
		text, ok := m.DimText[i]
		if !ok {
			text = FormatLength(m.SegmentLen(i))
		}
		sc.add(Dimension{
			A:      a,
			B:      b,
			Offset: m.WallThickness + st.DimOffset,
			Text:   text,
			Color:  st.DimColor,
		})
	}
}

// addPlanEdgeDims emits the wall-endpoint-to-opening-edge dimensions used
// while placing or selecting an opening.
func addPlanEdgeDims(sc *Scene, m RoomModel, st Style, o WallOpening) {
	a, b := m.Segment(o.Attach.Seg)
	d := b.Sub(a).Norm()
	left, right := o.EdgeDistances(m)
	quad := o.PlanQuad(m)
	offset := m.WallThickness + st.DimOffset/2
	if left > Epsilon {
		sc.add(Dimension{A: a, B: quad[0], Offset: offset, Text: FormatLength(left), Color: st.SelectionColor})
	}
	sc.add(Dimension{A: quad[0], B: quad[1], Offset: offset, Text: FormatLength(o.Width), Color: st.SelectionColor})
	if right > Epsilon {
		sc.add(Dimension{A: quad[1], B: a.Add(d.Mul(m.SegmentLen(o.Attach.Seg))), Offset: offset, Text: FormatLength(right), Color: st.SelectionColor})
	}
}

func addElevationOpeningDims(sc *Scene, m RoomModel, st Style, o WallOpening, r Rect, faceLen float64) {
	// Horizontal clearances along the floor line.
	if r.X > Epsilon {
		sc.add(Dimension{A: Vec2{0, m.WallHeight}, B: Vec2{r.X, m.WallHeight}, Offset: st.DimOffset / 2, Text: FormatLength(r.X), Color: st.SelectionColor})
	}
	sc.add(Dimension{A: Vec2{r.X, m.WallHeight}, B: Vec2{r.X + r.W, m.WallHeight}, Offset: st.DimOffset / 2, Text: FormatLength(r.W), Color: st.SelectionColor})
	// Sill height for windows.
	if o.Kind == Window && o.Sill > Epsilon {
		sc.add(Dimension{A: Vec2{r.X, r.Y + r.H}, B: Vec2{r.X, m.WallHeight}, Offset: -st.DimOffset / 2, Text: FormatLength(o.Sill), Color: st.SelectionColor})
	}
}

// sortedEntities returns the model's entities in a stable id order so
// scene output is deterministic frame to frame.
func sortedEntities(m RoomModel) []Entity {
	ids := make([]string, 0, len(m.Entities))
	for id := range m.Entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.Entities[id])
	}
	return out
}
