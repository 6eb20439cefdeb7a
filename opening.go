package draft

import "math"

// Side names an end of a wall segment for edge-distance dimensions.
type Side int

const (
	SideLeft  Side = iota // toward the segment's start vertex
	SideRight             // toward the segment's end vertex
)

// Opening defaults, mm.
const (
	DefaultDoorWidth    = 900
	DefaultDoorHeight   = 2100
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 1200
	DefaultWindowSill   = 900

	// SillStep rounds window sill drags to the nearest building increment.
	SillStep = 10
)

// SnapToWall finds the closest wall segment within tol of p on which an
// opening of the given width fits, and returns the clamped attachment.
// Segments narrower than the opening are skipped. Reports false when no
// segment qualifies; the caller must treat that as "no valid placement".
func SnapToWall(loop []Vec2, p Vec2, width, tol float64) (Attachment, bool) {
	n := len(loop)
	best := Attachment{Seg: -1}
	bestDist := math.Inf(1)
	for i := 0; i < n; i++ {
		a, b := loop[i], loop[(i+1)%n]
		l := b.Sub(a).Len()
		if l < Epsilon || l <= width {
			continue
		}
		half := width / 2 / l
		minT, maxT := half, 1-half
		t := clamp(SegmentParam(p, a, b), minT, maxT)
		d := p.Sub(PointOnSegment(a, b, t)).Len()
		if d < bestDist {
			bestDist = d
			best = Attachment{Seg: i, T: t}
		}
	}
	if best.Seg < 0 || bestDist > tol {
		return Attachment{}, false
	}
	return best, true
}

// NewDoor creates a door opening at the attachment. Doors always sit on
// the floor (zero sill).
func NewDoor(attach Attachment, width, height float64) WallOpening {
	return WallOpening{
		EntityID: NewEntityID(),
		Kind:     Door,
		Attach:   attach,
		Width:    width,
		Height:   height,
	}
}

// NewWindow creates a window opening at the attachment.
func NewWindow(attach Attachment, width, height, sill float64) WallOpening {
	return WallOpening{
		EntityID: NewEntityID(),
		Kind:     Window,
		Attach:   attach,
		Width:    width,
		Height:   height,
		Sill:     sill,
	}
}

// PlanQuad returns the opening's plan rectangle: Width along the wall
// direction by the wall thickness along the outward normal, centered at
// the attachment point. Corners are ordered around the quad.
func (o WallOpening) PlanQuad(m RoomModel) [4]Vec2 {
	a, b := m.Segment(o.Attach.Seg)
	d := b.Sub(a).Norm()
	c := PointOnSegment(a, b, o.Attach.T)
	along := d.Mul(o.Width / 2)
	out := d.Perp().Mul(m.WallThickness)
	p1 := c.Sub(along)
	p2 := c.Add(along)
	return [4]Vec2{p1, p2, p2.Add(out), p1.Add(out)}
}

// ElevationRect returns the opening's rectangle on the elevation facing
// dir, in face coordinates: origin at the ceiling line, Y increasing
// downward to the floor. Reports false when the opening's segment does not
// face the direction.
func (o WallOpening) ElevationRect(m RoomModel, dir Direction) (Rect, bool) {
	a, b := m.Segment(o.Attach.Seg)
	if !FacesDirection(a, b, dir) {
		return Rect{}, false
	}
	cx := facePos(m.InnerLoop, dir, PointOnSegment(a, b, o.Attach.T))
	top := m.WallHeight - o.Sill - o.Height
	return Rect{X: cx - o.Width/2, Y: top, W: o.Width, H: o.Height}, true
}

// EdgeDistances returns the clear distance from each wall endpoint to the
// nearest opening edge, clamped to zero. Used for auto-generated placement
// dimension lines.
func (o WallOpening) EdgeDistances(m RoomModel) (left, right float64) {
	l := m.SegmentLen(o.Attach.Seg)
	center := o.Attach.T * l
	left = math.Max(0, center-o.Width/2)
	right = math.Max(0, l-center-o.Width/2)
	return left, right
}

// RepositionByDistance recomputes the attachment parameter so that the
// requested clear distance holds on the given side, clamped so the opening
// stays within its segment.
func (o WallOpening) RepositionByDistance(m RoomModel, side Side, dist float64) WallOpening {
	l := m.SegmentLen(o.Attach.Seg)
	if l < Epsilon {
		return o
	}
	var t float64
	if side == SideLeft {
		t = (dist + o.Width/2) / l
	} else {
		t = (l - dist - o.Width/2) / l
	}
	half := o.Width / 2 / l
	o.Attach.T = clamp(t, math.Min(half, 1-half), math.Max(half, 1-half))
	return o
}

// WithSill returns the opening with its sill height set, clamped to
// [0, wallHeight-height] and rounded to the nearest SillStep. Doors keep
// a zero sill.
func (o WallOpening) WithSill(m RoomModel, sill float64) WallOpening {
	if o.Kind == Door {
		o.Sill = 0
		return o
	}
	sill = clamp(sill, 0, math.Max(0, m.WallHeight-o.Height))
	o.Sill = math.Round(sill/SillStep) * SillStep
	return o
}

// HitPlan reports whether p hits the opening's plan quad, expanded
// radially by tol.
func (o WallOpening) HitPlan(m RoomModel, p Vec2, tol float64) bool {
	return PointInExpandedQuad(p, o.PlanQuad(m), tol)
}

// HitElevation reports whether p (in face coordinates) hits the opening's
// elevation rectangle expanded by tol.
func (o WallOpening) HitElevation(m RoomModel, dir Direction, p Vec2, tol float64) bool {
	r, ok := o.ElevationRect(m, dir)
	if !ok {
		return false
	}
	return r.Expand(tol).Contains(p)
}

// ClampAttachment re-clamps an opening's parameter after a geometry edit
// so the half-width envelope stays within its segment. Reports false when
// the segment became too narrow for the opening.
func (o WallOpening) ClampAttachment(m RoomModel) (WallOpening, bool) {
	if o.Attach.Seg < 0 || o.Attach.Seg >= m.SegmentCount() {
		return o, false
	}
	l := m.SegmentLen(o.Attach.Seg)
	if l < Epsilon || l <= o.Width {
		return o, false
	}
	half := o.Width / 2 / l
	o.Attach.T = clamp(o.Attach.T, half, 1-half)
	return o, true
}
