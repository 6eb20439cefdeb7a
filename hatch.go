package draft

import "fmt"

// Zone is a derived fillable region in a given view: a polygon with
// optional holes. Zone identifiers are derived from the view and position,
// never stored; hatch assignments are keyed by them.
type Zone struct {
	ID      string
	Outline []Vec2
	Holes   [][]Vec2

	// Wall zones carry a fixed, non-overridable default fill.
	Wall bool
}

// Bounds returns the zone's outline bounding box.
func (z Zone) Bounds() Rect {
	return PolyBounds(z.Outline)
}

// Contains reports whether p lies inside the zone's outline but outside
// all of its holes.
func (z Zone) Contains(p Vec2) bool {
	if !PointInPolygon(p, z.Outline) {
		return false
	}
	for _, hole := range z.Holes {
		if PointInPolygon(p, hole) {
			return false
		}
	}
	return true
}

// PlanZones returns the plan view's fillable zones in declared order: the
// floor (the inner loop itself) and the wall cross-section (outer loop
// with the inner loop as a hole).
func PlanZones(m RoomModel) []Zone {
	outer := OuterLoop(m.InnerLoop, m.WallThickness)
	return []Zone{
		{ID: "plan/floor", Outline: m.InnerLoop},
		{ID: "plan/wall", Outline: outer, Holes: [][]Vec2{m.InnerLoop}, Wall: true},
	}
}

// ElevationZones returns an elevation's fillable zones in face
// coordinates: two wall-thickness end zones, then one rectangular face
// zone per section between consecutive divider positions formed by the
// face ends and the return walls. Sections narrower than EndTol are
// dropped.
func ElevationZones(m RoomModel, dir Direction) []Zone {
	faceLen := FaceLength(m.InnerLoop, dir)
	t := m.WallThickness
	h := m.WallHeight

	zones := []Zone{
		{
			ID:      fmt.Sprintf("elev/%s/end/left", dir),
			Outline: rectOutline(Rect{X: -t, Y: 0, W: t, H: h}),
			Wall:    true,
		},
		{
			ID:      fmt.Sprintf("elev/%s/end/right", dir),
			Outline: rectOutline(Rect{X: faceLen, Y: 0, W: t, H: h}),
			Wall:    true,
		},
	}

	dividers := append([]float64{0}, ReturnWallPositions(m.InnerLoop, dir)...)
	dividers = append(dividers, faceLen)
	sec := 0
	for i := 0; i+1 < len(dividers); i++ {
		w := dividers[i+1] - dividers[i]
		if w < EndTol {
			continue
		}
		zones = append(zones, Zone{
			ID:      fmt.Sprintf("elev/%s/sec/%d", dir, sec),
			Outline: rectOutline(Rect{X: dividers[i], Y: 0, W: w, H: h}),
		})
		sec++
	}
	return zones
}

// HitZone returns the first zone containing p, testing zones in declared
// order so holes of earlier zones don't block later ones.
func HitZone(zones []Zone, p Vec2) (Zone, bool) {
	for _, z := range zones {
		if z.Contains(p) {
			return z, true
		}
	}
	return Zone{}, false
}

// ResolveFill determines the zone's fill. Priority: an explicit preview
// assignment during hover, then a wall zone's fixed default, then the
// user-assigned entry for the zone id (pattern "none" suppresses fill),
// then no fill.
func ResolveFill(m RoomModel, z Zone, preview map[string]Hatch, style Style) (Hatch, bool) {
	if h, ok := preview[z.ID]; ok {
		return h, h.Pattern != HatchPatternNone
	}
	if z.Wall {
		if m.Wall.WallHatch != nil {
			return *m.Wall.WallHatch, true
		}
		return style.WallHatch, true
	}
	if h, ok := m.Hatches[z.ID]; ok {
		return h, h.Pattern != HatchPatternNone
	}
	return Hatch{}, false
}

func rectOutline(r Rect) []Vec2 {
	c := r.Corners()
	return c[:]
}
