package draft

import "github.com/google/uuid"

// OpeningKind discriminates wall opening variants.
type OpeningKind int

const (
	Door OpeningKind = iota
	Window
)

// String returns the kind's lowercase tag.
func (k OpeningKind) String() string {
	switch k {
	case Door:
		return "door"
	case Window:
		return "window"
	default:
		return "unknown"
	}
}

// Attachment expresses a wall-relative position: a segment index and a
// parameter t in [0,1] along that segment.
type Attachment struct {
	Seg int
	T   float64
}

// Entity is the closed set of things that can live in a room besides the
// walls themselves. Implementations are value types; the unexported
// method keeps the set closed so consumers can match exhaustively.
type Entity interface {
	ID() string
	entity()
}

// WallOpening is a door or window attached to a wall segment.
// Invariant: the half-width envelope around Attach.T stays within [0,1]
// of the segment, so an opening never hangs off either end.
type WallOpening struct {
	EntityID string
	Kind     OpeningKind
	Attach   Attachment
	Width    float64 // along the wall, mm
	Height   float64 // vertical, mm
	Sill     float64 // floor to underside, mm; always 0 for doors
	StyleTag string
}

func (o WallOpening) ID() string { return o.EntityID }
func (WallOpening) entity()      {}

// Fixture is a rectangular plan-only furnishing.
type Fixture struct {
	EntityID string
	Pos      Vec2 // top-left corner in world mm
	Size     Vec2
	Rot      int // quarter turns, 0-3
	StyleTag string
}

func (f Fixture) ID() string { return f.EntityID }
func (Fixture) entity()      {}

// PlanRect returns the fixture's axis-aligned plan rectangle.
// Odd quarter turns swap width and depth.
func (f Fixture) PlanRect() Rect {
	w, h := f.Size.X, f.Size.Y
	if f.Rot%2 == 1 {
		w, h = h, w
	}
	return Rect{X: f.Pos.X, Y: f.Pos.Y, W: w, H: h}
}

// HatchPatternNone suppresses the fill for a zone when assigned.
const HatchPatternNone = "none"

// Hatch describes a surface fill: a pattern with colors and geometry
// parameters. Assignments are keyed by derived zone identifiers.
type Hatch struct {
	Pattern    string
	Foreground uint32
	Background uint32
	Spacing    float64 // line spacing, mm
	TileSize   float64 // tile edge for tiled patterns, mm
	Paired     bool    // alternate tile pairing
}

// WallConfig carries optional display overrides for the wall ring.
type WallConfig struct {
	OutlineWeight float64 // 0 = use style default
	WallHatch     *Hatch  // nil = use style default
}

// RoomModel is the sole source of truth for a room. Values are immutable:
// every edit produces a new model sharing unchanged structure, so history
// snapshots are cheap.
type RoomModel struct {
	ID string

	// InnerLoop is the clear interior boundary: an ordered, implicitly
	// closed, clockwise sequence of points in mm. Every consecutive edge
	// (including wrap-around) is axis-aligned.
	InnerLoop []Vec2

	WallThickness float64
	WallHeight    float64

	// DimText maps a segment index to a user-entered override label.
	// A key is valid only while its segment's endpoints are unchanged
	// since the override was set.
	DimText map[int]string

	Entities map[string]Entity
	Hatches  map[string]Hatch
	Wall     WallConfig
}

// DefaultRoom constructs a rectangular room with conventional defaults.
func DefaultRoom() RoomModel {
	return RoomModel{
		ID: uuid.NewString(),
		InnerLoop: []Vec2{
			{0, 0},
			{4000, 0},
			{4000, 3000},
			{0, 3000},
		},
		WallThickness: 90,
		WallHeight:    2400,
		DimText:       map[int]string{},
		Entities:      map[string]Entity{},
		Hatches:       map[string]Hatch{},
	}
}

// NewEntityID returns a fresh opaque entity identifier.
func NewEntityID() string {
	return uuid.NewString()
}

// SegmentCount returns the number of wall segments.
func (m RoomModel) SegmentCount() int {
	return len(m.InnerLoop)
}

// Segment returns the endpoints of segment i (indexed by start vertex,
// wrapping at the end of the loop).
func (m RoomModel) Segment(i int) (a, b Vec2) {
	n := len(m.InnerLoop)
	return m.InnerLoop[i%n], m.InnerLoop[(i+1)%n]
}

// SegmentLen returns the length of segment i.
func (m RoomModel) SegmentLen(i int) float64 {
	a, b := m.Segment(i)
	return b.Sub(a).Len()
}

// SegmentDir returns the unit direction of segment i, falling back to +X
// for a degenerate segment.
func (m RoomModel) SegmentDir(i int) Vec2 {
	a, b := m.Segment(i)
	return b.Sub(a).Norm()
}

// SegmentHorizontal reports whether segment i runs along the X axis.
// Degenerate segments count as horizontal.
func (m RoomModel) SegmentHorizontal(i int) bool {
	a, b := m.Segment(i)
	return absf(b.Y-a.Y) <= absf(b.X-a.X)
}

// Opening returns the wall opening with the given id.
func (m RoomModel) Opening(id string) (WallOpening, bool) {
	o, ok := m.Entities[id].(WallOpening)
	return o, ok
}

// WithLoop returns a copy of the model with a new inner loop and
// dimension overrides. All other structure is shared.
func (m RoomModel) WithLoop(loop []Vec2, dims map[int]string) RoomModel {
	m.InnerLoop = loop
	m.DimText = dims
	return m
}

// WithEntity returns a copy of the model with e added or replaced.
func (m RoomModel) WithEntity(e Entity) RoomModel {
	m.Entities = copyEntities(m.Entities)
	m.Entities[e.ID()] = e
	return m
}

// WithoutEntity returns a copy of the model with the entity removed.
// Removing an unknown id returns the model unchanged.
func (m RoomModel) WithoutEntity(id string) RoomModel {
	if _, ok := m.Entities[id]; !ok {
		return m
	}
	m.Entities = copyEntities(m.Entities)
	delete(m.Entities, id)
	return m
}

// WithDimText returns a copy of the model with an override label set for
// the segment. The literal text is stored even when it is not a valid
// length; geometry changes are the caller's concern.
func (m RoomModel) WithDimText(seg int, text string) RoomModel {
	m.DimText = copyDims(m.DimText)
	m.DimText[seg] = text
	return m
}

// WithHatch returns a copy of the model with a hatch assigned to a zone.
func (m RoomModel) WithHatch(zoneID string, h Hatch) RoomModel {
	m.Hatches = copyHatches(m.Hatches)
	m.Hatches[zoneID] = h
	return m
}

// WithoutHatch returns a copy of the model with a zone assignment removed.
func (m RoomModel) WithoutHatch(zoneID string) RoomModel {
	if _, ok := m.Hatches[zoneID]; !ok {
		return m
	}
	m.Hatches = copyHatches(m.Hatches)
	delete(m.Hatches, zoneID)
	return m
}

// Equal reports structural equality of two models. Entity values are
// comparable structs, so map entries compare directly.
func (m RoomModel) Equal(other RoomModel) bool {
	if m.ID != other.ID ||
		m.WallThickness != other.WallThickness ||
		m.WallHeight != other.WallHeight ||
		m.Wall.OutlineWeight != other.Wall.OutlineWeight {
		return false
	}
	if (m.Wall.WallHatch == nil) != (other.Wall.WallHatch == nil) {
		return false
	}
	if m.Wall.WallHatch != nil && *m.Wall.WallHatch != *other.Wall.WallHatch {
		return false
	}
	if len(m.InnerLoop) != len(other.InnerLoop) {
		return false
	}
	for i := range m.InnerLoop {
		if m.InnerLoop[i] != other.InnerLoop[i] {
			return false
		}
	}
	if len(m.DimText) != len(other.DimText) {
		return false
	}
	for k, v := range m.DimText {
		if ov, ok := other.DimText[k]; !ok || ov != v {
			return false
		}
	}
	if len(m.Entities) != len(other.Entities) {
		return false
	}
	for k, v := range m.Entities {
		if ov, ok := other.Entities[k]; !ok || ov != v {
			return false
		}
	}
	if len(m.Hatches) != len(other.Hatches) {
		return false
	}
	for k, v := range m.Hatches {
		if ov, ok := other.Hatches[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

func copyEntities(src map[string]Entity) map[string]Entity {
	dst := make(map[string]Entity, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyDims(src map[int]string) map[int]string {
	dst := make(map[int]string, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyHatches(src map[string]Hatch) map[string]Hatch {
	dst := make(map[string]Hatch, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
