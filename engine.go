package draft

import (
	"strconv"
	"strings"
)

// Engine is the explicit store plus dispatcher for one room: it owns the
// command history, the presentation style, the selection and any hover
// fill preview, and derives view scenes on demand. It is not a singleton;
// callers thread it explicitly.
type Engine struct {
	history *History
	style   Style
	sel     Selection
	preview map[string]Hatch
}

// EngineOption configures an Engine instance.
type EngineOption func(*Engine)

// WithStyle sets the engine's presentation style.
func WithStyle(style Style) EngineOption {
	return func(e *Engine) { e.style = style }
}

// WithRoom starts the engine from an existing room model.
func WithRoom(m RoomModel) EngineOption {
	return func(e *Engine) { e.history = NewHistory(m) }
}

// New creates an engine over a default room.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		history: NewHistory(DefaultRoom()),
		style:   DefaultStyle(),
		sel:     NoSelection(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the current room model.
func (e *Engine) Model() RoomModel { return e.history.Present() }

// Style returns the engine's presentation style.
func (e *Engine) Style() Style { return e.style }

// SetStyle replaces the presentation style.
func (e *Engine) SetStyle(style Style) { e.style = style }

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }

// Undo steps the model back one edit.
func (e *Engine) Undo() { e.history.Undo() }

// Redo steps the model forward one undone edit.
func (e *Engine) Redo() { e.history.Redo() }

// execute wraps a model transformation into a single undoable command.
func (e *Engine) execute(after RoomModel) {
	e.history.Execute(NewCommand(e.Model(), after))
}

// SetSegmentLength resizes a wall segment to the given length in mm.
func (e *Engine) SetSegmentLength(seg int, length float64) {
	e.execute(SetSegmentLength(e.Model(), seg, length))
}

// SetDimOverride stores the literal text as the segment's dimension
// label. When the text parses to a positive length the segment is resized
// to match; otherwise only the label changes.
func (e *Engine) SetDimOverride(seg int, text string) {
	m := e.Model()
	if seg < 0 || seg >= m.SegmentCount() {
		return
	}
	after := m.WithDimText(seg, text)
	if v, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil && v > 0 {
		after = SetSegmentLength(after, seg, v)
	}
	e.execute(after)
}

// InsertVertex splits a wall segment at p, creating an L-shape corner
// candidate. Invalid positions leave the model unchanged.
func (e *Engine) InsertVertex(seg int, p Vec2) {
	e.execute(InsertLoopVertex(e.Model(), seg, p))
}

// AddDoor snaps a door onto the wall nearest p and adds it. Reports false
// when no wall within the snap tolerance can hold the opening.
func (e *Engine) AddDoor(p Vec2, opts ...Option) (string, bool) {
	o := applyOptions(opts)
	width := GetOpt(o, OptWidth)
	if !HasOpt(o, OptWidth) {
		width = DefaultDoorWidth
	}
	height := GetOpt(o, OptHeight)
	if !HasOpt(o, OptHeight) {
		height = DefaultDoorHeight
	}
	m := e.Model()
	attach, ok := SnapToWall(m.InnerLoop, p, width, e.style.SnapTolerance)
	if !ok {
		return "", false
	}
	door := NewDoor(attach, width, height)
	door.StyleTag = GetOpt(o, OptStyleTag)
	e.execute(m.WithEntity(door))
	return door.EntityID, true
}

// AddWindow snaps a window onto the wall nearest p and adds it. Reports
// false when no wall within the snap tolerance can hold the opening.
func (e *Engine) AddWindow(p Vec2, opts ...Option) (string, bool) {
	o := applyOptions(opts)
	width := GetOpt(o, OptWidth)
	if !HasOpt(o, OptWidth) {
		width = DefaultWindowWidth
	}
	height := GetOpt(o, OptHeight)
	if !HasOpt(o, OptHeight) {
		height = DefaultWindowHeight
	}
	sill := GetOpt(o, OptSill)
	if !HasOpt(o, OptSill) {
		sill = DefaultWindowSill
	}
	m := e.Model()
	attach, ok := SnapToWall(m.InnerLoop, p, width, e.style.SnapTolerance)
	if !ok {
		return "", false
	}
	win := NewWindow(attach, width, height, 0)
	win = win.WithSill(m, sill)
	win.StyleTag = GetOpt(o, OptStyleTag)
	e.execute(m.WithEntity(win))
	return win.EntityID, true
}

// AddFixture adds a rectangular fixture at pos.
func (e *Engine) AddFixture(pos, size Vec2, opts ...Option) string {
	o := applyOptions(opts)
	f := Fixture{
		EntityID: NewEntityID(),
		Pos:      pos,
		Size:     size,
		StyleTag: GetOpt(o, OptStyleTag),
	}
	e.execute(e.Model().WithEntity(f))
	return f.EntityID
}

// RemoveEntity deletes an entity. Unknown ids are no-ops.
func (e *Engine) RemoveEntity(id string) {
	if e.sel.EntityID == id {
		e.sel = NoSelection()
	}
	e.execute(e.Model().WithoutEntity(id))
}

// MoveOpening re-snaps an opening to the wall nearest p as a single
// undoable step. Reports false when the snap fails; the opening stays.
func (e *Engine) MoveOpening(id string, p Vec2) bool {
	m := e.Model()
	o, ok := m.Opening(id)
	if !ok {
		return false
	}
	attach, ok := SnapToWall(m.InnerLoop, p, o.Width, e.style.SnapTolerance)
	if !ok {
		return false
	}
	o.Attach = attach
	e.execute(m.WithEntity(o))
	return true
}

// RepositionOpening places an opening at a literal clear distance from
// one end of its wall segment.
func (e *Engine) RepositionOpening(id string, side Side, dist float64) {
	m := e.Model()
	o, ok := m.Opening(id)
	if !ok {
		return
	}
	e.execute(m.WithEntity(o.RepositionByDistance(m, side, dist)))
}

// SetSill sets a window's sill height, clamped and rounded. Doors are
// unaffected.
func (e *Engine) SetSill(id string, sill float64) {
	m := e.Model()
	o, ok := m.Opening(id)
	if !ok {
		return
	}
	e.execute(m.WithEntity(o.WithSill(m, sill)))
}

// AssignHatch assigns a fill to a zone. Wall zones carry a fixed default
// and are not overridable.
func (e *Engine) AssignHatch(z Zone, h Hatch) {
	if z.Wall {
		return
	}
	e.execute(e.Model().WithHatch(z.ID, h))
}

// ClearHatch removes a zone's fill assignment.
func (e *Engine) ClearHatch(z Zone) {
	e.execute(e.Model().WithoutHatch(z.ID))
}

// SetHatchPreview shows a hover-preview fill for a zone without touching
// the model or history.
func (e *Engine) SetHatchPreview(zoneID string, h Hatch) {
	if e.preview == nil {
		e.preview = map[string]Hatch{}
	}
	e.preview[zoneID] = h
}

// ClearHatchPreview removes all hover-preview fills.
func (e *Engine) ClearHatchPreview() {
	e.preview = nil
}

// BeginWallLineDrag starts a drag gesture moving a whole wall line.
func (e *Engine) BeginWallLineDrag(seg int, grab Vec2) *Gesture {
	return newGesture(e.history, WallLineDrag(e.Model(), seg, grab))
}

// BeginSegmentDrag starts a drag gesture offsetting one segment with
// return vertices.
func (e *Engine) BeginSegmentDrag(seg int, grab Vec2) *Gesture {
	return newGesture(e.history, SegmentDrag(e.Model(), seg, grab))
}

// BeginOpeningDrag starts a drag gesture moving an opening along walls.
func (e *Engine) BeginOpeningDrag(id string) *Gesture {
	return newGesture(e.history, OpeningDrag(e.Model(), id, e.style.SnapTolerance))
}

// BeginSillDrag starts an elevation drag gesture adjusting a window sill.
func (e *Engine) BeginSillDrag(id string) *Gesture {
	return newGesture(e.history, SillDrag(e.Model(), id))
}

// BeginFixtureDrag starts a drag gesture translating a fixture.
func (e *Engine) BeginFixtureDrag(id string, grab Vec2) *Gesture {
	return newGesture(e.history, FixtureDrag(e.Model(), id, grab))
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection { return e.sel }

// ClearSelection deselects everything.
func (e *Engine) ClearSelection() { e.sel = NoSelection() }

// SelectAt hit-tests the plan view at p and updates the selection:
// openings first, then fixtures, then wall segments. Reports whether
// anything was hit.
func (e *Engine) SelectAt(p Vec2) bool {
	m := e.Model()
	tol := e.style.SnapTolerance

	for _, ent := range sortedEntities(m) {
		if o, ok := ent.(WallOpening); ok && o.HitPlan(m, p, tol) {
			e.sel = Selection{EntityID: o.EntityID, Seg: -1}
			return true
		}
	}
	for _, ent := range sortedEntities(m) {
		if f, ok := ent.(Fixture); ok && f.PlanRect().Expand(tol).Contains(p) {
			e.sel = Selection{EntityID: f.EntityID, Seg: -1}
			return true
		}
	}
	if seg, ok := e.hitSegment(p, tol); ok {
		e.sel = Selection{Seg: seg}
		return true
	}
	e.sel = NoSelection()
	return false
}

// hitSegment returns the wall segment closest to p within tol.
func (e *Engine) hitSegment(p Vec2, tol float64) (int, bool) {
	m := e.Model()
	best, bestDist := -1, tol
	for i := 0; i < m.SegmentCount(); i++ {
		a, b := m.Segment(i)
		t := clamp(SegmentParam(p, a, b), 0, 1)
		d := p.Sub(PointOnSegment(a, b, t)).Len()
		if d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// PlanScene derives the plan view's primitive list.
func (e *Engine) PlanScene() Scene {
	return BuildPlanScene(e.Model(), e.style, e.sel, e.preview)
}

// ElevationScene derives one elevation's primitive list.
func (e *Engine) ElevationScene(dir Direction) Scene {
	return BuildElevationScene(e.Model(), dir, e.style, e.sel, e.preview)
}

// PlanZones returns the plan view's hatchable zones for hit testing.
func (e *Engine) PlanZones() []Zone { return PlanZones(e.Model()) }

// ElevationZones returns an elevation's hatchable zones for hit testing.
func (e *Engine) ElevationZones(dir Direction) []Zone {
	return ElevationZones(e.Model(), dir)
}
