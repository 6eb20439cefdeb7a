package draft

// GesturePhase tracks a drag gesture's lifecycle:
// Idle -> Dragging -> Committed or Cancelled.
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	GestureDragging
	GestureCommitted
	GestureCancelled
)

// Gesture is an in-flight continuous drag. It holds exactly the data
// needed to recompute geometry purely from the starting snapshot plus the
// current pointer position: preview frames never read the live present,
// which keeps the drag numerically stable. Move updates are
// history-transparent; End records exactly one history entry; Cancel
// discards the gesture without touching history.
type Gesture struct {
	history *History
	phase   GesturePhase
	before  RoomModel
	update  func(start RoomModel, p Vec2) RoomModel
}

func newGesture(h *History, update func(RoomModel, Vec2) RoomModel) *Gesture {
	return &Gesture{
		history: h,
		phase:   GestureDragging,
		before:  h.Present(),
		update:  update,
	}
}

// Phase returns the gesture's current lifecycle phase.
func (g *Gesture) Phase() GesturePhase { return g.phase }

// Move previews the model at pointer position p. No-op unless dragging.
func (g *Gesture) Move(p Vec2) {
	if g.phase != GestureDragging {
		return
	}
	next := g.update(g.before, p)
	g.history.Preview(func(RoomModel) RoomModel { return next })
}

// End commits the gesture as a single undoable step.
func (g *Gesture) End() {
	if g.phase != GestureDragging {
		return
	}
	g.phase = GestureCommitted
	g.history.CommitSnapshot(g.before, g.history.Present())
}

// Cancel discards the gesture, restoring the starting snapshot. No
// history entry is created.
func (g *Gesture) Cancel() {
	if g.phase != GestureDragging {
		return
	}
	g.phase = GestureCancelled
	before := g.before
	g.history.Preview(func(RoomModel) RoomModel { return before })
}

// WallLineDrag builds a gesture updater that moves a whole wall line (all
// collinear vertices at the grabbed coordinate) with the pointer.
func WallLineDrag(start RoomModel, seg int, grab Vec2) func(RoomModel, Vec2) RoomModel {
	horiz := start.SegmentHorizontal(seg)
	a, _ := start.Segment(seg)
	if horiz {
		return func(m RoomModel, p Vec2) RoomModel {
			return MoveWall(m, AxisY, a.Y, p.Y-grab.Y)
		}
	}
	return func(m RoomModel, p Vec2) RoomModel {
		return MoveWall(m, AxisX, a.X, p.X-grab.X)
	}
}

// SegmentDrag builds a gesture updater that offsets a single segment with
// return vertices, leaving collinear neighbors fixed.
func SegmentDrag(start RoomModel, seg int, grab Vec2) func(RoomModel, Vec2) RoomModel {
	horiz := start.SegmentHorizontal(seg)
	return func(m RoomModel, p Vec2) RoomModel {
		delta := p.X - grab.X
		if horiz {
			delta = p.Y - grab.Y
		}
		return DragSegment(m, seg, delta)
	}
}

// OpeningDrag builds a gesture updater that re-snaps an opening to the
// wall under the pointer. A failed snap keeps the starting attachment.
func OpeningDrag(start RoomModel, id string, tol float64) func(RoomModel, Vec2) RoomModel {
	return func(m RoomModel, p Vec2) RoomModel {
		o, ok := m.Opening(id)
		if !ok {
			return m
		}
		attach, ok := SnapToWall(m.InnerLoop, p, o.Width, tol)
		if !ok {
			return m
		}
		o.Attach = attach
		return m.WithEntity(o)
	}
}

// SillDrag builds a gesture updater that adjusts a window's sill height
// from an elevation pointer position (face coordinates, ceiling origin).
// Doors have no vertical elevation drag.
func SillDrag(start RoomModel, id string) func(RoomModel, Vec2) RoomModel {
	return func(m RoomModel, p Vec2) RoomModel {
		o, ok := m.Opening(id)
		if !ok || o.Kind != Window {
			return m
		}
		return m.WithEntity(o.WithSill(m, m.WallHeight-p.Y-o.Height))
	}
}

// FixtureDrag builds a gesture updater that translates a fixture with the
// pointer.
func FixtureDrag(start RoomModel, id string, grab Vec2) func(RoomModel, Vec2) RoomModel {
	orig, _ := start.Entities[id].(Fixture)
	return func(m RoomModel, p Vec2) RoomModel {
		f, ok := m.Entities[id].(Fixture)
		if !ok {
			return m
		}
		f.Pos = orig.Pos.Add(p.Sub(grab))
		return m.WithEntity(f)
	}
}
