package draft_test

import (
	"testing"

	"github.com/roomdraft/draft"
)

func TestSegmentDragGestureSingleEntry(t *testing.T) {
	e := draft.New()
	start := e.Model()

	g := e.BeginSegmentDrag(0, draft.Vec2{X: 2000, Y: 0})
	g.Move(draft.Vec2{X: 2000, Y: -100})
	g.Move(draft.Vec2{X: 2000, Y: -300})
	g.Move(draft.Vec2{X: 2000, Y: -500})
	if e.CanUndo() {
		t.Fatal("moves must not create history entries")
	}
	if e.Model().Equal(start) {
		t.Fatal("moves should preview on the live model")
	}
	g.End()

	if g.Phase() != draft.GestureCommitted {
		t.Errorf("phase = %v, want committed", g.Phase())
	}
	if !almostVec(e.Model().InnerLoop[0], draft.Vec2{X: 0, Y: -500}) {
		t.Errorf("final top wall position = %v", e.Model().InnerLoop[0])
	}

	e.Undo()
	if !e.Model().Equal(start) {
		t.Error("one undo should revert the whole drag")
	}
	if e.CanUndo() {
		t.Error("the drag should be exactly one history entry")
	}
}

func TestGestureCancelRestores(t *testing.T) {
	e := draft.New()
	start := e.Model()

	g := e.BeginWallLineDrag(0, draft.Vec2{X: 2000, Y: 0})
	g.Move(draft.Vec2{X: 2000, Y: -400})
	g.Cancel()

	if g.Phase() != draft.GestureCancelled {
		t.Errorf("phase = %v, want cancelled", g.Phase())
	}
	if !e.Model().Equal(start) {
		t.Error("cancel should restore the pre-gesture model")
	}
	if e.CanUndo() {
		t.Error("cancel must not record a history entry")
	}

	// Further moves on a cancelled gesture are ignored.
	g.Move(draft.Vec2{X: 2000, Y: -900})
	if !e.Model().Equal(start) {
		t.Error("a cancelled gesture must ignore later moves")
	}
}

func TestGestureEndWithoutChange(t *testing.T) {
	e := draft.New()
	g := e.BeginSegmentDrag(0, draft.Vec2{X: 2000, Y: 0})
	g.End()
	if e.CanUndo() {
		t.Error("ending an unmoved gesture should not record an entry")
	}
}

func TestWallLineDragMovesRun(t *testing.T) {
	e := draft.New()
	g := e.BeginWallLineDrag(0, draft.Vec2{X: 2000, Y: 0})
	g.Move(draft.Vec2{X: 2000, Y: -250})
	g.End()

	m := e.Model()
	if !almostVec(m.InnerLoop[0], draft.Vec2{X: 0, Y: -250}) || !almostVec(m.InnerLoop[1], draft.Vec2{X: 4000, Y: -250}) {
		t.Errorf("wall line not moved: %v %v", m.InnerLoop[0], m.InnerLoop[1])
	}
	if m.SegmentCount() != 4 {
		t.Errorf("wall line drag should not insert vertices, have %d", m.SegmentCount())
	}
}

func TestOpeningDragResnaps(t *testing.T) {
	e := draft.New()
	id, ok := e.AddDoor(draft.Vec2{X: 2000, Y: 40})
	if !ok {
		t.Fatal("door placement failed")
	}

	g := e.BeginOpeningDrag(id)
	// Drag across the room to the bottom wall.
	g.Move(draft.Vec2{X: 1000, Y: 2960})
	g.End()

	o, ok := e.Model().Opening(id)
	if !ok {
		t.Fatal("opening disappeared")
	}
	if o.Attach.Seg != 2 {
		t.Errorf("opening segment = %d, want 2 (bottom wall)", o.Attach.Seg)
	}

	// A failed snap mid-drag keeps the last valid attachment.
	g2 := e.BeginOpeningDrag(id)
	g2.Move(draft.Vec2{X: 2000, Y: 1500})
	g2.End()
	o2, _ := e.Model().Opening(id)
	if o2.Attach != o.Attach {
		t.Errorf("failed snap should keep the attachment, got %+v", o2.Attach)
	}
}

func TestSillDrag(t *testing.T) {
	e := draft.New()
	id, ok := e.AddWindow(draft.Vec2{X: 2000, Y: 40})
	if !ok {
		t.Fatal("window placement failed")
	}

	g := e.BeginSillDrag(id)
	// Elevation pointer 1700mm below the ceiling: the window top follows.
	g.Move(draft.Vec2{X: 2000, Y: 1700})
	g.End()

	o, _ := e.Model().Opening(id)
	// wallHeight 2400 - pointer 1700 - height 1200, clamped to 0.
	if o.Sill != 0 {
		t.Errorf("sill = %v, want clamped to 0", o.Sill)
	}

	g = e.BeginSillDrag(id)
	g.Move(draft.Vec2{X: 2000, Y: 444})
	g.End()
	o, _ = e.Model().Opening(id)
	// 2400 - 444 - 1200 = 756, rounded to the sill step.
	if o.Sill != 760 {
		t.Errorf("sill = %v, want 760", o.Sill)
	}
}
