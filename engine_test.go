package draft_test

import (
	"testing"

	"github.com/roomdraft/draft"
)

func TestNewEngineDefaults(t *testing.T) {
	e := draft.New()
	if e.Model().SegmentCount() != 4 {
		t.Errorf("default room has %d segments, want 4", e.Model().SegmentCount())
	}
	if e.CanUndo() || e.CanRedo() {
		t.Error("fresh engine should have empty history")
	}
	if sel := e.Selection(); sel.EntityID != "" || sel.Seg != -1 {
		t.Errorf("fresh engine selection = %+v, want none", sel)
	}
}

func TestEngineWithRoom(t *testing.T) {
	m := draft.DefaultRoom()
	m = m.WithLoop(stepLoop(), nil)
	e := draft.New(draft.WithRoom(m))
	if e.Model().SegmentCount() != 6 {
		t.Errorf("engine should start from the provided room")
	}
}

func TestAddDoorSnapFailure(t *testing.T) {
	e := draft.New()
	id, ok := e.AddDoor(draft.Vec2{X: 2000, Y: 1500})
	if ok || id != "" {
		t.Error("placement far from any wall should fail")
	}
	if len(e.Model().Entities) != 0 {
		t.Error("failed placement must not add an entity")
	}
	if e.CanUndo() {
		t.Error("failed placement must not record history")
	}
}

func TestAddWindowDefaults(t *testing.T) {
	e := draft.New()
	id, ok := e.AddWindow(draft.Vec2{X: 2000, Y: 40})
	if !ok {
		t.Fatal("window placement failed")
	}
	o, ok := e.Model().Opening(id)
	if !ok {
		t.Fatal("window not in the model")
	}
	if o.Width != draft.DefaultWindowWidth || o.Height != draft.DefaultWindowHeight || o.Sill != draft.DefaultWindowSill {
		t.Errorf("window defaults = %v x %v sill %v", o.Width, o.Height, o.Sill)
	}

	id2, _ := e.AddWindow(draft.Vec2{X: 3000, Y: 40},
		draft.WithWidth(1500), draft.WithHeight(900), draft.WithSill(0))
	o2, _ := e.Model().Opening(id2)
	if o2.Width != 1500 || o2.Height != 900 || o2.Sill != 0 {
		t.Errorf("window options = %v x %v sill %v", o2.Width, o2.Height, o2.Sill)
	}
}

func TestAddDoorExplicitZeroWidth(t *testing.T) {
	e := draft.New()
	id, ok := e.AddDoor(draft.Vec2{X: 2000, Y: 40}, draft.WithWidth(0))
	if !ok {
		t.Fatal("door placement failed")
	}
	o, _ := e.Model().Opening(id)
	if o.Width != 0 {
		t.Errorf("width = %v, an explicitly set zero must not fall back to the default", o.Width)
	}
	if o.Height != draft.DefaultDoorHeight {
		t.Errorf("height = %v, unset height should default", o.Height)
	}
}

func TestInsertVertexThenSegmentDrag(t *testing.T) {
	// The interactive L-shape flow: split a wall, then offset one half
	// with a drag gesture.
	e := draft.New()
	e.InsertVertex(0, draft.Vec2{X: 2000, Y: 0})

	g := e.BeginSegmentDrag(1, draft.Vec2{X: 3000, Y: 0})
	g.Move(draft.Vec2{X: 3000, Y: -500})
	g.End()

	if got := e.Model().SegmentCount(); got != 6 {
		t.Fatalf("segment count = %d, want 6", got)
	}
	e.Undo()
	e.Undo()
	if got := e.Model().SegmentCount(); got != 4 {
		t.Errorf("segment count after undoing drag and split = %d, want 4", got)
	}
}

func TestSetDimOverride(t *testing.T) {
	e := draft.New()

	// Numeric text resizes the wall and keeps the label.
	e.SetDimOverride(0, "4500")
	if got := e.Model().SegmentLen(0); !almost(got, 4500) {
		t.Errorf("segment length = %v, want 4500", got)
	}
	if e.Model().DimText[0] != "4500" {
		t.Errorf("label = %q", e.Model().DimText[0])
	}

	// Non-numeric text only changes the label.
	e.SetDimOverride(1, "VERIFY ON SITE")
	if got := e.Model().SegmentLen(1); !almost(got, 3000) {
		t.Errorf("segment length = %v, want unchanged 3000", got)
	}
	if e.Model().DimText[1] != "VERIFY ON SITE" {
		t.Errorf("label = %q", e.Model().DimText[1])
	}

	// Both edits are individually undoable.
	e.Undo()
	if _, ok := e.Model().DimText[1]; ok {
		t.Error("undo should remove the label override")
	}
	e.Undo()
	if got := e.Model().SegmentLen(0); !almost(got, 4000) {
		t.Errorf("segment length after undo = %v, want 4000", got)
	}
}

func TestSelectAtPriority(t *testing.T) {
	e := draft.New()
	doorID, ok := e.AddDoor(draft.Vec2{X: 2000, Y: 2960})
	if !ok {
		t.Fatal("door placement failed")
	}
	fixID := e.AddFixture(draft.Vec2{X: 500, Y: 500}, draft.Vec2{X: 800, Y: 600})

	if !e.SelectAt(draft.Vec2{X: 2000, Y: 3005}) {
		t.Fatal("click on the door should hit")
	}
	if e.Selection().EntityID != doorID {
		t.Errorf("selected %q, want the door", e.Selection().EntityID)
	}

	if !e.SelectAt(draft.Vec2{X: 900, Y: 800}) {
		t.Fatal("click on the fixture should hit")
	}
	if e.Selection().EntityID != fixID {
		t.Errorf("selected %q, want the fixture", e.Selection().EntityID)
	}

	if !e.SelectAt(draft.Vec2{X: 4000, Y: 1500}) {
		t.Fatal("click on a bare wall should hit")
	}
	if sel := e.Selection(); sel.EntityID != "" || sel.Seg != 1 {
		t.Errorf("selection = %+v, want segment 1", sel)
	}

	if e.SelectAt(draft.Vec2{X: 2000, Y: 1500}) {
		t.Error("click on empty floor should miss")
	}
	if sel := e.Selection(); sel.EntityID != "" || sel.Seg != -1 {
		t.Errorf("selection = %+v, want cleared", sel)
	}
}

func TestRemoveEntityClearsSelection(t *testing.T) {
	e := draft.New()
	id, _ := e.AddDoor(draft.Vec2{X: 2000, Y: 40})
	e.SelectAt(draft.Vec2{X: 2000, Y: -5})
	if e.Selection().EntityID != id {
		t.Fatal("door should be selected")
	}

	e.RemoveEntity(id)
	if e.Selection().EntityID != "" {
		t.Error("removing the selected entity should clear the selection")
	}
	if len(e.Model().Entities) != 0 {
		t.Error("entity should be gone")
	}
}

func TestAssignHatchWallRefused(t *testing.T) {
	e := draft.New()
	zones := e.PlanZones()
	h := draft.Hatch{Pattern: "grid", Foreground: 0xFF000000, TileSize: 300}

	e.AssignHatch(zones[1], h) // wall zone
	if len(e.Model().Hatches) != 0 || e.CanUndo() {
		t.Error("wall zones must refuse hatch assignment")
	}

	e.AssignHatch(zones[0], h)
	if got, ok := e.Model().Hatches[zones[0].ID]; !ok || got != h {
		t.Error("floor zone should accept hatch assignment")
	}

	e.ClearHatch(zones[0])
	if len(e.Model().Hatches) != 0 {
		t.Error("clear should remove the assignment")
	}
}

func TestHatchPreviewBypassesHistory(t *testing.T) {
	e := draft.New()
	zones := e.PlanZones()
	e.SetHatchPreview(zones[0].ID, draft.Hatch{Pattern: "diagonal", Foreground: 0xFF000000, Spacing: 60})

	if e.CanUndo() {
		t.Error("previews must not record history")
	}
	if len(e.Model().Hatches) != 0 {
		t.Error("previews must not touch the model")
	}

	e.ClearHatchPreview()
}

func TestMoveOpeningUndoable(t *testing.T) {
	e := draft.New()
	id, _ := e.AddDoor(draft.Vec2{X: 2000, Y: 40})

	if !e.MoveOpening(id, draft.Vec2{X: 1000, Y: 2960}) {
		t.Fatal("move to the bottom wall should snap")
	}
	o, _ := e.Model().Opening(id)
	if o.Attach.Seg != 2 {
		t.Errorf("segment = %d, want 2", o.Attach.Seg)
	}

	if e.MoveOpening(id, draft.Vec2{X: 2000, Y: 1500}) {
		t.Error("move to the room center should fail")
	}

	e.Undo()
	o, _ = e.Model().Opening(id)
	if o.Attach.Seg != 0 {
		t.Errorf("segment after undo = %d, want 0", o.Attach.Seg)
	}
}

func TestRepositionAndSill(t *testing.T) {
	e := draft.New()
	id, _ := e.AddWindow(draft.Vec2{X: 2000, Y: 40})

	e.RepositionOpening(id, draft.SideLeft, 700)
	o, _ := e.Model().Opening(id)
	left, _ := o.EdgeDistances(e.Model())
	if !almost(left, 700) {
		t.Errorf("left distance = %v, want 700", left)
	}

	e.SetSill(id, 1104)
	o, _ = e.Model().Opening(id)
	if o.Sill != 1100 {
		t.Errorf("sill = %v, want 1100", o.Sill)
	}
}
