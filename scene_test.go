package draft_test

import (
	"testing"

	"github.com/roomdraft/draft"
)

func countPrims(sc draft.Scene) (fills, strokes, lines, dims int) {
	for _, p := range sc.Prims {
		switch p.(type) {
		case draft.FillPolygon:
			fills++
		case draft.StrokePolygon:
			strokes++
		case draft.Line, draft.Polyline:
			lines++
		case draft.Dimension:
			dims++
		}
	}
	return
}

func TestBuildPlanScene(t *testing.T) {
	e := draft.New()
	sc := e.PlanScene()

	fills, strokes, _, dims := countPrims(sc)
	// The wall ring carries its fixed default hatch even with nothing
	// assigned; the floor stays unfilled.
	if fills != 1 {
		t.Errorf("plan fills = %d, want 1 (the wall ring)", fills)
	}
	// Inner and outer wall outlines.
	if strokes < 2 {
		t.Errorf("plan strokes = %d, want at least 2", strokes)
	}
	// One dimension per wall segment.
	if dims != 4 {
		t.Errorf("plan dimensions = %d, want 4", dims)
	}
	if sc.Bounds.W <= 0 || sc.Bounds.H <= 0 {
		t.Error("scene bounds should be non-empty")
	}
}

func TestPlanSceneDimensionText(t *testing.T) {
	e := draft.New()
	e.SetDimOverride(0, "4000 VIF")

	var found bool
	for _, p := range e.PlanScene().Prims {
		if d, ok := p.(draft.Dimension); ok && d.Text == "4000 VIF" {
			found = true
		}
	}
	if !found {
		t.Error("plan dimension chain should carry the override label")
	}
}

func TestPlanSceneSelectedOpeningDims(t *testing.T) {
	e := draft.New()
	id, _ := e.AddDoor(draft.Vec2{X: 2000, Y: 40})

	_, _, _, base := countPrims(e.PlanScene())
	e.SelectAt(draft.Vec2{X: 2000, Y: -5})
	if e.Selection().EntityID != id {
		t.Fatal("door should be selected")
	}
	_, _, _, selected := countPrims(e.PlanScene())
	if selected <= base {
		t.Errorf("selecting an opening should add edge dimensions: %d -> %d", base, selected)
	}
}

func TestBuildElevationScene(t *testing.T) {
	e := draft.New()
	if _, ok := e.AddWindow(draft.Vec2{X: 2000, Y: 40}); !ok {
		t.Fatal("window placement failed")
	}

	sc := e.ElevationScene(draft.North)
	fills, _, lines, dims := countPrims(sc)
	// Section fills have no default, so the fills are the two end walls
	// plus the window rectangle.
	if fills != 3 {
		t.Errorf("elevation fills = %d, want 3", fills)
	}
	// The window cross and the inner face edges produce line primitives.
	if lines < 4 {
		t.Errorf("elevation lines = %d, want at least 4", lines)
	}
	// One bottom chain entry for the single facing segment.
	if dims != 1 {
		t.Errorf("elevation dimensions = %d, want 1", dims)
	}

	// The window does not appear on the opposite elevation.
	south := e.ElevationScene(draft.South)
	sFills, _, _, _ := countPrims(south)
	if sFills != 2 {
		t.Errorf("south elevation fills = %d, want 2 (end walls only)", sFills)
	}
}

func TestNoSelection(t *testing.T) {
	sel := draft.NoSelection()
	if sel.EntityID != "" || sel.Seg != -1 {
		t.Errorf("NoSelection = %+v", sel)
	}
}
