package draft_test

import (
	"testing"

	"github.com/roomdraft/draft"
)

func TestDefaultRoomInvariants(t *testing.T) {
	m := draft.DefaultRoom()
	if m.ID == "" {
		t.Error("room should have an id")
	}
	if draft.SignedArea(m.InnerLoop) <= 0 {
		t.Error("inner loop should wind clockwise in screen coordinates")
	}
	n := m.SegmentCount()
	for i := 0; i < n; i++ {
		a, b := m.Segment(i)
		if a.X != b.X && a.Y != b.Y {
			t.Errorf("segment %d is not axis-aligned: %v -> %v", i, a, b)
		}
	}
}

func TestWithEntityCopyOnWrite(t *testing.T) {
	m := draft.DefaultRoom()
	door := draft.NewDoor(draft.Attachment{Seg: 0, T: 0.5}, 900, 2100)

	m2 := m.WithEntity(door)
	if len(m.Entities) != 0 {
		t.Error("adding to the copy must not mutate the original")
	}
	if len(m2.Entities) != 1 {
		t.Error("copy should carry the new entity")
	}
	if &m.InnerLoop[0] != &m2.InnerLoop[0] {
		t.Error("unchanged loop should be shared, not copied")
	}
}

func TestWithoutEntityUnknown(t *testing.T) {
	m := draft.DefaultRoom()
	if got := m.WithoutEntity("nope"); !got.Equal(m) {
		t.Error("removing an unknown id should return the model unchanged")
	}
}

func TestModelEqual(t *testing.T) {
	m := draft.DefaultRoom()
	if !m.Equal(m) {
		t.Fatal("model should equal itself")
	}

	moved := draft.SetSegmentLength(m, 0, 4100)
	if m.Equal(moved) {
		t.Error("resized model should not be equal")
	}

	labeled := m.WithDimText(0, "4000")
	if m.Equal(labeled) {
		t.Error("label change should break equality")
	}

	door := draft.NewDoor(draft.Attachment{Seg: 0, T: 0.5}, 900, 2100)
	withDoor := m.WithEntity(door)
	if m.Equal(withDoor) {
		t.Error("entity change should break equality")
	}
	if !withDoor.Equal(m.WithEntity(door)) {
		t.Error("same entity value should compare equal")
	}
}

func TestFixturePlanRect(t *testing.T) {
	f := draft.Fixture{Pos: draft.Vec2{X: 100, Y: 200}, Size: draft.Vec2{X: 800, Y: 600}}
	if r := f.PlanRect(); r != (draft.Rect{X: 100, Y: 200, W: 800, H: 600}) {
		t.Errorf("rect = %+v", r)
	}
	f.Rot = 1
	if r := f.PlanRect(); r != (draft.Rect{X: 100, Y: 200, W: 600, H: 800}) {
		t.Errorf("rotated rect = %+v", r)
	}
}

func TestOpeningKindString(t *testing.T) {
	if draft.Door.String() != "door" || draft.Window.String() != "window" {
		t.Error("kind strings should be lowercase tags")
	}
}
