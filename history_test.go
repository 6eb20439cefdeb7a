package draft_test

import (
	"testing"

	"github.com/roomdraft/draft"
)

func TestHistoryExecuteUndoRedo(t *testing.T) {
	start := draft.DefaultRoom()
	h := draft.NewHistory(start)

	step1 := draft.SetSegmentLength(start, 0, 5000)
	step2 := draft.SetSegmentLength(step1, 1, 3500)
	h.Execute(draft.NewCommand(start, step1))
	h.Execute(draft.NewCommand(step1, step2))

	if !h.Present().Equal(step2) {
		t.Fatal("present should be the last executed state")
	}

	h.Undo()
	if !h.Present().Equal(step1) {
		t.Error("undo should restore the previous state")
	}
	h.Undo()
	if !h.Present().Equal(start) {
		t.Error("second undo should restore the start state")
	}
	if h.CanUndo() {
		t.Error("history should be exhausted")
	}
	h.Undo() // no-op on empty past
	if !h.Present().Equal(start) {
		t.Error("undo on empty past should not change the present")
	}

	h.Redo()
	h.Redo()
	if !h.Present().Equal(step2) {
		t.Error("redo twice should restore the last state")
	}
	if h.CanRedo() {
		t.Error("future should be exhausted")
	}
}

func TestHistoryExecuteNoopUnchanged(t *testing.T) {
	start := draft.DefaultRoom()
	h := draft.NewHistory(start)

	h.Execute(draft.NewCommand(start, start))
	if h.CanUndo() {
		t.Error("an unchanged command should not record a history entry")
	}
}

func TestHistoryExecuteClearsFuture(t *testing.T) {
	start := draft.DefaultRoom()
	h := draft.NewHistory(start)

	step1 := draft.SetSegmentLength(start, 0, 5000)
	h.Execute(draft.NewCommand(start, step1))
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("expected a redo entry after undo")
	}

	other := draft.SetSegmentLength(start, 0, 6000)
	h.Execute(draft.NewCommand(start, other))
	if h.CanRedo() {
		t.Error("executing a new command should clear the redo stack")
	}
}

func TestHistoryPreviewInvisible(t *testing.T) {
	start := draft.DefaultRoom()
	h := draft.NewHistory(start)

	for i := 0; i < 5; i++ {
		h.Preview(func(m draft.RoomModel) draft.RoomModel {
			return draft.SetSegmentLength(m, 0, 4000+float64(i)*100)
		})
	}
	if h.CanUndo() {
		t.Error("preview frames must not create history entries")
	}

	h.CommitSnapshot(start, h.Present())
	if !h.CanUndo() {
		t.Fatal("commit should create exactly one entry")
	}
	h.Undo()
	if !h.Present().Equal(start) {
		t.Error("undo after commit should restore the pre-gesture state")
	}
	if h.CanUndo() {
		t.Error("the whole gesture should be one entry")
	}
}

func TestHistoryCommitUnchanged(t *testing.T) {
	start := draft.DefaultRoom()
	h := draft.NewHistory(start)

	// Drag out and back: the net change is nothing.
	h.Preview(func(m draft.RoomModel) draft.RoomModel {
		return draft.SetSegmentLength(m, 0, 5000)
	})
	h.Preview(func(draft.RoomModel) draft.RoomModel { return start })

	h.CommitSnapshot(start, h.Present())
	if h.CanUndo() {
		t.Error("a gesture that changed nothing should not record an entry")
	}
	if !h.Present().Equal(start) {
		t.Error("present should be the starting state")
	}
}
