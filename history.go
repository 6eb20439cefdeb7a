package draft

// Command is an undoable model mutation closed over its before/after pair
// at construction time.
type Command interface {
	Do(RoomModel) RoomModel
	Undo(RoomModel) RoomModel
}

// snapshotCommand swaps between two precomputed model values.
type snapshotCommand struct {
	before, after RoomModel
}

func (c snapshotCommand) Do(RoomModel) RoomModel   { return c.after }
func (c snapshotCommand) Undo(RoomModel) RoomModel { return c.before }

// NewCommand builds a command from a computed before/after pair.
func NewCommand(before, after RoomModel) Command {
	return snapshotCommand{before: before, after: after}
}

// History holds the undo/redo state: past snapshots, the present model,
// and future snapshots. It is only ever mutated through Execute, Undo,
// Redo and the Preview/CommitSnapshot pair.
type History struct {
	past    []RoomModel
	present RoomModel
	future  []RoomModel
}

// NewHistory creates a history starting at the given model.
func NewHistory(m RoomModel) *History {
	return &History{present: m}
}

// Present returns the current model.
func (h *History) Present() RoomModel {
	return h.present
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Execute runs the command against the present model, pushes the previous
// present onto the past and clears the future. A command whose result is
// structurally unchanged is a no-op.
func (h *History) Execute(cmd Command) {
	next := cmd.Do(h.present)
	if next.Equal(h.present) {
		return
	}
	h.past = append(h.past, h.present)
	h.present = next
	h.future = nil
}

// Undo moves the present to the front of the future and pops the last
// past snapshot into the present. No-op when the past is empty.
func (h *History) Undo() {
	if len(h.past) == 0 {
		return
	}
	h.future = append([]RoomModel{h.present}, h.future...)
	h.present = h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
}

// Redo is the inverse of Undo. No-op when the future is empty.
func (h *History) Redo() {
	if len(h.future) == 0 {
		return
	}
	h.past = append(h.past, h.present)
	h.present = h.future[0]
	h.future = h.future[1:]
}

// Preview applies an updater to the present without touching past or
// future. Used for the continuously-updating state during a drag gesture;
// preview frames are invisible to undo.
func (h *History) Preview(update func(RoomModel) RoomModel) {
	h.present = update(h.present)
}

// CommitSnapshot records a gesture as a single undoable step: it pushes
// the explicit before snapshot and sets the present to after. Call exactly
// once per gesture. A gesture that changed nothing is a no-op.
func (h *History) CommitSnapshot(before, after RoomModel) {
	if after.Equal(before) {
		h.present = before
		return
	}
	h.past = append(h.past, before)
	h.present = after
	h.future = nil
}
