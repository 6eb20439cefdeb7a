package draft

import "math"

// This file mutates the inner boundary loop while keeping every edge
// axis-aligned and the dimension overrides consistent: any edit that moves
// a segment's endpoint deletes that segment's override unless the caller
// explicitly exempts it.

// MoveWallLine translates every vertex whose axis coordinate matches coord
// (within LineEps) by delta along that axis. This is the basic
// rectangle-resize behavior: moving one wall moves the whole straight run
// of collinear vertices on that wall line. Returns the new loop and the
// indices of moved vertices. Loops shorter than 2 vertices are no-ops.
func MoveWallLine(loop []Vec2, axis Axis, coord, delta float64) ([]Vec2, []int) {
	if len(loop) < 2 {
		return loop, nil
	}
	out := make([]Vec2, len(loop))
	copy(out, loop)
	var moved []int
	for i, p := range out {
		c := p.X
		if axis == AxisY {
			c = p.Y
		}
		if absf(c-coord) <= LineEps {
			if axis == AxisX {
				out[i].X += delta
			} else {
				out[i].Y += delta
			}
			moved = append(moved, i)
		}
	}
	if len(moved) == 0 {
		return loop, nil
	}
	return out, moved
}

// MoveWall applies MoveWallLine to the model and invalidates the override
// of every segment with a moved endpoint, except the exempt segments.
// Openings on resized segments re-clamp; an opening whose wall became
// narrower than itself is dropped.
func MoveWall(m RoomModel, axis Axis, coord, delta float64, exempt ...int) RoomModel {
	loop, moved := MoveWallLine(m.InnerLoop, axis, coord, delta)
	if len(moved) == 0 {
		return m
	}
	return reclampOpenings(m.WithLoop(loop, invalidateDims(m.DimText, len(loop), moved, exempt)))
}

// SetSegmentLength resizes segment seg to the requested length (sign of
// the segment's direction preserved) by moving the wall line through its
// far endpoint. The edited segment keeps its own dimension override; every
// other segment touching a moved vertex loses its override. Non-positive
// or degenerate requests return the model unchanged.
func SetSegmentLength(m RoomModel, seg int, length float64) RoomModel {
	n := m.SegmentCount()
	if n < 2 || seg < 0 || seg >= n || length < Epsilon {
		return m
	}
	a, b := m.Segment(seg)
	if m.SegmentHorizontal(seg) {
		cur := b.X - a.X
		delta := math.Copysign(length, cur) - cur
		return MoveWall(m, AxisX, b.X, delta, seg)
	}
	cur := b.Y - a.Y
	delta := math.Copysign(length, cur) - cur
	return MoveWall(m, AxisY, b.Y, delta, seg)
}

// InsertLoopVertex splits segment seg at p (assumed to lie on it),
// inserting a new vertex. Used for shift-click creation of L-shaped rooms.
// Overrides are remapped: indices below seg are kept, the split segment's
// own override is dropped, and indices above shift by one. Inserting at a
// degenerate position (at either endpoint) returns the model unchanged.
func InsertLoopVertex(m RoomModel, seg int, p Vec2) RoomModel {
	n := m.SegmentCount()
	if n < 2 || seg < 0 || seg >= n {
		return m
	}
	a, b := m.Segment(seg)
	if p.Sub(a).Len() < Epsilon || p.Sub(b).Len() < Epsilon {
		return m
	}
	loop := make([]Vec2, 0, n+1)
	loop = append(loop, m.InnerLoop[:seg+1]...)
	loop = append(loop, p)
	loop = append(loop, m.InnerLoop[seg+1:]...)

	dims := make(map[int]string, len(m.DimText))
	for k, v := range m.DimText {
		switch {
		case k < seg:
			dims[k] = v
		case k == seg:
			// Split segment's length changed; override is stale.
		default:
			dims[k+1] = v
		}
	}
	out := m.WithLoop(loop, dims)

	// Openings follow the split: attachments past the split shift up one
	// segment, attachments on the split segment land on whichever half
	// their center falls in, with the parameter rescaled.
	tSplit := p.Sub(a).Len() / b.Sub(a).Len()
	for _, ent := range m.Entities {
		o, ok := ent.(WallOpening)
		if !ok {
			continue
		}
		switch {
		case o.Attach.Seg < seg:
		case o.Attach.Seg > seg:
			o.Attach.Seg++
		case o.Attach.T <= tSplit:
			o.Attach.T = o.Attach.T / tSplit
		default:
			o.Attach.Seg = seg + 1
			o.Attach.T = (o.Attach.T - tSplit) / (1 - tSplit)
		}
		out = out.WithEntity(o)
	}
	return reclampOpenings(out)
}

// DragSegment moves a single segment perpendicular to itself by delta,
// leaving collinear neighbors on the same wall line fixed. Endpoints that
// are corners (adjacent segment perpendicular) are relocated; endpoints
// continuing along the same wall line get a newly inserted return vertex.
// Self-intersection after extreme drags is not prevented.
func DragSegment(m RoomModel, seg int, delta float64) RoomModel {
	n := m.SegmentCount()
	if n < 2 || seg < 0 || seg >= n || absf(delta) < Epsilon {
		return m
	}

	horiz := m.SegmentHorizontal(seg)
	next := (seg + 1) % n
	prev := (seg - 1 + n) % n

	// An endpoint is a corner when the adjacent segment's orientation
	// differs from the dragged segment's.
	aCorner := m.SegmentHorizontal(prev) != horiz
	bCorner := m.SegmentHorizontal(next) != horiz

	mv := func(p Vec2) Vec2 {
		if horiz {
			p.Y += delta
		} else {
			p.X += delta
		}
		return p
	}

	loop := make([]Vec2, 0, n+2)
	for j := 0; j < n; j++ {
		switch j {
		case seg:
			if aCorner {
				loop = append(loop, mv(m.InnerLoop[j]))
			} else {
				// Keep the shared vertex, add a return vertex.
				loop = append(loop, m.InnerLoop[j], mv(m.InnerLoop[j]))
			}
		case next:
			if bCorner {
				loop = append(loop, mv(m.InnerLoop[j]))
			} else {
				loop = append(loop, mv(m.InnerLoop[j]), m.InnerLoop[j])
			}
		default:
			loop = append(loop, m.InnerLoop[j])
		}
	}

	// Remap overrides to the new segment indexing, dropping any segment
	// whose geometry changed: the dragged segment itself and whichever
	// neighbors had a corner vertex relocated.
	insA, insB := !aCorner, !bCorner
	shift := func(k int) int {
		s := k
		if insA && k > seg {
			s++
		}
		if insB && k >= next {
			s++
		}
		return s
	}
	dims := make(map[int]string, len(m.DimText))
	for k, v := range m.DimText {
		switch {
		case k == seg:
		case k == prev && aCorner:
		case k == next && bCorner:
		default:
			dims[shift(k)] = v
		}
	}
	out := m.WithLoop(loop, dims)

	// Openings ride along: the dragged segment's index moves past any
	// inserted return vertex, everything else follows the same shift as
	// the overrides. Resized walls re-clamp their openings.
	for _, ent := range m.Entities {
		o, ok := ent.(WallOpening)
		if !ok {
			continue
		}
		if o.Attach.Seg == seg {
			if insA {
				o.Attach.Seg++
			}
			// A collinear continuation wrapping through vertex 0 puts
			// the return vertex at the front of the loop, shifting the
			// dragged segment too.
			if insB && next <= seg {
				o.Attach.Seg++
			}
		} else {
			o.Attach.Seg = shift(o.Attach.Seg)
		}
		out = out.WithEntity(o)
	}
	return reclampOpenings(out)
}

// reclampOpenings re-validates every opening after a loop edit, dropping
// those whose wall segment became too narrow to hold them.
func reclampOpenings(m RoomModel) RoomModel {
	for id, ent := range m.Entities {
		o, ok := ent.(WallOpening)
		if !ok {
			continue
		}
		clamped, ok := o.ClampAttachment(m)
		if !ok {
			m = m.WithoutEntity(id)
			continue
		}
		if clamped != o {
			m = m.WithEntity(clamped)
		}
	}
	return m
}

// invalidateDims deletes the override of every segment with an endpoint in
// the moved vertex set, keeping exempt segments. Remaining entries keep
// their indices: vertex count is unchanged by a wall-line move.
func invalidateDims(dims map[int]string, n int, moved []int, exempt []int) map[int]string {
	movedSet := make(map[int]bool, len(moved))
	for _, i := range moved {
		movedSet[i] = true
	}
	exemptSet := make(map[int]bool, len(exempt))
	for _, i := range exempt {
		exemptSet[i] = true
	}
	out := make(map[int]string, len(dims))
	for k, v := range dims {
		if (movedSet[k] || movedSet[(k+1)%n]) && !exemptSet[k] {
			continue
		}
		out[k] = v
	}
	return out
}
