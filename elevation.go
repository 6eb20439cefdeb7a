package draft

import (
	"fmt"
	"math"
	"sort"
)

// Direction is a cardinal elevation direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the direction's lowercase name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

// Directions lists the four elevation directions in declaration order.
var Directions = [4]Direction{North, East, South, West}

// horizontalView reports whether the direction's facing segments run
// along the X axis (its elevation axis is world X).
func (d Direction) horizontalView() bool {
	return d == North || d == South
}

// FacesDirection reports whether the edge a->b faces the direction:
// horizontal edges oriented toward +X face north and toward -X face
// south; vertical edges toward +Y face east and toward -Y face west.
func FacesDirection(a, b Vec2, dir Direction) bool {
	d := b.Sub(a)
	switch dir {
	case North:
		return absf(d.Y) < Epsilon && d.X > Epsilon
	case South:
		return absf(d.Y) < Epsilon && d.X < -Epsilon
	case East:
		return absf(d.X) < Epsilon && d.Y > Epsilon
	default:
		return absf(d.X) < Epsilon && d.Y < -Epsilon
	}
}

// faceOrigin returns the loop's minimum coordinate on the direction's
// elevation axis; horizontal extents are measured from it.
func faceOrigin(loop []Vec2, dir Direction) float64 {
	origin := math.Inf(1)
	for _, p := range loop {
		c := p.Y
		if dir.horizontalView() {
			c = p.X
		}
		if c < origin {
			origin = c
		}
	}
	if math.IsInf(origin, 1) {
		return 0
	}
	return origin
}

// FaceLength returns the horizontal extent of the elevation face: the
// loop's coordinate span on the direction's axis.
func FaceLength(loop []Vec2, dir Direction) float64 {
	if len(loop) == 0 {
		return 0
	}
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, p := range loop {
		c := p.Y
		if dir.horizontalView() {
			c = p.X
		}
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	return hi - lo
}

// facePos projects a world point onto the direction's elevation axis,
// normalized so the face starts at zero.
func facePos(loop []Vec2, dir Direction, p Vec2) float64 {
	c := p.Y
	if dir.horizontalView() {
		c = p.X
	}
	return c - faceOrigin(loop, dir)
}

// FacingSegment is one wall segment visible in an elevation, with its
// normalized horizontal extent on the face.
type FacingSegment struct {
	Seg        int
	Start, End float64 // Start < End, mm from the face origin
}

// FacingSegments returns the segments facing dir, sorted left to right by
// their start position.
func FacingSegments(loop []Vec2, dir Direction) []FacingSegment {
	n := len(loop)
	var out []FacingSegment
	for i := 0; i < n; i++ {
		a, b := loop[i], loop[(i+1)%n]
		if !FacesDirection(a, b, dir) {
			continue
		}
		s := facePos(loop, dir, a)
		e := facePos(loop, dir, b)
		if s > e {
			s, e = e, s
		}
		out = append(out, FacingSegment{Seg: i, Start: s, End: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// ReturnWallPositions returns the horizontal positions of return walls:
// perpendicular edges with a facing neighbor on at least one side. These
// mark depth steps and are rendered as interior dividers. Positions are
// deduplicated and exclude the very ends of the face (tolerance EndTol).
func ReturnWallPositions(loop []Vec2, dir Direction) []float64 {
	n := len(loop)
	faceLen := FaceLength(loop, dir)
	var out []float64
	for i := 0; i < n; i++ {
		a, b := loop[i], loop[(i+1)%n]
		d := b.Sub(a)
		perpendicular := absf(d.X) < Epsilon
		if !dir.horizontalView() {
			perpendicular = absf(d.Y) < Epsilon
		}
		if !perpendicular || d.Len() < Epsilon {
			continue
		}
		pa, pb := loop[(i-1+n)%n], loop[i]
		na, nb := loop[(i+1)%n], loop[(i+2)%n]
		if !FacesDirection(pa, pb, dir) && !FacesDirection(na, nb, dir) {
			continue
		}
		pos := facePos(loop, dir, a)
		if pos < EndTol || pos > faceLen-EndTol {
			continue
		}
		dup := false
		for _, existing := range out {
			if absf(existing-pos) <= LineEps {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, pos)
		}
	}
	sort.Float64s(out)
	return out
}

// DimChainEntry is one entry of an elevation's bottom dimension chain.
type DimChainEntry struct {
	Seg        int
	Start, End float64
	Text       string // override label or formatted length
}

// ElevationDims returns the left-to-right dimension chain along the bottom
// of the elevation, one entry per facing segment, each carrying either its
// stored override or its computed length.
func ElevationDims(m RoomModel, dir Direction) []DimChainEntry {
	segs := FacingSegments(m.InnerLoop, dir)
	out := make([]DimChainEntry, 0, len(segs))
	for _, fs := range segs {
		text, ok := m.DimText[fs.Seg]
		if !ok {
			text = FormatLength(fs.End - fs.Start)
		}
		out = append(out, DimChainEntry{Seg: fs.Seg, Start: fs.Start, End: fs.End, Text: text})
	}
	return out
}

// FormatLength renders a millimetre length for a dimension label.
func FormatLength(mm float64) string {
	return fmt.Sprintf("%.0f", mm)
}
