// Package draft implements a drafting geometry and projection engine for
// single orthogonal-polygon rooms. It keeps one source-of-truth model and
// derives a plan view and four elevation views from it on demand, producing
// ordered primitive lists for an external renderer.
package draft

import "math"

// Vec2 represents a 2D point or direction in world millimetres.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Perp returns the perpendicular (dy, -dx). For an edge of a clockwise
// loop in screen coordinates this is the outward wall normal.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Len returns the vector's length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Norm returns the unit vector in the same direction.
// A near-zero vector falls back to the +X axis rather than producing NaN.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l < Epsilon {
		return Vec2{X: 1, Y: 0}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect represents an axis-aligned rectangle with position and size.
type Rect struct {
	X, Y float64 // Top-left position
	W, H float64 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Expand returns the rectangle grown by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(other Rect) Rect {
	x1 := math.Min(r.X, other.X)
	y1 := math.Min(r.Y, other.Y)
	x2 := math.Max(r.X+r.W, other.X+other.W)
	y2 := math.Max(r.Y+r.H, other.Y+other.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Corners returns the rectangle's corners in clockwise order.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}

// Axis selects a world coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Geometric tolerances, in millimetres.
const (
	// Epsilon guards degenerate (near-zero-length) segments.
	Epsilon = 1e-6

	// LineEps is the tolerance for matching vertices to a shared wall line.
	LineEps = 0.01

	// EndTol filters return-wall positions at the very ends of an
	// elevation face and drops degenerate face sections.
	EndTol = 0.5
)

// Color constants (RGBA packed as 0xAABBGGRR).
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clamp clamps v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
