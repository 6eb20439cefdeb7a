package draft_test

import (
	"testing"

	"github.com/roomdraft/draft"
)

func triangleArea(tri [3]draft.Vec2) float64 {
	a := (tri[1].X-tri[0].X)*(tri[2].Y-tri[0].Y) - (tri[1].Y-tri[0].Y)*(tri[2].X-tri[0].X)
	if a < 0 {
		a = -a
	}
	return a / 2
}

func TestTriangulateRectangle(t *testing.T) {
	rect := []draft.Vec2{{0, 0}, {4000, 0}, {4000, 3000}, {0, 3000}}
	tris := draft.Triangulate(rect)
	if len(tris) != 2 {
		t.Fatalf("rectangle triangulated into %d triangles, want 2", len(tris))
	}
	var total float64
	for _, tri := range tris {
		total += triangleArea(tri)
	}
	if !almost(total, 12e6) {
		t.Errorf("triangulated area = %v, want 12e6", total)
	}
}

func TestTriangulateConcave(t *testing.T) {
	l := []draft.Vec2{{0, 0}, {2000, 0}, {2000, 1000}, {4000, 1000}, {4000, 3000}, {0, 3000}}
	tris := draft.Triangulate(l)
	if len(tris) != 4 {
		t.Fatalf("hexagon triangulated into %d triangles, want 4", len(tris))
	}
	var total float64
	for _, tri := range tris {
		total += triangleArea(tri)
	}
	// 4000x3000 minus the 2000x1000 notch.
	if !almost(total, 10e6) {
		t.Errorf("triangulated area = %v, want 10e6", total)
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	if tris := draft.Triangulate([]draft.Vec2{{0, 0}, {100, 0}}); tris != nil {
		t.Errorf("two points should not triangulate, got %d triangles", len(tris))
	}
}

func TestRingQuads(t *testing.T) {
	inner := []draft.Vec2{{0, 0}, {2500, 0}, {2500, 4000}, {0, 4000}}
	outer := draft.OuterLoop(inner, 90)

	quads := draft.RingQuads(inner, outer)
	if len(quads) != 4 {
		t.Fatalf("ring quads = %d, want 4", len(quads))
	}
	// First quad covers the top wall from inner edge to outer edge.
	q := quads[0]
	if !almostVec(q[0], draft.Vec2{X: 0, Y: 0}) || !almostVec(q[3], draft.Vec2{X: -90, Y: -90}) {
		t.Errorf("first quad = %v", q)
	}

	if draft.RingQuads(inner, outer[:3]) != nil {
		t.Error("mismatched loop lengths should yield nil")
	}
}
