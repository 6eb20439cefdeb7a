package draft_test

import (
	"testing"

	"github.com/roomdraft/draft"
)

func TestOuterLoopRectangle(t *testing.T) {
	inner := []draft.Vec2{{0, 0}, {2500, 0}, {2500, 4000}, {0, 4000}}

	outer := draft.OuterLoop(inner, 90)
	want := []draft.Vec2{{-90, -90}, {2590, -90}, {2590, 4090}, {-90, 4090}}
	if len(outer) != len(want) {
		t.Fatalf("outer loop has %d vertices, want %d", len(outer), len(want))
	}
	for i, w := range want {
		if !almostVec(outer[i], w) {
			t.Errorf("outer[%d] = %v, want %v", i, outer[i], w)
		}
	}
}

func TestOuterLoopLShape(t *testing.T) {
	inner := []draft.Vec2{{0, 0}, {2000, 0}, {2000, 1000}, {4000, 1000}, {4000, 3000}, {0, 3000}}

	outer := draft.OuterLoop(inner, 100)
	// The concave corner at (2000,1000) mitres inward on both axes.
	if !almostVec(outer[2], draft.Vec2{X: 2100, Y: 900}) {
		t.Errorf("concave corner offset = %v, want (2100, 900)", outer[2])
	}
	if !almostVec(outer[0], draft.Vec2{X: -100, Y: -100}) {
		t.Errorf("convex corner offset = %v, want (-100, -100)", outer[0])
	}
}

func TestOuterLoopZeroThickness(t *testing.T) {
	inner := []draft.Vec2{{0, 0}, {2500, 0}, {2500, 4000}, {0, 4000}}
	outer := draft.OuterLoop(inner, 0)
	for i := range inner {
		if !almostVec(outer[i], inner[i]) {
			t.Errorf("zero thickness changed vertex %d: %v", i, outer[i])
		}
	}
}
