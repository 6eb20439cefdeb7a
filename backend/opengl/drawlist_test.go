package opengl_test

import (
	"testing"

	"github.com/roomdraft/draft"
	"github.com/roomdraft/draft/backend/opengl"
)

func TestDrawListQuad(t *testing.T) {
	dl := opengl.AcquireDrawList()
	defer opengl.ReleaseDrawList(dl)

	dl.AddQuad(0, 0, 10, 0, 10, 10, 0, 10, 0xFF0000FF)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Errorf("vertices = %d, want 4", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Errorf("indices = %d, want 6", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("commands = %d, want 1", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("elem count = %d, want 6", dl.CmdBuffer[0].ElemCount)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := opengl.AcquireDrawList()
	defer opengl.ReleaseDrawList(dl)

	dl.AddTriangle(0, 0, 10, 0, 10, 10, 0x00FFFFFF)
	dl.AddLine(0, 0, 10, 10, 0x00000000, 2)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("fully transparent primitives should emit no vertices, got %d", len(dl.VtxBuffer))
	}
}

func TestDrawListClipSplitsCommands(t *testing.T) {
	dl := opengl.AcquireDrawList()
	defer opengl.ReleaseDrawList(dl)

	dl.AddTriangle(0, 0, 10, 0, 10, 10, 0xFF0000FF)
	dl.PushClipRect(0, 0, 5, 5)
	dl.AddTriangle(0, 0, 4, 0, 4, 4, 0xFF0000FF)
	dl.PopClipRect()
	dl.AddTriangle(20, 20, 30, 20, 30, 30, 0xFF0000FF)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("commands = %d, want 3", len(dl.CmdBuffer))
	}
	clip := dl.CmdBuffer[1].ClipRect
	if clip != [4]float32{0, 0, 5, 5} {
		t.Errorf("middle command clip = %v", clip)
	}
}

func TestDrawListFinalizeDropsEmpty(t *testing.T) {
	dl := opengl.AcquireDrawList()
	defer opengl.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 5, 5)
	dl.PopClipRect()
	dl.AddTriangle(0, 0, 10, 0, 10, 10, 0xFF0000FF)
	dl.Finalize()

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			t.Error("finalize should drop empty commands")
		}
	}
}

func TestDrawListText(t *testing.T) {
	dl := opengl.AcquireDrawList()
	defer opengl.ReleaseDrawList(dl)

	dl.AddText(0, 0, "2500", 0xFF000000, 1, 7)
	dl.Finalize()

	if len(dl.VtxBuffer) != 16 {
		t.Errorf("vertices = %d, want 4 per glyph", len(dl.VtxBuffer))
	}
	var textured bool
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == 7 {
			textured = true
		}
	}
	if !textured {
		t.Error("text command should bind the font texture")
	}
}

func TestAppendSceneProducesGeometry(t *testing.T) {
	e := draft.New()
	sc := e.PlanScene()
	view := opengl.FitTransform(sc.Bounds, 800, 600, 20)

	dl := opengl.AcquireDrawList()
	defer opengl.ReleaseDrawList(dl)
	opengl.Append(dl, sc, view, 7)
	dl.Finalize()

	if len(dl.VtxBuffer) == 0 || len(dl.IdxBuffer) == 0 {
		t.Error("plan scene should produce triangles")
	}
}

func TestTransformRoundTrip(t *testing.T) {
	v := opengl.FitTransform(draft.Rect{X: 0, Y: 0, W: 4000, H: 3000}, 800, 600, 20)
	p := draft.Vec2{X: 1234, Y: 567}
	x, y := v.Apply(p)
	back := v.Invert(float64(x), float64(y))
	if !roughly(back.X, p.X) || !roughly(back.Y, p.Y) {
		t.Errorf("round trip %v -> %v", p, back)
	}

	zoomed := v.ZoomAt(400, 300, 2)
	under := v.Invert(400, 300)
	after := zoomed.Invert(400, 300)
	if !roughly(under.X, after.X) || !roughly(under.Y, after.Y) {
		t.Errorf("zoom should keep the point under the cursor: %v vs %v", under, after)
	}
}

func roughly(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.5
}
