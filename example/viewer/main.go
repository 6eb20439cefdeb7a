// Viewer is an interactive drafting window.
//
//	go run ./example/viewer/
//
// Controls:
//
//	Tab         cycle plan / north / east / south / west views
//	left drag   move walls and openings (sill height in elevations)
//	shift drag  split the grabbed wall and offset the new segment
//	left click  select; click empty space to deselect
//	D / W       place a door / window at the cursor (plan view)
//	X           delete the selected entity
//	Z / Y       undo / redo
//	Esc         cancel an in-flight drag
//	right drag  pan, scroll wheel zoom, F refit
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/roomdraft/draft"
	"github.com/roomdraft/draft/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 900
	windowTitle  = "roomdraft viewer"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// viewMode indexes the visible view: 0 is the plan, 1..4 the elevations.
type viewMode int

func (v viewMode) elevation() (draft.Direction, bool) {
	if v == 0 {
		return 0, false
	}
	return draft.Directions[v-1], true
}

type app struct {
	eng     *draft.Engine
	mode    viewMode
	view    opengl.Transform
	fitted  bool
	gesture *draft.Gesture

	panning    bool
	lastCursor draft.Vec2
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	a := &app{eng: draft.New()}

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		a.onKey(w, key)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		a.onMouseButton(button, action, mods, x, y)
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		a.onCursorMove(x, y)
	})
	window.SetScrollCallback(func(w *glfw.Window, _, yoff float64) {
		x, y := w.GetCursorPos()
		factor := 1.1
		if yoff < 0 {
			factor = 1 / 1.1
		}
		a.view = a.view.ZoomAt(x, y, factor)
	})

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		renderer.Resize(w, h)

		sc := a.scene()
		if !a.fitted {
			a.view = opengl.FitTransform(sc.Bounds, float64(w), float64(h), 40)
			a.fitted = true
		}

		br, bg, bb, _ := draft.UnpackRGBA(a.eng.Style().BackgroundColor)
		gl.ClearColor(float32(br)/255, float32(bg)/255, float32(bb)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := opengl.AcquireDrawList()
		opengl.Append(dl, sc, a.view, renderer.FontTextureID())
		if err := renderer.Render(dl); err != nil {
			opengl.ReleaseDrawList(dl)
			return fmt.Errorf("render: %w", err)
		}
		opengl.ReleaseDrawList(dl)

		window.SwapBuffers()
	}
	return nil
}

func (a *app) scene() draft.Scene {
	if dir, ok := a.mode.elevation(); ok {
		return a.eng.ElevationScene(dir)
	}
	return a.eng.PlanScene()
}

func (a *app) onKey(w *glfw.Window, key glfw.Key) {
	switch key {
	case glfw.KeyTab:
		a.mode = (a.mode + 1) % 5
		a.fitted = false
	case glfw.KeyF:
		a.fitted = false
	case glfw.KeyZ:
		a.eng.Undo()
	case glfw.KeyY:
		a.eng.Redo()
	case glfw.KeyEscape:
		if a.gesture != nil {
			a.gesture.Cancel()
			a.gesture = nil
		}
	case glfw.KeyD, glfw.KeyW:
		if _, ok := a.mode.elevation(); ok {
			return
		}
		x, y := w.GetCursorPos()
		p := a.view.Invert(x, y)
		if key == glfw.KeyD {
			a.eng.AddDoor(p)
		} else {
			a.eng.AddWindow(p)
		}
	case glfw.KeyX:
		if id := a.eng.Selection().EntityID; id != "" {
			a.eng.RemoveEntity(id)
		}
	}
}

func (a *app) onMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey, x, y float64) {
	switch button {
	case glfw.MouseButtonRight:
		a.panning = action == glfw.Press
		a.lastCursor = draft.Vec2{X: x, Y: y}
	case glfw.MouseButtonLeft:
		if action == glfw.Press {
			a.beginDrag(a.view.Invert(x, y), mods&glfw.ModShift != 0)
		} else if a.gesture != nil {
			a.gesture.End()
			a.gesture = nil
		}
	}
}

// beginDrag hit-tests the press position and starts the matching
// gesture: opening or fixture drags in the plan, sill drags in an
// elevation, otherwise a wall drag on the grabbed segment. Shift on a
// wall splits it at the press point first, then offsets the new
// segment with returns instead of moving the whole wall line.
func (a *app) beginDrag(p draft.Vec2, shift bool) {
	if dir, elev := a.mode.elevation(); elev {
		m := a.eng.Model()
		for id, ent := range m.Entities {
			o, ok := ent.(draft.WallOpening)
			if !ok || o.Kind != draft.Window {
				continue
			}
			if o.HitElevation(m, dir, p, a.eng.Style().SnapTolerance) {
				a.gesture = a.eng.BeginSillDrag(id)
				return
			}
		}
		return
	}

	if !a.eng.SelectAt(p) {
		return
	}
	sel := a.eng.Selection()
	if sel.EntityID != "" {
		m := a.eng.Model()
		switch m.Entities[sel.EntityID].(type) {
		case draft.WallOpening:
			a.gesture = a.eng.BeginOpeningDrag(sel.EntityID)
		case draft.Fixture:
			a.gesture = a.eng.BeginFixtureDrag(sel.EntityID, p)
		}
		return
	}
	if sel.Seg >= 0 {
		if shift {
			a.beginSplitDrag(sel.Seg, p)
			return
		}
		a.gesture = a.eng.BeginWallLineDrag(sel.Seg, p)
	}
}

// beginSplitDrag inserts a vertex where the wall was grabbed and drags
// the half between the new vertex and the segment's far end.
func (a *app) beginSplitDrag(seg int, p draft.Vec2) {
	m := a.eng.Model()
	va, vb := m.Segment(seg)
	t := draft.SegmentParam(p, va, vb)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	a.eng.InsertVertex(seg, draft.PointOnSegment(va, vb, t))

	drag := seg
	if a.eng.Model().SegmentCount() > m.SegmentCount() {
		drag = seg + 1
	}
	a.gesture = a.eng.BeginSegmentDrag(drag, p)
}

func (a *app) onCursorMove(x, y float64) {
	if a.panning {
		a.view = a.view.Pan(x-a.lastCursor.X, y-a.lastCursor.Y)
		a.lastCursor = draft.Vec2{X: x, Y: y}
		return
	}
	if a.gesture != nil {
		a.gesture.Move(a.view.Invert(x, y))
	}
}
