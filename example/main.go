// Example runs a scripted drafting session and exports the resulting
// plan and elevation views as PNG files.
//
//	go run ./example/ -out out/
//
// The script reshapes a default room into an L, places a door and a
// window, hatches the floor, and writes five images: the plan and the
// four elevations.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roomdraft/draft"
	"github.com/roomdraft/draft/backend/raster"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	out := flag.String("out", "out", "output directory")
	blueprint := flag.Bool("blueprint", false, "use the blueprint style")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	style := draft.DefaultStyle()
	if *blueprint {
		style = draft.BlueprintStyle()
	}
	eng := draft.New(draft.WithStyle(style))

	// Stretch the top wall by typed dimension entry.
	eng.SetDimOverride(0, "5200")

	// Pull the bottom wall down 600 mm with a drag gesture: the whole
	// drag lands in history as a single undoable step.
	g := eng.BeginSegmentDrag(2, draft.Vec2{X: 2600, Y: 3000})
	g.Move(draft.Vec2{X: 2600, Y: 3200})
	g.Move(draft.Vec2{X: 2600, Y: 3600})
	g.End()

	// Split the top wall and push the right part up, making an L.
	eng.InsertVertex(0, draft.Vec2{X: 3200, Y: 0})
	g = eng.BeginSegmentDrag(1, draft.Vec2{X: 4200, Y: 0})
	g.Move(draft.Vec2{X: 4200, Y: -800})
	g.End()

	// Openings snap to the nearest wall within tolerance.
	if _, ok := eng.AddDoor(draft.Vec2{X: 1200, Y: 3550}); !ok {
		return fmt.Errorf("door placement failed to snap")
	}
	winID, ok := eng.AddWindow(draft.Vec2{X: 1600, Y: 50},
		draft.WithWidth(1500), draft.WithSill(1050))
	if !ok {
		return fmt.Errorf("window placement failed to snap")
	}
	eng.RepositionOpening(winID, draft.SideLeft, 700)

	eng.AddFixture(draft.Vec2{X: 3800, Y: 2400}, draft.Vec2{X: 900, Y: 650})

	// Hatch the floor zone; the wall ring keeps its fixed default.
	if zones := eng.PlanZones(); len(zones) > 0 {
		eng.AssignHatch(zones[0], draft.Hatch{
			Pattern:    "grid",
			Foreground: draft.RGBA(200, 200, 200, 255),
			Background: draft.RGBA(245, 245, 245, 255),
			TileSize:   400,
		})
	}

	r, err := raster.NewRenderer(1400, 1000)
	if err != nil {
		return err
	}

	planPath := filepath.Join(*out, "plan.png")
	if err := r.RenderPNG(planPath, eng.PlanScene(), eng.Style()); err != nil {
		return fmt.Errorf("export plan: %w", err)
	}
	fmt.Println("wrote", planPath)

	for _, dir := range draft.Directions {
		name := dir.String() + ".png"
		p := filepath.Join(*out, name)
		if err := r.RenderPNG(p, eng.ElevationScene(dir), eng.Style()); err != nil {
			return fmt.Errorf("export %s elevation: %w", dir, err)
		}
		fmt.Println("wrote", p)
	}
	return nil
}
