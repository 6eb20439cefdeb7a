package draft

// Style defines the visual appearance of generated scenes. Renderers
// receive resolved colors and weights and make no decisions of their own.
type Style struct {
	// Colors
	BackgroundColor uint32
	OutlineColor    uint32
	OpeningFill     uint32
	OpeningOutline  uint32
	DimColor        uint32
	SelectionColor  uint32
	FixtureOutline  uint32
	DividerColor    uint32

	// WallHatch is the fixed default fill for wall zones; wall zone fills
	// are not user-overridable.
	WallHatch Hatch

	// Line weights, mm at 1:1.
	OutlineWeight float64
	ThinWeight    float64

	// Dimension geometry
	DimOffset     float64 // distance from the measured edge, mm
	DimTextHeight float64 // label height, mm
	DimTickSize   float64 // end tick length, mm

	// SnapTolerance is the default pointer tolerance for wall snapping
	// and hit tests, mm.
	SnapTolerance float64
}

// DefaultStyle returns a conventional drafting appearance: dark lines on
// white, diagonal wall hatching.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: ColorWhite,
		OutlineColor:    ColorBlack,
		OpeningFill:     ColorWhite,
		OpeningOutline:  RGBA(64, 64, 64, 255),
		DimColor:        RGBA(90, 90, 90, 255),
		SelectionColor:  RGBA(0, 120, 255, 255),
		FixtureOutline:  RGBA(120, 120, 120, 255),
		DividerColor:    RGBA(150, 150, 150, 255),
		WallHatch: Hatch{
			Pattern:    "diagonal",
			Foreground: RGBA(70, 70, 70, 255),
			Background: RGBA(225, 225, 225, 255),
			Spacing:    60,
		},
		OutlineWeight: 2,
		ThinWeight:    0.7,
		DimOffset:     350,
		DimTextHeight: 120,
		DimTickSize:   60,
		SnapTolerance: 150,
	}
}

// BlueprintStyle returns a light-on-blue presentation style.
func BlueprintStyle() Style {
	s := DefaultStyle()
	s.BackgroundColor = RGBA(22, 48, 98, 255)
	s.OutlineColor = ColorWhite
	s.OpeningFill = RGBA(22, 48, 98, 255)
	s.OpeningOutline = RGBA(210, 220, 240, 255)
	s.DimColor = RGBA(190, 205, 235, 255)
	s.FixtureOutline = RGBA(170, 185, 220, 255)
	s.DividerColor = RGBA(170, 185, 220, 255)
	s.WallHatch = Hatch{
		Pattern:    "diagonal",
		Foreground: RGBA(210, 220, 240, 255),
		Background: RGBA(40, 70, 130, 255),
		Spacing:    60,
	}
	return s
}
