package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbDimText    = tcell.NewRGBColor(110, 110, 120) // Inactive rows, help line

	RgbTitleBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbTitleText = tcell.NewRGBColor(0, 0, 0)

	RgbSelectionBg = tcell.NewRGBColor(50, 50, 70)  // Selected list row
	RgbMarker      = tcell.NewRGBColor(255, 165, 0) // Orange selection marker

	RgbButton   = tcell.NewRGBColor(100, 150, 255) // Blue controls
	RgbButtonBg = tcell.NewRGBColor(30, 40, 70)

	RgbErrorBg   = tcell.NewRGBColor(200, 50, 50) // Red banner
	RgbErrorText = tcell.NewRGBColor(255, 255, 255)
)

// levelColors indexed by level; level 0 is the neutral "no effect" color
var levelColors = [...]tcell.Color{
	tcell.NewRGBColor(110, 110, 120), // 0: dim gray
	tcell.NewRGBColor(255, 220, 90),  // 1: yellow
	tcell.NewRGBColor(255, 140, 40),  // 2: orange
	tcell.NewRGBColor(255, 70, 70),   // 3: red
}

// LevelColor returns the severity color for level, clamped to the known range
func LevelColor(level int) tcell.Color {
	if level < 0 {
		level = 0
	}
	if level >= len(levelColors) {
		level = len(levelColors) - 1
	}
	return levelColors[level]
}
