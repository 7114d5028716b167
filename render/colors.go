package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBorder    = tcell.NewRGBColor(110, 110, 130) // Muted slate
	RgbHead      = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbFood      = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbObstacle  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStatus    = tcell.NewRGBColor(255, 255, 255) // White
	RgbAlert     = tcell.NewRGBColor(255, 0, 0)     // Error red
	RgbDrawAlert = tcell.NewRGBColor(255, 255, 0)   // Bright yellow for board full
)

// Body gradient endpoints, blended in Lab space from neck to tail
var (
	bodyNear = colorful.Color{R: 0.0, G: 0.80, B: 0.0} // Normal green
	bodyFar  = colorful.Color{R: 0.0, G: 0.35, B: 0.4} // Dark teal
)

// GetBodyColor returns the color of segment i of a snake n segments long
// Segment 0 is the head and takes the near color
func GetBodyColor(i, n int) tcell.Color {
	t := 0.0
	if n > 2 && i > 1 {
		t = float64(i-1) / float64(n-2)
	}
	if t > 1 {
		t = 1
	}
	r, g, b := bodyNear.BlendLab(bodyFar, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
