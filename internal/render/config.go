package render

import "image/color"

// Global render configuration for colors and logical canvas.
var (
	// Gradient endpoints per the product palette.
	GradientTop    = color.RGBA{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF} // #8b5cf6
	GradientBottom = color.RGBA{R: 0x6D, G: 0x28, B: 0xD9, A: 0xFF} // #6d28d9

	// Logical canvas size; the standard Open Graph preview dimensions.
	CanvasWidth  = 1200
	CanvasHeight = 630
)
