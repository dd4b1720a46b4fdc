package render

import (
	"image"
	"image/color"
	"math"
)

// lerpChannel interpolates one color channel, truncating toward zero so that
// t=0 yields exactly a.
func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// gradientRowColor returns the color of row y in a vertical gradient of the
// given height. Row 0 is exactly top; the last row is within one unit per
// channel of bottom.
func gradientRowColor(top, bottom color.RGBA, y, height int) color.RGBA {
	t := float64(y) / float64(height)
	return color.RGBA{
		R: lerpChannel(top.R, bottom.R, t),
		G: lerpChannel(top.G, bottom.G, t),
		B: lerpChannel(top.B, bottom.B, t),
		A: 0xFF,
	}
}

// blendPixel composites c over the existing pixel. The canvas stays opaque.
// Out-of-bounds writes are dropped.
func blendPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	existing := img.RGBAAt(x, y)
	alpha := float64(c.A) / 255.0
	blended := color.RGBA{
		R: uint8(float64(c.R)*alpha + float64(existing.R)*(1-alpha)),
		G: uint8(float64(c.G)*alpha + float64(existing.G)*(1-alpha)),
		B: uint8(float64(c.B)*alpha + float64(existing.B)*(1-alpha)),
		A: 0xFF,
	}
	img.SetRGBA(x, y, blended)
}

// fillRoundedRect blends a rounded rectangle onto img. Corner coverage is
// computed from the distance to the nearest corner circle, with a one-pixel
// anti-aliased edge.
func fillRoundedRect(img *image.RGBA, rect image.Rectangle, radius int, c color.RGBA) {
	r := float64(radius)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dx := math.Max(float64(rect.Min.X+radius-x), math.Max(float64(x-rect.Max.X+radius+1), 0))
			dy := math.Max(float64(rect.Min.Y+radius-y), math.Max(float64(y-rect.Max.Y+radius+1), 0))
			if dx > 0 && dy > 0 {
				dist := math.Sqrt(dx*dx+dy*dy) - r
				switch {
				case dist < 0:
					blendPixel(img, x, y, c)
				case dist < 1.0:
					edge := c
					edge.A = uint8(float64(c.A) * (1.0 - dist))
					blendPixel(img, x, y, edge)
				}
			} else {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillEllipse blends a filled ellipse centered at (cx, cy) with radii rx, ry.
func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for y := cy - ry - 1; y <= cy+ry+1; y++ {
		for x := cx - rx - 1; x <= cx+rx+1; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			dist := math.Sqrt(dx*dx + dy*dy)
			switch {
			case dist < 1.0:
				blendPixel(img, x, y, c)
			case dist < 1.05:
				edge := c
				edge.A = uint8(float64(c.A) * (1.0 - (dist-1.0)/0.05))
				blendPixel(img, x, y, edge)
			}
		}
	}
}
