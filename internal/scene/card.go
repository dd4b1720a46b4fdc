package scene

import (
	"image"
	"image/color"

	"github.com/cascade-app/og-image-gen/internal/render"
)

// Card is the Cascade social-preview card: gradient background, dot-grid
// overlay, app icon, centered title and tagline, and a row of feature badges.
type Card struct{}

func New() Card { return Card{} }

const (
	TitleText   = "Cascade"
	TaglineText = "Privacy-First Task Management"

	iconX      = 440
	iconY      = 140
	iconSize   = 120
	iconRadius = 24
	stepRadius = 4

	titleTop   = 280
	taglineTop = 360

	badgeTop    = 450
	badgeWidth  = 140
	badgeHeight = 48
	badgeRadius = 24

	// Label top anchor relative to the badge top.
	badgeLabelTop = 15
)

const (
	dotStart   = 20
	dotSpacing = 40
)

type badge struct {
	label string
	x     int
}

// Badges renders left to right across the lower band of the card.
var badges = []badge{
	{label: "Private", x: 300},
	{label: "Kanban", x: 460},
	{label: "A11y", x: 620},
	{label: "Fast", x: 780},
}

var (
	white        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	taglineColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 230}
	dotColor     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 13}
	iconFill     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 38}
	badgeFill    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 51}

	// The three cascade steps fade slightly from top-left to bottom-right.
	stepFills = [3]color.RGBA{
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 242},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 217},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 191},
	}
)

func (Card) Draw(d render.Drawer) {
	width, height := d.Size()

	d.FillVerticalGradient(render.GradientTop, render.GradientBottom)
	drawDotGrid(d, width, height)
	drawIcon(d)

	full := image.Rect(0, 0, width, height)
	d.DrawTextCentered(TitleText, full, titleTop, render.FontTitle, white)
	d.DrawTextCentered(TaglineText, full, taglineTop, render.FontTagline, taglineColor)

	for _, b := range badges {
		rect := image.Rect(b.x, badgeTop, b.x+badgeWidth, badgeTop+badgeHeight)
		d.FillRoundedRect(rect, badgeRadius, badgeFill)
		d.DrawTextCentered(b.label, rect, badgeTop+badgeLabelTop, render.FontBadge, white)
	}
}

// drawDotGrid blends a subtle dot pattern over the gradient.
func drawDotGrid(d render.Drawer, width, height int) {
	for x := dotStart; x < width; x += dotSpacing {
		for y := dotStart; y < height; y += dotSpacing {
			d.FillEllipse(x, y, 1, 1, dotColor)
		}
	}
}

// drawIcon draws the rounded app-icon plate with its three cascade steps.
func drawIcon(d render.Drawer) {
	plate := image.Rect(iconX, iconY, iconX+iconSize, iconY+iconSize)
	d.FillRoundedRect(plate, iconRadius, iconFill)

	steps := [3]image.Rectangle{
		image.Rect(iconX+20, iconY+20, iconX+44, iconY+44),
		image.Rect(iconX+48, iconY+48, iconX+78, iconY+72),
		image.Rect(iconX+70, iconY+72, iconX+104, iconY+96),
	}
	for i, step := range steps {
		d.FillRoundedRect(step, stepRadius, stepFills[i])
	}
}
