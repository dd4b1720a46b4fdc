package render

import (
	"context"
	"image"
	"image/color"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	SetScene(scene Scene)
	Redraw()
	WriteFile(path string) error
}

// Scene draws itself using the primitives a Drawer provides.
type Scene interface {
	Draw(d Drawer)
}

// Drawer is an abstraction the renderer provides to scenes to draw primitives
// without exposing the underlying pixel buffer.
type Drawer interface {
	// Size returns the logical canvas size (in pixels) that scenes draw into.
	Size() (width int, height int)

	// Fill primitives. Translucent colors are alpha-blended over what is
	// already on the canvas; the canvas itself stays fully opaque.
	FillVerticalGradient(top, bottom color.RGBA)
	FillRoundedRect(rect image.Rectangle, radius int, c color.RGBA)
	FillEllipse(cx, cy, rx, ry int, c color.RGBA)

	// Generic text primitives. Y coordinates are top anchors; the renderer
	// converts them to baselines using the resolved face's ascent.
	MeasureText(text string, role FontRole) TextMetrics
	DrawText(text string, x, topY int, role FontRole, c color.RGBA) TextMetrics

	// Convenience helper (implemented using the generic primitives).
	DrawTextCentered(text string, region image.Rectangle, topY int, role FontRole, c color.RGBA)
}

// FontRole selects one of the faces the renderer resolves at startup.
type FontRole int

const (
	FontTitle FontRole = iota
	FontTagline
	FontBadge
)

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

// Logger matches the subset of the app logger the renderer needs.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}
