package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/cascade-app/og-image-gen/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageRenderer renders scenes onto an offscreen RGBA canvas and serializes
// the result as a PNG file.
type ImageRenderer struct {
	canvas *image.RGBA
	faces  map[FontRole]font.Face
	scene  Scene
	Logger Logger
}

func NewImageRenderer() *ImageRenderer { return &ImageRenderer{} }

func (r *ImageRenderer) Start(ctx context.Context) error {
	r.canvas = image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))

	// Resolve one face per role. Failure to find any specific font is
	// non-fatal; resolveFace always hands back something usable.
	r.faces = make(map[FontRole]font.Face, len(fontSpecs))
	for role, spec := range fontSpecs {
		r.faces[role] = resolveFace(spec, r.Logger)
	}

	if r.Logger != nil {
		r.Logger.Infof("render", "canvas ready, %dx%d", CanvasWidth, CanvasHeight)
	}
	return nil
}

func (r *ImageRenderer) Stop() error {
	r.canvas = nil
	return nil
}

// SetScene sets the scene to be drawn on the next Redraw.
func (r *ImageRenderer) SetScene(scene Scene) { r.scene = scene }

// Redraw asks the current scene to draw itself onto the canvas.
func (r *ImageRenderer) Redraw() {
	if r.canvas == nil || r.scene == nil {
		return
	}
	r.scene.Draw(r)
}

// Drawer primitives

func (r *ImageRenderer) Size() (int, int) {
	return r.canvas.Bounds().Dx(), r.canvas.Bounds().Dy()
}

func (r *ImageRenderer) FillVerticalGradient(top, bottom color.RGBA) {
	bounds := r.canvas.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		rowColor := gradientRowColor(top, bottom, y-bounds.Min.Y, bounds.Dy())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r.canvas.SetRGBA(x, y, rowColor)
		}
	}
}

func (r *ImageRenderer) FillRoundedRect(rect image.Rectangle, radius int, c color.RGBA) {
	fillRoundedRect(r.canvas, layout.Normalize(rect), radius, c)
}

func (r *ImageRenderer) FillEllipse(cx, cy, rx, ry int, c color.RGBA) {
	fillEllipse(r.canvas, cx, cy, rx, ry, c)
}

func (r *ImageRenderer) MeasureText(text string, role FontRole) TextMetrics {
	face := r.face(role)
	metrics := face.Metrics()
	drawer := &font.Drawer{Face: face}
	return TextMetrics{
		Width:      drawer.MeasureString(text).Ceil(),
		Height:     (metrics.Ascent + metrics.Descent).Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
		Descent:    metrics.Descent.Ceil(),
		LineHeight: metrics.Height.Ceil(),
	}
}

// DrawText draws text with its top-left corner at (x, topY).
func (r *ImageRenderer) DrawText(text string, x, topY int, role FontRole, c color.RGBA) TextMetrics {
	m := r.MeasureText(text, role)
	drawer := &font.Drawer{
		Dst:  r.canvas,
		Src:  image.NewUniform(c),
		Face: r.face(role),
		Dot:  fixed.P(x, topY+m.Ascent),
	}
	drawer.DrawString(text)
	return m
}

// DrawTextCentered centers text horizontally within region and draws it with
// its top edge at topY.
func (r *ImageRenderer) DrawTextCentered(text string, region image.Rectangle, topY int, role FontRole, c color.RGBA) {
	m := r.MeasureText(text, role)
	x := layout.CenterHorizontal(region, m.Width)
	r.DrawText(text, x, topY, role, c)
}

func (r *ImageRenderer) face(role FontRole) font.Face {
	if f, ok := r.faces[role]; ok && f != nil {
		return f
	}
	return basicfont.Face7x13
}

// Output

// EncodePNG writes the current canvas to w as PNG.
func (r *ImageRenderer) EncodePNG(w io.Writer) error {
	if r.canvas == nil {
		return errors.New("render: canvas not started")
	}
	return png.Encode(w, r.canvas)
}

// WriteFile serializes the canvas as PNG at path, overwriting any existing
// file. A missing parent directory is an error, not created implicitly.
func (r *ImageRenderer) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
