package scene

import (
	"image"
	"image/color"
	"testing"

	"github.com/cascade-app/og-image-gen/internal/render"
)

// recordingDrawer captures draw calls so the card's structure can be
// asserted without rasterizing anything.
type recordingDrawer struct {
	gradients []color.RGBA
	rects     []image.Rectangle
	ellipses  int
	texts     []string
}

func (recordingDrawer) Size() (int, int) { return render.CanvasWidth, render.CanvasHeight }

func (d *recordingDrawer) FillVerticalGradient(top, bottom color.RGBA) {
	d.gradients = append(d.gradients, top, bottom)
}

func (d *recordingDrawer) FillRoundedRect(rect image.Rectangle, radius int, c color.RGBA) {
	d.rects = append(d.rects, rect)
}

func (d *recordingDrawer) FillEllipse(cx, cy, rx, ry int, c color.RGBA) { d.ellipses++ }

func (d *recordingDrawer) MeasureText(text string, role render.FontRole) render.TextMetrics {
	return render.TextMetrics{Width: 10 * len(text), Height: 10, Ascent: 8, Descent: 2, LineHeight: 12}
}

func (d *recordingDrawer) DrawText(text string, x, topY int, role render.FontRole, c color.RGBA) render.TextMetrics {
	d.texts = append(d.texts, text)
	return d.MeasureText(text, role)
}

func (d *recordingDrawer) DrawTextCentered(text string, region image.Rectangle, topY int, role render.FontRole, c color.RGBA) {
	d.texts = append(d.texts, text)
}

func TestCardDrawStructure(t *testing.T) {
	d := &recordingDrawer{}
	New().Draw(d)

	t.Run("Gradient Uses Palette Endpoints", func(t *testing.T) {
		if len(d.gradients) != 2 {
			t.Fatalf("gradient drawn %d times, want once", len(d.gradients)/2)
		}
		if d.gradients[0] != render.GradientTop || d.gradients[1] != render.GradientBottom {
			t.Errorf("gradient colors = %v", d.gradients)
		}
	})

	t.Run("Dot Grid Covers Canvas", func(t *testing.T) {
		// 30 columns (x = 20..1180 step 40) by 16 rows (y = 20..620 step 40).
		if d.ellipses != 30*16 {
			t.Errorf("dot count = %d, want %d", d.ellipses, 30*16)
		}
	})

	t.Run("Icon And Badges", func(t *testing.T) {
		// 1 icon plate + 3 cascade steps + 4 badges.
		if len(d.rects) != 8 {
			t.Fatalf("rounded rects = %d, want 8", len(d.rects))
		}
		plate := d.rects[0]
		if plate != image.Rect(440, 140, 560, 260) {
			t.Errorf("icon plate = %v", plate)
		}
		for _, rect := range d.rects[1:4] {
			if !rect.In(plate) {
				t.Errorf("cascade step %v outside icon plate %v", rect, plate)
			}
		}
		for i, rect := range d.rects[4:] {
			if rect.Dx() != 140 || rect.Dy() != 48 {
				t.Errorf("badge %d size = %dx%d, want 140x48", i, rect.Dx(), rect.Dy())
			}
			if rect.Min.Y != 450 {
				t.Errorf("badge %d top = %d, want 450", i, rect.Min.Y)
			}
		}
	})

	t.Run("Texts In Draw Order", func(t *testing.T) {
		want := []string{TitleText, TaglineText, "Private", "Kanban", "A11y", "Fast"}
		if len(d.texts) != len(want) {
			t.Fatalf("texts = %v", d.texts)
		}
		for i, s := range want {
			if d.texts[i] != s {
				t.Errorf("text[%d] = %q, want %q", i, d.texts[i], s)
			}
		}
	})
}

func TestBadgesLeftToRight(t *testing.T) {
	prev := -1
	for _, b := range badges {
		if b.x <= prev {
			t.Fatalf("badge %q at x=%d not to the right of previous (%d)", b.label, b.x, prev)
		}
		if b.x+badgeWidth > render.CanvasWidth {
			t.Errorf("badge %q overflows the canvas", b.label)
		}
		prev = b.x
	}
}
