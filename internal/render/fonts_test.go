package render

import (
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestResolveFaceUsesBuiltinWhenNoFilesFound(t *testing.T) {
	spec := fontSpec{
		size:       32,
		candidates: []string{"/nonexistent/foo.ttf", "/also/nonexistent/bar.ttf"},
		builtin:    goregular.TTF,
	}
	face := resolveFace(spec, nil)
	if face == nil {
		t.Fatal("resolveFace returned nil")
	}
	if face == basicfont.Face7x13 {
		t.Error("expected the builtin TTF face, got basicfont")
	}
}

func TestResolveFaceFallsBackToBasicfont(t *testing.T) {
	spec := fontSpec{
		size:       18,
		candidates: []string{"/nonexistent/foo.ttf"},
		builtin:    []byte("not a font"),
	}
	face := resolveFace(spec, nil)
	if face != basicfont.Face7x13 {
		t.Errorf("expected basicfont as the last resort, got %T", face)
	}
}

func TestFontSpecsCoverAllRoles(t *testing.T) {
	for _, role := range []FontRole{FontTitle, FontTagline, FontBadge} {
		spec, ok := fontSpecs[role]
		if !ok {
			t.Fatalf("role %d has no spec", role)
		}
		if spec.size <= 0 {
			t.Errorf("role %d has size %v", role, spec.size)
		}
		if len(spec.candidates) == 0 {
			t.Errorf("role %d has no candidate paths", role)
		}
		if len(spec.builtin) == 0 {
			t.Errorf("role %d has no builtin font", role)
		}
	}
}
