package render

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSpec describes how one font role is resolved: candidate files on disk
// in order, then a built-in TTF, then basicfont as the last resort.
type fontSpec struct {
	size       float64
	candidates []string
	builtin    []byte
}

var fontSpecs = map[FontRole]fontSpec{
	FontTitle: {
		size: 72,
		candidates: []string{
			"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
			"/Library/Fonts/Arial Bold.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		},
		builtin: gobold.TTF,
	},
	FontTagline: {
		size: 32,
		candidates: []string{
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/Library/Fonts/Arial.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
		builtin: goregular.TTF,
	},
	FontBadge: {
		size: 18,
		candidates: []string{
			"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
			"/Library/Fonts/Arial Bold.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		},
		builtin: gobold.TTF,
	},
}

// resolveFace walks the fallback chain for one spec. It never fails: a face
// is always returned, basicfont in the worst case.
func resolveFace(spec fontSpec, logger Logger) font.Face {
	for _, path := range spec.candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fnt, err := truetype.Parse(data)
		if err != nil {
			if logger != nil {
				logger.Errorf("font", "parse %s failed: %v", path, err)
			}
			continue
		}
		if logger != nil {
			logger.Infof("font", "loaded %s at %.0fpt", path, spec.size)
		}
		return newFace(fnt, spec.size)
	}

	fnt, err := truetype.Parse(spec.builtin)
	if err != nil {
		if logger != nil {
			logger.Errorf("font", "builtin font parse failed, using basicfont: %v", err)
		}
		return basicfont.Face7x13
	}
	if logger != nil {
		logger.Infof("font", "no system font found, using builtin at %.0fpt", spec.size)
	}
	return newFace(fnt, spec.size)
}

func newFace(fnt *truetype.Font, size float64) font.Face {
	return truetype.NewFace(fnt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}
