// Package font sizes font faces from the resolved display metrics. It
// carries only sizing options and cell geometry; rendering and shaping stay
// with the host's text stack.
package font

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/sonoshi/mado/dpi"
)

const (
	// DefaultSize is used when an option's point size is unset.
	DefaultSize = 12.0
	// DefaultDPI matches the opentype package's own fallback density.
	DefaultDPI = 72.0
)

// FaceOptions selects the size of a font face. Zero fields mean defaults.
type FaceOptions struct {
	// Size is the font size in points.
	Size float64
	// DPI is the logical dots per inch the size is rendered at.
	DPI float64
}

// OpenTypeOptions converts the receiver for use with opentype.NewFace,
// filling in defaults. A nil receiver yields nil, which opentype accepts.
func (o *FaceOptions) OpenTypeOptions() *opentype.FaceOptions {
	if o == nil {
		return nil
	}
	opt := &opentype.FaceOptions{
		Size:    o.Size,
		DPI:     o.DPI,
		Hinting: font.HintingNone,
	}
	if opt.Size == 0 {
		opt.Size = DefaultSize
	}
	if opt.DPI == 0 {
		opt.DPI = DefaultDPI
	}
	return opt
}

// OptionsFromCache builds FaceOptions for a point size, taking the density
// from the cached logical DPI (mean of both axes).
func OptionsFromCache(size float64, cache *dpi.Cache) (*FaceOptions, error) {
	logical, err := cache.Logical(nil)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	return &FaceOptions{Size: size, DPI: logical.Mean()}, nil
}

// ParseFileFace parses an OpenType/TrueType font file and returns its face
// sized by opt.
func ParseFileFace(file string, opt *FaceOptions) (font.Face, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	f, err := opentype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("font: parse %s: %w", file, err)
	}
	face, err := opentype.NewFace(f, opt.OpenTypeOptions())
	if err != nil {
		return nil, fmt.Errorf("font: face %s: %w", file, err)
	}
	return face, nil
}

// CellSize returns the terminal cell geometry of a monospace face: the
// advance of '0' by the line height, with adj applied to the height.
func CellSize(face font.Face, adj dpi.Adjustment) (w, h int, err error) {
	adv, ok := face.GlyphAdvance('0')
	if !ok {
		return 0, 0, fmt.Errorf("font: face has no '0' glyph")
	}
	m := face.Metrics()
	height := float64((m.Ascent + m.Descent).Ceil())
	w = adv.Ceil()
	h = int(dpi.AdjustLineHeight(height, adj))
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("font: degenerate cell size %dx%d", w, h)
	}
	return w, h, nil
}
