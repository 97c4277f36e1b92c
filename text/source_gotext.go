package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// gotextFont implements ParsedFont using go-text/typesetting. It exists for
// fonts the sfnt parser cannot fully read; typesetting's tables cover more
// of OpenType. font.Face is read-only after parsing, so no locking is
// needed.
type gotextFont struct {
	face *font.Face
	upem float64
}

// NewGoTextSource parses TTF/OTF font data with go-text/typesetting.
func NewGoTextSource(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextFont{face: face, upem: float64(face.Upem())}, nil
}

// Name implements ParsedFont.Name.
func (f *gotextFont) Name() string {
	return f.face.Describe().Family
}

// Metrics implements ParsedFont.Metrics. Fonts without usable horizontal
// extents fall back to the size-derived heuristics.
func (f *gotextFont) Metrics(size float64) Metrics {
	ext, ok := f.face.FontHExtents()
	if !ok {
		return HeuristicMetrics(size)
	}
	scale := size / f.upem
	// Descender is negative in font extents; Metrics stores it positive.
	descent := float64(ext.Descender) * scale
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:  float64(ext.Ascender) * scale,
		Descent: descent,
		LineGap: float64(ext.LineGap) * scale,
	}
}

// RuneAdvance implements ParsedFont.RuneAdvance.
func (f *gotextFont) RuneAdvance(r rune, size float64) float64 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return float64(f.face.HorizontalAdvance(gid)) * size / f.upem
}
