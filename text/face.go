package text

import "strings"

// ParsedFont is the parser-independent view of a loaded font. Both the
// x/image sfnt parser and the go-text/typesetting parser implement it.
type ParsedFont interface {
	// Name returns the font family name, or "" if the font does not
	// declare one.
	Name() string

	// Metrics returns the vertical metrics scaled to the given size in
	// pixels.
	Metrics(size float64) Metrics

	// RuneAdvance returns the horizontal advance of r at the given size,
	// or 0 if the font has no glyph for r.
	RuneAdvance(r rune, size float64) float64
}

// Face binds a parsed font to a size. The zero Face is usable: it measures
// with HeuristicMetrics and an advance of 0.6em, the common width guess for
// proportional text.
type Face struct {
	parsed ParsedFont
	size   float64
}

// NewFace creates a face for the parsed font at the given size.
func NewFace(parsed ParsedFont, size float64) Face {
	return Face{parsed: parsed, size: size}
}

// HeuristicFace creates a face with no underlying font. All measurements
// come from size-derived heuristics.
func HeuristicFace(size float64) Face {
	return Face{size: size}
}

// Size returns the face size in pixels.
func (f Face) Size() float64 { return f.size }

// Metrics returns the face's vertical metrics.
func (f Face) Metrics() Metrics {
	if f.parsed == nil {
		return HeuristicMetrics(f.size)
	}
	return f.parsed.Metrics(f.size)
}

// Advance returns the horizontal advance of a single rune.
func (f Face) Advance(r rune) float64 {
	if f.parsed == nil {
		return f.size * 0.6
	}
	return f.parsed.RuneAdvance(r, f.size)
}

// Measure returns the extents of s. Width is the widest line's advance sum;
// height is the line count times the line height, so multi-line labels are
// sized as a block.
func (f Face) Measure(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		lw := 0.0
		for _, r := range line {
			lw += f.Advance(r)
		}
		if lw > w {
			w = lw
		}
	}
	return w, float64(len(lines)) * f.Metrics().LineHeight()
}

// Lines returns the number of display lines in s.
func Lines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
