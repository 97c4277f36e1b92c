package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntFont implements ParsedFont using golang.org/x/image/font/sfnt.
type sfntFont struct {
	font *sfnt.Font

	// sfnt.Buffer is not safe for concurrent use; measurement can be
	// called from multiple goroutines owning independent render passes.
	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewSource parses TTF/OTF font data with the x/image sfnt parser.
func NewSource(data []byte) (ParsedFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &sfntFont{font: f}, nil
}

// NewSourceFromFile loads and parses a font file.
func NewSourceFromFile(path string) (ParsedFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// Name implements ParsedFont.Name.
func (f *sfntFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// Metrics implements ParsedFont.Metrics.
func (f *sfntFont) Metrics(size float64) Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.font.Metrics(&f.buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return HeuristicMetrics(size)
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{Ascent: ascent, Descent: descent, LineGap: gap}
}

// RuneAdvance implements ParsedFont.RuneAdvance.
func (f *sfntFont) RuneAdvance(r rune, size float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return 0
	}
	adv, err := f.font.GlyphAdvance(&f.buf, idx, floatToFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
