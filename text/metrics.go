package text

// Metrics holds font metrics at a specific size.
// These metrics are derived from the font file and scaled to the face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font,
	// stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
// This is the recommended vertical distance between baselines of consecutive
// lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Baseline returns the vertical offset from the top of a full line box
// (ascent + descent + line gap) to the baseline, with the gap split evenly
// above and below the glyphs. Grid label anchoring measures from the top of
// the glyph block instead and offsets by Ascent alone; Baseline is for
// hosts positioning text within line boxes of their own.
func (m Metrics) Baseline() float64 {
	return m.Ascent + m.LineGap/2
}

// HeuristicMetrics returns metrics derived from the font size alone, for
// callers that have no font file at hand. The 1.2em line height with an
// 80/20 ascent/descent split matches common browser defaults closely enough
// for cell sizing.
func HeuristicMetrics(size float64) Metrics {
	lineHeight := size * 1.2
	return Metrics{
		Ascent:  lineHeight * 0.8,
		Descent: lineHeight * 0.2,
	}
}
