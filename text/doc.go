// Package text provides the font measurements grid label layout needs:
// vertical metrics (ascent, descent, line gap) and string extents at a given
// face size.
//
// Two font parsers are available. The default parser is built on
// golang.org/x/image/font/sfnt and has no further dependencies. For fonts
// that need full OpenType coverage, NewGoTextSource parses through
// go-text/typesetting instead. Both feed the same Face type.
//
// When no font is available, HeuristicMetrics derives usable metrics from
// the font size alone, so label layout degrades instead of failing.
package text
