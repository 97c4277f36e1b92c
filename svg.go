package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// SVGPathData renders the path as an SVG "d" attribute string. Coordinates
// are trimmed to three decimal places, which is below the resolution of
// any reasonable output viewport.
func (p *Path) SVGPathData() string {
	var b strings.Builder
	for i, el := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := el.(type) {
		case MoveTo:
			fmt.Fprintf(&b, "M %s %s", svgNum(e.Point.X), svgNum(e.Point.Y))
		case LineTo:
			fmt.Fprintf(&b, "L %s %s", svgNum(e.Point.X), svgNum(e.Point.Y))
		case CubicTo:
			fmt.Fprintf(&b, "C %s %s %s %s %s %s",
				svgNum(e.Control1.X), svgNum(e.Control1.Y),
				svgNum(e.Control2.X), svgNum(e.Control2.Y),
				svgNum(e.Point.X), svgNum(e.Point.Y))
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func svgNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
