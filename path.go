package chart

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector outline handed to the host drawing surface.
// The 3D shape builders and the grid border lines all emit Paths.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Polygon adds the points as a closed move-then-line subpath. This is the
// shape every projected 3D face reduces to.
func (p *Path) Polygon(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Arc adds a circular arc around center (cx, cy) from angle1 to angle2 in
// radians, sweeping in the direction of angle2-angle1. If the path already
// has a current point, a line connects it to the arc start; otherwise the
// arc starts a new subpath.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	p.EllipticalArc(cx, cy, r, r, angle1, angle2)
}

// EllipticalArc adds an axis-aligned elliptical arc with radii rx, ry.
// The sweep from angle1 to angle2 is split into segments of at most 90°,
// each approximated by a single cubic Bezier curve so the radial error
// stays bounded.
func (p *Path) EllipticalArc(cx, cy, rx, ry, angle1, angle2 float64) {
	sweep := angle2 - angle1
	if sweep == 0 {
		// Degenerate arc still establishes its start point.
		p.lineOrMoveTo(cx+rx*math.Cos(angle1), cy+ry*math.Sin(angle1))
		return
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(sweep) / maxAngle))
	angleStep := sweep / float64(numSegments)

	p.lineOrMoveTo(cx+rx*math.Cos(angle1), cy+ry*math.Sin(angle1))
	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		p.ellipticalArcSegment(cx, cy, rx, ry, a1, a1+angleStep)
	}
}

// lineOrMoveTo continues the current subpath with a line, or starts a new
// subpath when the path is empty.
func (p *Path) lineOrMoveTo(x, y float64) {
	if p.IsEmpty() {
		p.MoveTo(x, y)
	} else {
		p.LineTo(x, y)
	}
}

// ellipticalArcSegment adds a single arc segment (≤90° sweep) assuming the
// current point already sits at the segment start.
func (p *Path) ellipticalArcSegment(cx, cy, rx, ry, a1, a2 float64) {
	// Control point distance for the cubic Bezier approximation of an
	// elliptical arc; the tan term keeps the error bounded for any sweep
	// up to 90 degrees.
	half := (a2 - a1) / 2
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan(half)*math.Tan(half)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x2 := cx + rx*cos2
	y2 := cy + ry*sin2

	c1x := cx + rx*cos1 - alpha*rx*sin1
	c1y := cy + ry*sin1 + alpha*ry*cos1
	c2x := x2 + alpha*rx*sin2
	c2y := y2 - alpha*ry*cos2

	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Points returns the on-curve points of the path in order, ignoring control
// points. For the polygonal paths the face builders emit this is the vertex
// list; signed-area visibility tests run over it.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
