package chart

import (
	"math"
	"testing"
)

func TestPathPolygon(t *testing.T) {
	p := NewPath()
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}
	p.Polygon(pts)

	elems := p.Elements()
	if len(elems) != 4 {
		t.Fatalf("Polygon produced %d elements, want 4 (move, 2 lines, close)", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("first element = %T, want MoveTo", elems[0])
	}
	if _, ok := elems[3].(Close); !ok {
		t.Errorf("last element = %T, want Close", elems[3])
	}
	got := p.Points()
	for i, want := range pts {
		if got[i] != want {
			t.Errorf("Points()[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestPathPolygonEmpty(t *testing.T) {
	p := NewPath()
	p.Polygon(nil)
	if !p.IsEmpty() {
		t.Errorf("Polygon(nil) produced %d elements, want empty path", len(p.Elements()))
	}
}

// arcEndpointError measures how far each cubic segment endpoint of an arc
// lands from the true circle.
func arcEndpointError(p *Path, cx, cy, r float64) float64 {
	worst := 0.0
	for _, pt := range p.Points() {
		d := math.Abs(pt.Distance(Pt(cx, cy)) - r)
		if d > worst {
			worst = d
		}
	}
	return worst
}

func TestPathArcStaysOnCircle(t *testing.T) {
	tests := []struct {
		name           string
		angle1, angle2 float64
	}{
		{"quarter", 0, math.Pi / 2},
		{"half", 0, math.Pi},
		{"three quarters", math.Pi / 4, math.Pi},
		{"almost full", 0, 2*math.Pi - 1e-6},
		{"reverse sweep", math.Pi, 0},
		{"reverse full", 2*math.Pi - 1e-6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			p.Arc(100, 100, 50, tt.angle1, tt.angle2)
			if p.IsEmpty() {
				t.Fatal("arc produced an empty path")
			}
			if err := arcEndpointError(p, 100, 100, 50); err > 1e-9 {
				t.Errorf("arc endpoint error = %e, want on-circle endpoints", err)
			}
		})
	}
}

func TestPathArcSegmentCount(t *testing.T) {
	// A full sweep must be split into at least four ≤90° cubic segments.
	p := NewPath()
	p.Arc(0, 0, 10, 0, 2*math.Pi-1e-9)
	cubics := 0
	for _, e := range p.Elements() {
		if _, ok := e.(CubicTo); ok {
			cubics++
		}
	}
	if cubics < 4 {
		t.Errorf("full-circle arc used %d cubic segments, want >= 4", cubics)
	}
}

func TestPathArcContinuesSubpath(t *testing.T) {
	// With a current point, Arc must connect with a line, not a move.
	p := NewPath()
	p.MoveTo(0, 0)
	p.Arc(0, 0, 10, 0, math.Pi/2)
	moves := 0
	for _, e := range p.Elements() {
		if _, ok := e.(MoveTo); ok {
			moves++
		}
	}
	if moves != 1 {
		t.Errorf("arc after MoveTo produced %d MoveTo elements, want 1", moves)
	}
}

func TestPathEllipticalArcEndpoints(t *testing.T) {
	p := NewPath()
	p.EllipticalArc(0, 0, 20, 10, 0, math.Pi/2)
	pts := p.Points()
	if len(pts) == 0 {
		t.Fatal("empty elliptical arc")
	}
	first, last := pts[0], pts[len(pts)-1]
	if first.Distance(Pt(20, 0)) > 1e-9 {
		t.Errorf("arc start = %v, want (20,0)", first)
	}
	if last.Distance(Pt(0, 10)) > 1e-9 {
		t.Errorf("arc end = %v, want (0,10)", last)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)
	q := p.Transform(Translate(5, 5).Multiply(Scale(2, 2)))
	pts := q.Points()
	want := []Point{{5, 5}, {25, 5}, {25, 25}, {5, 25}}
	for i := range want {
		if pts[i].Distance(want[i]) > 1e-12 {
			t.Errorf("transformed point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	q := p.Clone()
	q.LineTo(5, 6)
	if len(p.Elements()) != 2 {
		t.Errorf("mutating clone changed original: %d elements", len(p.Elements()))
	}
	if len(q.Elements()) != 3 {
		t.Errorf("clone has %d elements, want 3", len(q.Elements()))
	}
}
