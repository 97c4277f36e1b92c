package solid

import (
	"math"

	"github.com/chartgeom/chart"
)

// ArcSlice describes a 3D donut/pie sector: a ring segment of outer radius
// R and inner radius InnerR around (X, Y), extruded by Depth, spanning the
// angles Start to End (radians, increasing clockwise on screen).
type ArcSlice struct {
	X, Y   float64
	R      float64
	InnerR float64
	Depth  float64
	Start  float64
	End    float64
}

// ArcParts holds the five path parts of a projected arc slice, each with
// its own draw-order key. The cap is always above every wall; the outer and
// inner walls share one value and sit above the two end caps, which are
// tie-broken between themselves by start versus end angle.
type ArcParts struct {
	Top       *chart.Path
	Out       *chart.Path
	Inn       *chart.Path
	SideStart *chart.Path
	SideEnd   *chart.Path

	ZTop       float64
	ZOut       float64
	ZInn       float64
	ZSideStart float64
	ZSideEnd   float64
}

// incPrecision spreads the wall angles (at most pi) far enough apart that
// arc-part z-indices cannot collide with the small integer z-indices of
// unrelated shapes.
const incPrecision = 1e5

// Faces re-derives the slice's five path parts from its current parameters
// under the rotation's alpha/beta angles. The flat top rim is drawn as the
// ellipse a tilted circle projects to (radii scaled by cos alpha / cos
// beta), and the walls connect it to the same rim shifted by the depth
// offset vector (Depth*sin beta, Depth*sin alpha).
func (s ArcSlice) Faces(rot chart.Rotation3D) ArcParts {
	cx, cy := s.X, s.Y
	start, end := s.Start, s.End

	rx := s.R * math.Cos(rot.Beta)
	ry := s.R * math.Cos(rot.Alpha)
	irx := s.InnerR * math.Cos(rot.Beta)
	iry := s.InnerR * math.Cos(rot.Alpha)
	dx := s.Depth * math.Sin(rot.Beta)
	dy := s.Depth * math.Sin(rot.Alpha)

	// Top: outer rim forward, inner rim back.
	top := chart.NewPath()
	top.EllipticalArc(cx, cy, rx, ry, start, end)
	top.EllipticalArc(cx, cy, irx, iry, end, start)
	top.Close()

	out := s.outerWall(rot, rx, ry, dx, dy)

	// Inner wall: near rim forward, offset rim back.
	inn := chart.NewPath()
	inn.EllipticalArc(cx, cy, irx, iry, start, end)
	inn.EllipticalArc(cx+dx, cy+dy, irx, iry, end, start)
	inn.Close()

	sideStart := s.sideWall(start, rx, ry, irx, iry, dx, dy)
	sideEnd := s.sideWall(end, rx, ry, irx, iry, dx, dy)

	// Wall ordering follows the angular position of each wall relative to
	// the correction angle of the depth-offset vector.
	angleCorr := math.Atan2(dy, -dx)
	angleStart := toZeroPiRange(start + angleCorr)
	angleEnd := toZeroPiRange(end + angleCorr - math.Pi)
	angleMid := toZeroPiRange((start+end)/2 + angleCorr - math.Pi/2)

	zWall := math.Max(angleMid, math.Max(angleStart, angleEnd)) * incPrecision

	return ArcParts{
		Top:       top,
		Out:       out,
		Inn:       inn,
		SideStart: sideStart,
		SideEnd:   sideEnd,

		// The +1 keeps the cap above a wall that reaches the full pi range.
		ZTop:       math.Pi*incPrecision + 1,
		ZOut:       zWall,
		ZInn:       zWall,
		ZSideStart: angleStart * incPrecision * 0.99,
		ZSideEnd:   angleEnd * incPrecision * 0.99,
	}
}

// outerWall builds the outer wall, splitting it where the slice crosses the
// near or far meridian of the ring so the path does not self-intersect.
func (s ArcSlice) outerWall(rot chart.Rotation3D, rx, ry, dx, dy float64) *chart.Path {
	cx, cy := s.X, s.Y
	start, end := s.Start, s.End

	// The visible span of the outer wall is bounded by the meridians the
	// current tilt direction exposes.
	b := 0.0
	if rot.Beta > 0 {
		b = math.Pi / 2
	}
	a := math.Pi / 2
	if rot.Alpha > 0 {
		a = 0
	}

	start2 := start
	if start <= -b && end > -b {
		start2 = -b
	}
	end2 := end
	if end >= math.Pi-a && start < math.Pi-a {
		end2 = math.Pi - a
	}
	midEnd := 2*math.Pi - a

	out := chart.NewPath()
	out.EllipticalArc(cx, cy, rx, ry, start2, end2)

	switch {
	case end > midEnd && start < midEnd:
		// The slice wraps past the far meridian: bridge over the seam with
		// extra rim segments so front and back runs stay separate.
		out.EllipticalArc(cx+dx, cy+dy, rx, ry, end2, midEnd)
		out.LineTo(cx+rx*math.Cos(midEnd), cy+ry*math.Sin(midEnd))
		out.EllipticalArc(cx, cy, rx, ry, midEnd, end)
		out.EllipticalArc(cx+dx, cy+dy, rx, ry, end, end2)
	case end > math.Pi-a && start < math.Pi-a:
		// The slice crosses the near meridian; one extra offset segment
		// closes the exposed rim.
		out.EllipticalArc(cx+dx, cy+dy, rx, ry, end2, end)
	}

	out.EllipticalArc(cx+dx, cy+dy, rx, ry, end2, start2)
	out.Close()
	return out
}

// sideWall builds the flat quad closing the slice at the given angle.
func (s ArcSlice) sideWall(angle, rx, ry, irx, iry, dx, dy float64) *chart.Path {
	cos, sin := math.Cos(angle), math.Sin(angle)
	p := chart.NewPath()
	p.MoveTo(s.X+rx*cos, s.Y+ry*sin)
	p.LineTo(s.X+rx*cos+dx, s.Y+ry*sin+dy)
	p.LineTo(s.X+irx*cos+dx, s.Y+iry*sin+dy)
	p.LineTo(s.X+irx*cos, s.Y+iry*sin)
	p.Close()
	return p
}

// toZeroPiRange folds an angle into [0, pi], measuring its distance from
// the nearest multiple of 2*pi.
func toZeroPiRange(angle float64) float64 {
	angle = math.Mod(math.Abs(angle), 2*math.Pi)
	if angle > math.Pi {
		angle = 2*math.Pi - angle
	}
	return angle
}
