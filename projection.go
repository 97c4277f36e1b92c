package chart

import "math"

// Rotation3D describes the viewing state a chart applies to 3D geometry:
// the two rotation angles, the scene depth, the perspective strength, and
// the screen-space origin the scene rotates around (usually the plot-area
// center).
type Rotation3D struct {
	// Alpha is the rotation around the horizontal (X) axis, in radians.
	Alpha float64

	// Beta is the rotation around the vertical (Y) axis, in radians.
	Beta float64

	// Depth is the total depth of the 3D scene. The rotation origin sits at
	// Depth/2 so that shapes rotate around the scene center rather than its
	// front plane.
	Depth float64

	// ViewDistance controls perspective strength. Zero or negative disables
	// the perspective divide, giving an orthographic-like projection.
	ViewDistance float64

	// Origin is the screen-space rotation origin.
	Origin Point

	// Inverted swaps the X and Y coordinates of points lying inside the plot
	// area, matching a chart with flipped axes.
	Inverted bool
}

// rotate applies the beta-then-alpha rotation to a point already translated
// relative to the rotation origin.
func (r Rotation3D) rotate(x, y, z float64) Point3 {
	cosA, sinA := math.Cos(r.Alpha), math.Sin(r.Alpha)
	cosB, sinB := math.Cos(r.Beta), math.Sin(r.Beta)
	return Point3{
		X: cosB*x - sinB*z,
		Y: -sinA*sinB*x + cosA*y - cosB*sinA*z,
		Z: cosA*sinB*x + sinA*y + cosA*cosB*z,
	}
}

// Project maps 3D model points to 2D screen points under the given rotation
// state. When insidePlotArea is true and the rotation is marked Inverted,
// the X/Y coordinates are swapped before projecting.
//
// The projection translates each point relative to the rotation origin
// (with the scene depth midpoint as the Z origin), rotates by beta around
// the vertical axis and alpha around the horizontal axis, then applies a
// perspective divide when ViewDistance is positive.
func Project(points []Point3, rot Rotation3D, insidePlotArea bool) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		x, y := p.X, p.Y
		if insidePlotArea && rot.Inverted {
			x, y = y, x
		}
		c := rot.rotate(x-rot.Origin.X, y-rot.Origin.Y, p.Z-rot.Depth/2)

		scale := 1.0
		if rot.ViewDistance > 0 {
			scale = rot.ViewDistance / (c.Z + rot.Depth/2 + rot.ViewDistance)
		}
		out[i] = Point{
			X: c.X*scale + rot.Origin.X,
			Y: c.Y*scale + rot.Origin.Y,
		}
	}
	return out
}

// ProjectDepth returns the rotated Z coordinate of a single model point,
// for hosts that need to order chart geometry against other scene content.
// The shapes in chart/solid carry their own draw-order keys and do not use
// it.
func ProjectDepth(p Point3, rot Rotation3D) float64 {
	c := rot.rotate(p.X-rot.Origin.X, p.Y-rot.Origin.Y, p.Z-rot.Depth/2)
	return c.Z + rot.Depth/2
}
