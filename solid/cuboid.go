package solid

import (
	"math"

	"github.com/chartgeom/chart"
)

// Cuboid describes an axis-aligned box in model space by its near top-left
// corner and extents. Column and bar series render as cuboids.
type Cuboid struct {
	X, Y, Z float64
	Width   float64 // extent along X
	Height  float64 // extent along Y (stacking axis, screen-down positive)
	Depth   float64 // extent along Z
}

// CuboidParts holds the three candidate-pair winners plus the group-level
// draw order key. Under any one rotation at most one of each pair
// (front/back, top/bottom, left/right) faces the viewer.
type CuboidParts struct {
	Front ProjectedFace
	Top   ProjectedFace
	Side  ProjectedFace

	// GroupZIndex orders whole cuboids against each other.
	GroupZIndex float64
}

// Group z-index weights. X separates columns, Z separates series rows, and
// Y breaks the remaining tie so stacked segments sharing a column still
// draw in stack order. The ratios assume model coordinates stay below the
// next weight step.
const (
	zWeightX = 1e6
	zWeightZ = 1e3
	zWeightY = 1
)

// corners returns the cuboid's 8 vertices. Index layout matches the face
// definitions below: 0-3 on the near plane, 4-7 on the far plane.
func (c Cuboid) corners() [8]chart.Point3 {
	return [8]chart.Point3{
		{X: c.X, Y: c.Y, Z: c.Z},
		{X: c.X + c.Width, Y: c.Y, Z: c.Z},
		{X: c.X + c.Width, Y: c.Y + c.Height, Z: c.Z},
		{X: c.X, Y: c.Y + c.Height, Z: c.Z},
		{X: c.X, Y: c.Y + c.Height, Z: c.Z + c.Depth},
		{X: c.X + c.Width, Y: c.Y + c.Height, Z: c.Z + c.Depth},
		{X: c.X + c.Width, Y: c.Y, Z: c.Z + c.Depth},
		{X: c.X, Y: c.Y, Z: c.Z + c.Depth},
	}
}

// face builds an enabled face from corner indices.
func face(corners [8]chart.Point3, idx [4]int) Face {
	return Face{
		Vertices: []chart.Point3{corners[idx[0]], corners[idx[1]], corners[idx[2]], corners[idx[3]]},
		Enabled:  true,
	}
}

// Faces re-derives the cuboid's visible faces from its current parameters
// under the given rotation. Geometry is always rebuilt whole; there is no
// incremental update between calls.
//
// Each of the three face pairs is wound so that whichever member faces the
// viewer projects with negative signed area; pickFace keeps that one. At
// zero rotation the front face wins its pair and the top/side pairs are
// edge-on (hidden).
func (c Cuboid) Faces(rot chart.Rotation3D, insidePlotArea bool) CuboidParts {
	pts := c.corners()

	front := face(pts, [4]int{3, 2, 1, 0})
	back := face(pts, [4]int{7, 6, 5, 4})
	top := face(pts, [4]int{1, 6, 7, 0})
	bottom := face(pts, [4]int{4, 5, 2, 3})
	right := face(pts, [4]int{1, 2, 5, 6})
	left := face(pts, [4]int{0, 7, 4, 3})

	return CuboidParts{
		Front:       pickFace(front, back, rot, insidePlotArea),
		Top:         pickFace(top, bottom, rot, insidePlotArea),
		Side:        pickFace(right, left, rot, insidePlotArea),
		GroupZIndex: c.groupZIndex(),
	}
}

// groupZIndex ranks cuboids for draw order: columns left to right, series
// rows near to far, and within one column stack, upper segments above lower
// ones. Higher values draw on top.
func (c Cuboid) groupZIndex() float64 {
	return math.Round(zWeightX*c.X + zWeightZ*c.Z - zWeightY*c.Y)
}
