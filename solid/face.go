package solid

import (
	"github.com/chartgeom/chart"
)

// Face is an ordered list of 3D vertices plus an enabled flag. Vertices are
// expected in counter-clockwise order as seen from outside the solid; the
// projected winding then tells front faces from back faces.
type Face struct {
	Vertices []chart.Point3
	Enabled  bool
}

// ProjectedFace is the 2D result of projecting one face.
type ProjectedFace struct {
	// Path is the closed outline of the projected face.
	Path *chart.Path

	// Area is the signed area of the projected outline. Negative means the
	// face is wound toward the viewer under this package's convention.
	Area float64

	// Visible reports whether the face should be drawn: it must be enabled
	// and facing the viewer. Zero-area (degenerate) faces are not visible.
	Visible bool
}

// Project maps the face through the rotation state and decides visibility.
// The winding of the projected vertices is the whole culling test; no depth
// buffer is involved.
func (f Face) Project(rot chart.Rotation3D, insidePlotArea bool) ProjectedFace {
	pts := chart.Project(f.Vertices, rot, insidePlotArea)
	area := chart.SignedArea(pts)
	path := chart.NewPath()
	path.Polygon(pts)
	return ProjectedFace{
		Path:    path,
		Area:    area,
		Visible: f.Enabled && area < 0,
	}
}

// pickFace projects both faces of a front/back style pair and returns the
// one facing the viewer. When neither qualifies (edge-on under the current
// rotation), an invisible zero face is returned.
func pickFace(a, b Face, rot chart.Rotation3D, insidePlotArea bool) ProjectedFace {
	pa := a.Project(rot, insidePlotArea)
	if pa.Visible {
		return pa
	}
	pb := b.Project(rot, insidePlotArea)
	if pb.Visible {
		return pb
	}
	return ProjectedFace{Path: chart.NewPath()}
}
