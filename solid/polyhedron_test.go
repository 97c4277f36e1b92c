package solid

import (
	"testing"

	"github.com/chartgeom/chart"
)

func quadFace(z float64) Face {
	return Face{
		Enabled: true,
		Vertices: []chart.Point3{
			{X: 0, Y: 0, Z: z}, {X: 0, Y: 10, Z: z}, {X: 10, Y: 10, Z: z}, {X: 10, Y: 0, Z: z},
		},
	}
}

func TestPolyhedronGrowShrink(t *testing.T) {
	p := NewPolyhedron()

	p.SetFaces([]Face{quadFace(0), quadFace(10)})
	if p.FaceCount() != 2 {
		t.Fatalf("FaceCount = %d, want 2", p.FaceCount())
	}

	// Growing keeps existing face objects where indices align.
	first := p.Face(0)
	p.SetFaces([]Face{quadFace(0), quadFace(10), quadFace(20)})
	if p.FaceCount() != 3 {
		t.Fatalf("FaceCount after grow = %d, want 3", p.FaceCount())
	}
	if p.Face(0) != first {
		t.Error("grow replaced the face object at index 0 instead of reusing it")
	}

	// Shrinking drops trailing faces only.
	p.SetFaces([]Face{quadFace(5)})
	if p.FaceCount() != 1 {
		t.Fatalf("FaceCount after shrink = %d, want 1", p.FaceCount())
	}
	if p.Face(0) != first {
		t.Error("shrink replaced the surviving face object")
	}
	if p.Face(0).Vertices[0].Z != 5 {
		t.Errorf("surviving face not updated in place: z = %v", p.Face(0).Vertices[0].Z)
	}
}

func TestPolyhedronProjectRespectsEnabled(t *testing.T) {
	p := NewPolyhedron()
	visible := quadFace(0)
	disabled := quadFace(0)
	disabled.Enabled = false
	p.SetFaces([]Face{visible, disabled})

	out := p.Project(chart.Rotation3D{}, false)
	if len(out) != 2 {
		t.Fatalf("Project returned %d faces, want 2", len(out))
	}
	if !out[0].Visible {
		t.Error("enabled front-facing face should be visible")
	}
	if out[1].Visible {
		t.Error("disabled face should never be visible")
	}
}

func TestPolyhedronGroupTransform(t *testing.T) {
	p := NewPolyhedron()
	p.SetFaces([]Face{quadFace(0)})
	p.Transform = chart.Translate(100, 50)

	out := p.Project(chart.Rotation3D{}, false)
	got := out[0].Path.Points()[0]
	if got != chart.Pt(100, 50) {
		t.Errorf("transformed first point = %v, want (100,50)", got)
	}
}

func TestFaceProjectDegenerate(t *testing.T) {
	tests := []struct {
		name string
		f    Face
	}{
		{"no vertices", Face{Enabled: true}},
		{"two vertices", Face{Enabled: true, Vertices: []chart.Point3{{X: 0}, {X: 1}}}},
		{"coincident vertices", Face{Enabled: true, Vertices: []chart.Point3{{X: 2}, {X: 2}, {X: 2}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := tt.f.Project(chart.Rotation3D{Alpha: 0.3, Beta: 0.3}, false)
			if pf.Visible {
				t.Error("degenerate face reported visible")
			}
			if pf.Area != 0 {
				t.Errorf("degenerate face area = %v, want 0", pf.Area)
			}
		})
	}
}

func TestFaceCullingFlipsWithWinding(t *testing.T) {
	f := quadFace(0)
	front := f.Project(chart.Rotation3D{}, false)
	if !front.Visible {
		t.Fatal("counter-clockwise face should face the viewer")
	}

	// Reversing vertex order turns it into a back face.
	rev := Face{Enabled: true, Vertices: []chart.Point3{
		f.Vertices[3], f.Vertices[2], f.Vertices[1], f.Vertices[0],
	}}
	back := rev.Project(chart.Rotation3D{}, false)
	if back.Visible {
		t.Error("reversed winding should be culled")
	}
	if back.Area <= 0 {
		t.Errorf("reversed face area = %v, want positive", back.Area)
	}
}
