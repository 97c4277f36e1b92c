package solid

import (
	"github.com/chartgeom/chart"
)

// Polyhedron is a variable-length collection of independently toggleable
// faces sharing one group transform. Series that render arbitrary solids
// (funnels, pyramids) update the same polyhedron instance across render
// passes, so the face list grows and shrinks in place.
type Polyhedron struct {
	faces []*Face

	// Transform is applied in screen space to every projected face path.
	Transform chart.Matrix
}

// NewPolyhedron creates an empty polyhedron with an identity transform.
func NewPolyhedron() *Polyhedron {
	return &Polyhedron{Transform: chart.Identity()}
}

// SetFaces reconciles the face list with specs. Faces at indices present in
// both lists are updated in place so callers holding *Face pointers keep
// them across updates; the list then grows or shrinks to match.
func (p *Polyhedron) SetFaces(specs []Face) {
	for i, spec := range specs {
		if i < len(p.faces) {
			*p.faces[i] = spec
		} else {
			f := spec
			p.faces = append(p.faces, &f)
		}
	}
	if len(specs) < len(p.faces) {
		for i := len(specs); i < len(p.faces); i++ {
			p.faces[i] = nil
		}
		p.faces = p.faces[:len(specs)]
	}
}

// FaceCount returns the current number of faces.
func (p *Polyhedron) FaceCount() int { return len(p.faces) }

// Face returns the face at index i. The pointer stays valid across SetFaces
// calls as long as index i still exists.
func (p *Polyhedron) Face(i int) *Face { return p.faces[i] }

// Project recomputes every face from current parameters and applies the
// group transform. Sub-parts are fully rebuilt before any draw ordering is
// derived from them, so the output never mixes stale and fresh geometry.
func (p *Polyhedron) Project(rot chart.Rotation3D, insidePlotArea bool) []ProjectedFace {
	out := make([]ProjectedFace, len(p.faces))
	for i, f := range p.faces {
		pf := f.Project(rot, insidePlotArea)
		if !p.Transform.IsIdentity() {
			pf.Path = pf.Path.Transform(p.Transform)
		}
		out[i] = pf
	}
	return out
}
