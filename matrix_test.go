package chart

import (
	"math"
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(3, 4), Pt(13, -1)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"translate then scale", Translate(1, 1).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if got.Distance(tt.want) > 1e-12 {
				t.Errorf("%+v.TransformPoint(%v) = %v, want %v", tt.m, tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	matrices := []Matrix{
		Identity(),
		Translate(5, 10),
		Scale(2, 3),
		Rotate(math.Pi / 3),
		Scale(2, 2).Multiply(Translate(10, 20)).Multiply(Rotate(0.7)),
	}
	p := Pt(7, -3)
	for _, m := range matrices {
		back := m.Invert().TransformPoint(m.TransformPoint(p))
		if back.Distance(p) > 1e-9 {
			t.Errorf("Matrix%+v: invert round trip moved %v to %v", m, p, back)
		}
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	// Non-invertible matrices fall back to identity.
	m := Scale(0, 0)
	if got := m.Invert(); !got.IsIdentity() {
		t.Errorf("Scale(0,0).Invert() = %+v, want identity", got)
	}
}
