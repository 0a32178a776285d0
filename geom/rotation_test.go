package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// TestRotationInvariance checks that rotating (1,0) by +pi/2 around the
// (1,0)/(0,1) plane yields (0,1) within 1e-12.
func TestRotationInvariance(t *testing.T) {
	u1 := Vector{1, 0}
	u2 := Vector{0, 1}
	v := Vector{1, 0}

	got := Rotate(v, u1, u2, math.Pi/2)
	chk.Vector(t, "rotated", 1e-12, got, Vector{0, 1})
}

func TestRotationIdentityAtZero(t *testing.T) {
	u1 := Vector{1, 0, 0}
	u2 := Vector{0, 1, 0}
	v := Vector{0.3, 0.7, 0.1}

	got := Rotate(v, u1, u2, 0)
	chk.Vector(t, "identity", 1e-14, got, v)
}

func TestRotationPreservesNorm(t *testing.T) {
	u1 := Vector{1, 0, 0}
	u2 := Vector{0, 1, 0}
	v := Vector{0.3, 0.7, 0.1}

	for _, theta := range []float64{0.1, 0.5, 1.2, 2.9, -1.7} {
		got := Rotate(v, u1, u2, theta)
		chk.Scalar(t, "norm preserved", 1e-12, got.Norm(), v.Norm())
	}
}

// TestRotationRoundTrip: rotating by theta then -theta returns the original
// vector within 1e-12.
func TestRotationRoundTrip(t *testing.T) {
	u1 := Vector{1, 0, 0}
	u2 := Vector{0, 1, 0}
	v := Vector{0.3, 0.7, 0.1}

	rotated := Rotate(v, u1, u2, 0.83)
	back := Rotate(rotated, u1, u2, -0.83)
	chk.Vector(t, "round trip", 1e-12, back, v)
}
