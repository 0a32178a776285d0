package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestTangentBasisOrthonormal(t *testing.T) {
	n := Vector{0, 0, 1}
	basis := TangentBasis(n)
	if len(basis) != 2 {
		t.Fatalf("expected 2 tangent vectors in 3D, got %d", len(basis))
	}
	for i, e := range basis {
		chk.Scalar(t, "unit length", 1e-12, e.Norm(), 1)
		chk.Scalar(t, "orthogonal to n", 1e-12, e.Dot(n.Normalize()), 0)
		for j, f := range basis {
			if i == j {
				continue
			}
			chk.Scalar(t, "orthogonal to sibling", 1e-12, e.Dot(f), 0)
		}
	}
}

func TestTangentBasisSkipsCollinearAxis(t *testing.T) {
	// n aligned with the standard x axis: Gram-Schmidt must skip x and
	// derive tangents from y, z instead.
	n := Vector{1, 0, 0}
	basis := TangentBasis(n)
	if len(basis) != 2 {
		t.Fatalf("expected 2 tangent vectors, got %d", len(basis))
	}
	for _, e := range basis {
		if math.Abs(e[0]) > 1e-9 {
			t.Fatalf("tangent vector %v should have no x component", e)
		}
	}
}

func TestTangentBasisDeterministic(t *testing.T) {
	n := Vector{0.2, 0.4, 0.5, 0.75}
	a := TangentBasis(n)
	b := TangentBasis(n)
	if len(a) != len(b) {
		t.Fatalf("basis length differs across calls: %d vs %d", len(a), len(b))
	}
	for i := range a {
		chk.Vector(t, "deterministic basis vector", 1e-15, a[i], b[i])
	}
}

func TestCardinalTangents(t *testing.T) {
	n := Vector{0, 0, 1}
	basis := TangentBasis(n)
	cardinals := CardinalTangents(basis)
	if len(cardinals) != 2*len(basis) {
		t.Fatalf("expected %d cardinal tangents, got %d", 2*len(basis), len(cardinals))
	}
	for i, e := range basis {
		chk.Vector(t, "positive cardinal", 1e-15, cardinals[2*i], e)
		chk.Vector(t, "negative cardinal", 1e-15, cardinals[2*i+1], e.Scale(-1))
	}
}
