package adherer

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/toazbenj/racing-sembas/classifier"
	"github.com/toazbenj/racing-sembas/geom"
)

func runToCompletion(t *testing.T, a Adherer, c classifier.Classifier) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		step, err := a.Sample(c)
		if err != nil {
			t.Fatalf("unexpected adherer failure: %v", err)
		}
		if step.Done {
			return
		}
	}
	t.Fatal("adherer did not complete within iteration budget")
}

func angleBetween(a, b geom.Vector) float64 {
	cos := a.Dot(b) / (a.Norm() * b.Norm())
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

func TestBinarySearchAdhererSharpensNormal(t *testing.T) {
	pivot := flatPivot()
	tangent := geom.Vector{0, 1, 0}
	aConst, err := NewConstantAdherer(pivot, tangent, 0.1, math.Pi/36, math.Pi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	aBin, err := NewBinarySearchAdherer(pivot, tangent, 0.1, math.Pi/36, math.Pi, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := halfspaceOracle(0.0)
	runToCompletion(t, aConst, c)
	runToCompletion(t, aBin, c)

	constResult, ok := aConst.Result()
	if !ok {
		t.Fatal("constant adherer did not produce a result")
	}
	binResult, ok := aBin.Result()
	if !ok {
		t.Fatal("binary adherer did not produce a result")
	}

	want := geom.Vector{1, 0, 0}
	constErrAngle := angleBetween(constResult.N, want)
	binErrAngle := angleBetween(binResult.N, want)

	if binErrAngle > constErrAngle+1e-9 {
		t.Fatalf("binary-search normal (%v rad off) should be at least as accurate as constant (%v rad off)", binErrAngle, constErrAngle)
	}
}

func TestBinarySearchAdhererZeroDepthMatchesConstant(t *testing.T) {
	pivot := flatPivot()
	tangent := geom.Vector{0, 1, 0}
	a, err := NewBinarySearchAdherer(pivot, tangent, 0.1, math.Pi/36, math.Pi, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := halfspaceOracle(0.0)
	runToCompletion(t, a, c)
	hs, ok := a.Result()
	if !ok {
		t.Fatal("expected a result with maxDepth=0")
	}
	chk.Scalar(t, "unit normal", 1e-9, hs.N.Norm(), 1)
}
