package adherer

import (
	"errors"
	"math"
	"testing"

	"github.com/toazbenj/racing-sembas/classifier"
	"github.com/toazbenj/racing-sembas/geom"
	"github.com/toazbenj/racing-sembas/sample"
)

// halfspaceOracle classifies by a plane through the origin along axis 0:
// in-mode iff p[0] < threshold.
func halfspaceOracle(threshold float64) classifier.Func {
	return func(p geom.Vector) (bool, error) {
		return p[0] < threshold, nil
	}
}

func flatPivot() sample.Halfspace {
	return sample.Halfspace{B: geom.Vector{0, 0, 0}, N: geom.Vector{1, 0, 0}}
}

func TestConstantAdhererBrackets(t *testing.T) {
	pivot := flatPivot()
	tangent := geom.Vector{0, 1, 0}
	a, err := NewConstantAdherer(pivot, tangent, 0.1, math.Pi/36, math.Pi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := halfspaceOracle(0.0)
	var last Step
	for i := 0; i < 1000; i++ {
		step, err := a.Sample(c)
		if err != nil {
			t.Fatalf("unexpected adherer failure: %v", err)
		}
		last = step
		if step.Done {
			break
		}
	}
	if !last.Done {
		t.Fatal("adherer did not bracket within iteration budget")
	}
	hs, ok := a.Result()
	if !ok {
		t.Fatal("expected a result after bracketing")
	}
	if math.Abs(hs.N.Norm()-1) > 1e-9 {
		t.Fatalf("normal not unit length: %v", hs.N.Norm())
	}
}

func TestConstantAdhererMaxRotationZeroFailsImmediately(t *testing.T) {
	pivot := flatPivot()
	tangent := geom.Vector{0, 1, 0}
	a, err := NewConstantAdherer(pivot, tangent, 0.1, math.Pi/36, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := halfspaceOracle(0.0)
	_, err = a.Sample(c)
	if !errors.Is(err, ErrBoundaryLost) {
		t.Fatalf("expected ErrBoundaryLost, got %v", err)
	}
}

// TestConstantAdhererAllInModeFailsBoundaryLost checks that a classifier
// returning in-mode for every point takes floor(pi/deltaTheta)+1 samples
// (one at each angle from 0 through the max rotation inclusive) and fails
// with ErrBoundaryLost on the last of them.
func TestConstantAdhererAllInModeFailsBoundaryLost(t *testing.T) {
	pivot := flatPivot()
	tangent := geom.Vector{0, 1, 0}
	deltaTheta := math.Pi / 36
	a, err := NewConstantAdherer(pivot, tangent, 0.1, deltaTheta, math.Pi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	always := classifier.Func(func(p geom.Vector) (bool, error) { return true, nil })

	samples := 0
	var lastErr error
	for i := 0; i < 1000; i++ {
		step, err := a.Sample(always)
		samples++
		if err != nil {
			lastErr = err
			break
		}
		if step.Done {
			t.Fatal("adherer should not bracket when classifier never reports out-of-mode")
		}
	}
	if !errors.Is(lastErr, ErrBoundaryLost) {
		t.Fatalf("expected ErrBoundaryLost, got %v", lastErr)
	}
	wantSamples := int(math.Floor(math.Pi/deltaTheta)) + 1
	if samples != wantSamples {
		t.Fatalf("expected %d samples before BoundaryLost, got %d", wantSamples, samples)
	}
}

func TestConstantAdhererPersistentOutOfBounds(t *testing.T) {
	pivot := flatPivot()
	tangent := geom.Vector{0, 1, 0}
	a, err := NewConstantAdherer(pivot, tangent, 0.1, math.Pi/36, math.Pi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	oob := classifier.Func(func(p geom.Vector) (bool, error) { return false, classifier.ErrOutOfBounds })

	if _, err := a.Sample(oob); err != nil {
		t.Fatalf("first OOB should not fail the adherer, got %v", err)
	}
	_, err = a.Sample(oob)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("second consecutive OOB should fail with ErrOutOfBounds, got %v", err)
	}
}

func TestConstantAdhererInvalidConfiguration(t *testing.T) {
	pivot := flatPivot()
	tangent := geom.Vector{0, 1, 0}
	if _, err := NewConstantAdherer(pivot, tangent, 0.1, -1, math.Pi); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for non-positive deltaTheta, got %v", err)
	}
	if _, err := NewConstantAdherer(pivot, tangent, -0.1, 0.1, math.Pi); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for non-positive jump distance, got %v", err)
	}
}
