// Package adherer implements the rotational-search neighbor finder: given a
// pivot halfspace and a tangent direction, it finds the neighboring
// boundary halfspace one jump distance away along the surface.
package adherer

import (
	"errors"

	"github.com/toazbenj/racing-sembas/classifier"
	"github.com/toazbenj/racing-sembas/geom"
	"github.com/toazbenj/racing-sembas/sample"
)

// Sentinel errors an Adherer can fail with.
var (
	// ErrBoundaryLost indicates the adherer rotated through its
	// configured max rotation without bracketing the surface.
	ErrBoundaryLost = errors.New("adherer: boundary lost")

	// ErrOutOfBounds indicates two consecutive out-of-bounds samples.
	ErrOutOfBounds = errors.New("adherer: persistent out-of-bounds samples")

	// ErrInvalidConfiguration indicates a non-positive jump distance or
	// step angle, a negative max rotation, or a negative bisection depth.
	// The pivot and tangent are not checked.
	ErrInvalidConfiguration = errors.New("adherer: invalid configuration")
)

// Step is the outcome of a single Adherer.Sample call.
type Step struct {
	// Sampled is the point that was just classified.
	Sampled sample.Sample
	// Done reports whether the adherer has finished (successfully or
	// not); callers should stop calling Sample once Done is true and
	// inspect Result/error instead.
	Done bool
}

// Adherer is a stateful rotational search for one neighboring boundary
// halfspace. A fresh instance is built per (pivot, tangent) by an
// AdhererFactory; instances are not reused across neighbors.
type Adherer interface {
	// Sample performs exactly one classification against c, advancing
	// the adherer's internal state machine, and returns the resulting
	// Step plus an error if the adherer terminated unsuccessfully
	// (ErrBoundaryLost or ErrOutOfBounds). Once Sample returns an error
	// or a Step with Done true, further calls are not valid.
	Sample(c classifier.Classifier) (Step, error)

	// Result returns the halfspace produced by a successfully completed
	// adherer, or false if the adherer has not yet completed
	// successfully.
	Result() (sample.Halfspace, bool)
}

// Factory builds a fresh Adherer for a given pivot halfspace and tangent
// direction. Isolating construction behind a factory lets the mesh explorer
// stay agnostic to which Adherer variant (ConstantAdherer,
// BinarySearchAdherer) it is driving.
type Factory interface {
	Build(pivot sample.Halfspace, tangent geom.Vector) Adherer
}
