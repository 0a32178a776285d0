package adherer

import (
	"fmt"

	"github.com/toazbenj/racing-sembas/geom"
	"github.com/toazbenj/racing-sembas/sample"
)

// ConstantAdhererFactory builds ConstantAdherer instances sharing a common
// jump distance, step angle, and rotation bound: parameter choice is fixed
// once, at factory construction, and isolated from the mesh explorer that
// calls Build per neighbor.
type ConstantAdhererFactory struct {
	JumpDistance float64
	DeltaTheta   float64
	MaxRotation  float64
}

// NewConstantAdhererFactory validates its parameters once, at construction.
func NewConstantAdhererFactory(jumpDistance, deltaTheta, maxRotation float64) (*ConstantAdhererFactory, error) {
	if jumpDistance <= 0 {
		return nil, fmt.Errorf("adherer: jump distance must be positive: %w", ErrInvalidConfiguration)
	}
	if deltaTheta <= 0 {
		return nil, fmt.Errorf("adherer: deltaTheta must be positive: %w", ErrInvalidConfiguration)
	}
	if maxRotation < 0 {
		return nil, fmt.Errorf("adherer: maxRotation must be non-negative: %w", ErrInvalidConfiguration)
	}
	return &ConstantAdhererFactory{JumpDistance: jumpDistance, DeltaTheta: deltaTheta, MaxRotation: maxRotation}, nil
}

// Build constructs a fresh ConstantAdherer for pivot and tangent.
func (f *ConstantAdhererFactory) Build(pivot sample.Halfspace, tangent geom.Vector) Adherer {
	a, err := NewConstantAdherer(pivot, tangent, f.JumpDistance, f.DeltaTheta, f.MaxRotation)
	if err != nil {
		// NewConstantAdherer checks only the factory's own parameters,
		// which the constructor validated; reaching here means the
		// exported fields were set to invalid values afterwards.
		panic(err)
	}
	return a
}

// BinarySearchAdhererFactory builds BinarySearchAdherer instances sharing a
// common jump distance, step angle, rotation bound, and bisection depth.
type BinarySearchAdhererFactory struct {
	JumpDistance float64
	DeltaTheta   float64
	MaxRotation  float64
	MaxDepth     int
}

// NewBinarySearchAdhererFactory validates its parameters once, at
// construction.
func NewBinarySearchAdhererFactory(jumpDistance, deltaTheta, maxRotation float64, maxDepth int) (*BinarySearchAdhererFactory, error) {
	if jumpDistance <= 0 {
		return nil, fmt.Errorf("adherer: jump distance must be positive: %w", ErrInvalidConfiguration)
	}
	if deltaTheta <= 0 {
		return nil, fmt.Errorf("adherer: deltaTheta must be positive: %w", ErrInvalidConfiguration)
	}
	if maxRotation < 0 {
		return nil, fmt.Errorf("adherer: maxRotation must be non-negative: %w", ErrInvalidConfiguration)
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("adherer: maxDepth must be non-negative: %w", ErrInvalidConfiguration)
	}
	return &BinarySearchAdhererFactory{JumpDistance: jumpDistance, DeltaTheta: deltaTheta, MaxRotation: maxRotation, MaxDepth: maxDepth}, nil
}

// Build constructs a fresh BinarySearchAdherer for pivot and tangent.
func (f *BinarySearchAdhererFactory) Build(pivot sample.Halfspace, tangent geom.Vector) Adherer {
	a, err := NewBinarySearchAdherer(pivot, tangent, f.JumpDistance, f.DeltaTheta, f.MaxRotation, f.MaxDepth)
	if err != nil {
		panic(err)
	}
	return a
}
