package adherer

import (
	"errors"
	"fmt"
	"math"

	"github.com/toazbenj/racing-sembas/classifier"
	"github.com/toazbenj/racing-sembas/geom"
	"github.com/toazbenj/racing-sembas/sample"
)

// constantState names the phases of ConstantAdherer's state machine:
// Init -> SeekingOutOfMode or SeekingInMode -> Done/Lost. The bracket is
// completed by the same sample that finds the opposite class.
type constantState int

const (
	stateInit constantState = iota
	stateSeekingOutOfMode
	stateSeekingInMode
	stateDone
	stateLost
)

// ConstantAdherer rotates a tangent direction by a fixed step Δθ until it
// brackets the surface: an in-mode sample and an out-of-mode sample exactly
// one Δθ apart.
//
// Rotation sign: increasing θ rotates the probe toward the pivot's normal N
// (geom.Rotate's plane is spanned by (tangent, N), and N by convention
// points from in-mode toward out-of-mode — see sample.Halfspace). So
// finding in-mode at θ=0 increases θ to search for out-of-mode, and finding
// out-of-mode at θ=0 decreases θ to search for in-mode.
type ConstantAdherer struct {
	pivot       sample.Halfspace
	tangent     geom.Vector
	jumpDist    float64
	deltaTheta  float64
	maxRotation float64

	state    constantState
	theta    float64
	oobCount int

	lastIn, lastOut geom.Vector
	result          sample.Halfspace
	hasResult       bool
	err             error
}

// NewConstantAdherer builds a ConstantAdherer probing from pivot along
// tangent at jump distance d, stepping by deltaTheta radians up to
// maxRotation radians before giving up with ErrBoundaryLost. d and
// deltaTheta must be positive and maxRotation non-negative; this is
// validated at construction (ErrInvalidConfiguration), never mid-search.
func NewConstantAdherer(pivot sample.Halfspace, tangent geom.Vector, d, deltaTheta, maxRotation float64) (*ConstantAdherer, error) {
	if d <= 0 {
		return nil, fmt.Errorf("adherer: jump distance must be positive, got %v: %w", d, ErrInvalidConfiguration)
	}
	if deltaTheta <= 0 {
		return nil, fmt.Errorf("adherer: deltaTheta must be positive, got %v: %w", deltaTheta, ErrInvalidConfiguration)
	}
	if maxRotation < 0 {
		return nil, fmt.Errorf("adherer: maxRotation must be non-negative, got %v: %w", maxRotation, ErrInvalidConfiguration)
	}
	return &ConstantAdherer{
		pivot:       pivot,
		tangent:     tangent,
		jumpDist:    d,
		deltaTheta:  deltaTheta,
		maxRotation: maxRotation,
	}, nil
}

// probe returns the candidate point for the current rotation angle: the
// displacement probe s = d*tangent, rotated within the plane spanned by
// (tangent, pivot normal) by the current angle, added to the pivot's
// boundary point.
func (a *ConstantAdherer) probe() geom.Vector {
	s := a.tangent.Scale(a.jumpDist)
	rotated := geom.Rotate(s, a.tangent, a.pivot.N, a.theta)
	return a.pivot.B.Add(rotated)
}

// Sample performs exactly one classification, advancing the state machine.
func (a *ConstantAdherer) Sample(c classifier.Classifier) (Step, error) {
	if a.err != nil || a.state == stateDone {
		return Step{}, fmt.Errorf("adherer: Sample called after termination")
	}

	p := a.probe()
	inModeRaw, classifyErr := c.Classify(p)

	oob := false
	if classifyErr != nil {
		if errors.Is(classifyErr, classifier.ErrOutOfBounds) {
			oob = true
			a.oobCount++
		} else {
			a.err = classifyErr
			return Step{}, classifyErr
		}
	} else {
		a.oobCount = 0
	}

	if oob && a.oobCount >= 2 {
		a.state = stateLost
		a.err = fmt.Errorf("adherer: %w", ErrOutOfBounds)
		return Step{Sampled: sample.Sample{Point: p, InMode: false}, Done: true}, a.err
	}

	// OOB counts for rotation purposes as out-of-mode.
	inMode := inModeRaw && !oob
	s := sample.Sample{Point: p, InMode: inMode}

	switch a.state {
	case stateInit:
		if inMode {
			a.lastIn = p
			a.state = stateSeekingOutOfMode
			a.theta += a.deltaTheta
		} else {
			a.lastOut = p
			a.state = stateSeekingInMode
			a.theta -= a.deltaTheta
		}
		return a.afterRotate(s)

	case stateSeekingOutOfMode:
		if inMode {
			a.lastIn = p
			a.theta += a.deltaTheta
			return a.afterRotate(s)
		}
		a.lastOut = p
		a.commit()
		return Step{Sampled: s, Done: true}, nil

	case stateSeekingInMode:
		if !inMode {
			a.lastOut = p
			a.theta -= a.deltaTheta
			return a.afterRotate(s)
		}
		a.lastIn = p
		a.commit()
		return Step{Sampled: s, Done: true}, nil
	}

	return Step{}, fmt.Errorf("adherer: unreachable state %d", a.state)
}

// afterRotate checks the max-rotation bound after a rotation step, failing
// with ErrBoundaryLost if exceeded.
func (a *ConstantAdherer) afterRotate(s sample.Sample) (Step, error) {
	if math.Abs(a.theta) > a.maxRotation {
		a.state = stateLost
		a.err = fmt.Errorf("adherer: |theta|=%v exceeds max rotation %v: %w", math.Abs(a.theta), a.maxRotation, ErrBoundaryLost)
		return Step{Sampled: s, Done: true}, a.err
	}
	return Step{Sampled: s, Done: false}, nil
}

func (a *ConstantAdherer) commit() {
	a.result = sample.New(a.lastIn, a.lastOut.Sub(a.lastIn))
	a.hasResult = true
	a.state = stateDone
}

// Result returns the halfspace produced by a completed ConstantAdherer.
func (a *ConstantAdherer) Result() (sample.Halfspace, bool) {
	return a.result, a.hasResult
}
