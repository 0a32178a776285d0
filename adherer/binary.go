package adherer

import (
	"errors"
	"fmt"
	"math"

	"github.com/toazbenj/racing-sembas/classifier"
	"github.com/toazbenj/racing-sembas/geom"
	"github.com/toazbenj/racing-sembas/sample"
)

// binaryState mirrors ConstantAdherer's state shape, with an added
// Bisecting phase once the initial bracket is found.
type binaryState int

const (
	bStateInit binaryState = iota
	bStateSeekingOutOfMode
	bStateSeekingInMode
	bStateBisecting
	bStateDone
	bStateLost
)

// BinarySearchAdherer behaves exactly like ConstantAdherer until the first
// straddle is found, then spends up to maxDepth additional samples
// binary-subdividing the bracketing angular interval to sharpen the
// resulting surface normal.
//
// Rotation sign follows the same convention as ConstantAdherer: increasing
// theta rotates the probe toward the pivot's normal N, which points from
// in-mode toward out-of-mode. See constant.go.
type BinarySearchAdherer struct {
	pivot       sample.Halfspace
	tangent     geom.Vector
	jumpDist    float64
	deltaTheta  float64
	maxRotation float64
	maxDepth    int

	state    binaryState
	theta    float64
	oobCount int
	depth    int

	thetaIn, thetaOut float64
	lastIn, lastOut   geom.Vector
	result            sample.Halfspace
	hasResult         bool
	err               error
}

// NewBinarySearchAdherer builds a BinarySearchAdherer. maxDepth bounds how
// many extra samples are spent sharpening the normal after the initial
// bracket is found; maxDepth=0 behaves exactly like ConstantAdherer.
func NewBinarySearchAdherer(pivot sample.Halfspace, tangent geom.Vector, d, deltaTheta, maxRotation float64, maxDepth int) (*BinarySearchAdherer, error) {
	if d <= 0 {
		return nil, fmt.Errorf("adherer: jump distance must be positive, got %v: %w", d, ErrInvalidConfiguration)
	}
	if deltaTheta <= 0 {
		return nil, fmt.Errorf("adherer: deltaTheta must be positive, got %v: %w", deltaTheta, ErrInvalidConfiguration)
	}
	if maxRotation < 0 {
		return nil, fmt.Errorf("adherer: maxRotation must be non-negative, got %v: %w", maxRotation, ErrInvalidConfiguration)
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("adherer: maxDepth must be non-negative, got %v: %w", maxDepth, ErrInvalidConfiguration)
	}
	return &BinarySearchAdherer{
		pivot:       pivot,
		tangent:     tangent,
		jumpDist:    d,
		deltaTheta:  deltaTheta,
		maxRotation: maxRotation,
		maxDepth:    maxDepth,
	}, nil
}

func (a *BinarySearchAdherer) probeAt(theta float64) geom.Vector {
	s := a.tangent.Scale(a.jumpDist)
	rotated := geom.Rotate(s, a.tangent, a.pivot.N, theta)
	return a.pivot.B.Add(rotated)
}

// Sample performs exactly one classification, advancing the state machine.
func (a *BinarySearchAdherer) Sample(c classifier.Classifier) (Step, error) {
	if a.err != nil || a.state == bStateDone {
		return Step{}, fmt.Errorf("adherer: Sample called after termination")
	}

	theta := a.currentProbeAngle()
	p := a.probeAt(theta)
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
		a.state = bStateLost
		a.err = fmt.Errorf("adherer: %w", ErrOutOfBounds)
		return Step{Sampled: sample.Sample{Point: p, InMode: false}, Done: true}, a.err
	}

	inMode := inModeRaw && !oob
	s := sample.Sample{Point: p, InMode: inMode}

	switch a.state {
	case bStateInit:
		if inMode {
			a.lastIn = p
			a.state = bStateSeekingOutOfMode
			a.theta += a.deltaTheta
		} else {
			a.lastOut = p
			a.state = bStateSeekingInMode
			a.theta -= a.deltaTheta
		}
		return a.afterRotate(s)

	case bStateSeekingOutOfMode:
		if inMode {
			a.lastIn = p
			a.theta += a.deltaTheta
			return a.afterRotate(s)
		}
		a.lastOut = p
		a.thetaIn, a.thetaOut = a.theta-a.deltaTheta, a.theta
		return a.enterBisectingOrCommit(s)

	case bStateSeekingInMode:
		if !inMode {
			a.lastOut = p
			a.theta -= a.deltaTheta
			return a.afterRotate(s)
		}
		a.lastIn = p
		a.thetaIn, a.thetaOut = a.theta, a.theta+a.deltaTheta
		return a.enterBisectingOrCommit(s)

	case bStateBisecting:
		mid := 0.5 * (a.thetaIn + a.thetaOut)
		if inMode {
			a.thetaIn = mid
			a.lastIn = p
		} else {
			a.thetaOut = mid
			a.lastOut = p
		}
		a.depth++
		if a.depth >= a.maxDepth {
			a.commit()
			return Step{Sampled: s, Done: true}, nil
		}
		return Step{Sampled: s, Done: false}, nil
	}

	return Step{}, fmt.Errorf("adherer: unreachable state %d", a.state)
}

// currentProbeAngle returns the angle to classify next: the rotation angle
// while seeking the initial bracket, or the midpoint of the current bracket
// while bisecting.
func (a *BinarySearchAdherer) currentProbeAngle() float64 {
	if a.state == bStateBisecting {
		return 0.5 * (a.thetaIn + a.thetaOut)
	}
	return a.theta
}

func (a *BinarySearchAdherer) enterBisectingOrCommit(s sample.Sample) (Step, error) {
	if a.maxDepth == 0 {
		a.commit()
		return Step{Sampled: s, Done: true}, nil
	}
	a.state = bStateBisecting
	a.depth = 0
	return Step{Sampled: s, Done: false}, nil
}

func (a *BinarySearchAdherer) afterRotate(s sample.Sample) (Step, error) {
	if math.Abs(a.theta) > a.maxRotation {
		a.state = bStateLost
		a.err = fmt.Errorf("adherer: |theta|=%v exceeds max rotation %v: %w", math.Abs(a.theta), a.maxRotation, ErrBoundaryLost)
		return Step{Sampled: s, Done: true}, a.err
	}
	return Step{Sampled: s, Done: false}, nil
}

func (a *BinarySearchAdherer) commit() {
	a.result = sample.New(a.lastIn, a.lastOut.Sub(a.lastIn))
	a.hasResult = true
	a.state = bStateDone
}

// Result returns the halfspace produced by a completed BinarySearchAdherer.
func (a *BinarySearchAdherer) Result() (sample.Halfspace, bool) {
	return a.result, a.hasResult
}
