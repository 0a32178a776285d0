// Package surface implements binary surface search ("surfacing"): refining
// a coarse boundary pair into a halfspace accurate to within a target error
// d.
package surface

import (
	"errors"
	"fmt"

	"github.com/toazbenj/racing-sembas/classifier"
	"github.com/toazbenj/racing-sembas/geom"
	"github.com/toazbenj/racing-sembas/sample"
)

// ErrMaxSamplesExceeded is returned when the sample budget k is spent
// before the pair converges to within d.
var ErrMaxSamplesExceeded = errors.New("surface: sample budget exceeded")

// ErrOutOfBounds is returned after three consecutive out-of-bounds
// midpoints.
var ErrOutOfBounds = errors.New("surface: persistent out-of-bounds midpoints")

// Search refines pair by repeated bisection until ||t-x|| <= d (success) or
// maxSamples classifications have been spent (ErrMaxSamplesExceeded). The
// returned Halfspace has B set to the most recent in-mode point and N set
// to normalize(x' - t').
//
// Each step classifies the midpoint m = (t+x)/2. If m is in-mode, t is
// replaced by m; if out-of-mode, x is replaced by m. A midpoint reported
// ErrOutOfBounds leaves the corresponding endpoint unchanged but still
// consumes a sample; three consecutive out-of-bounds midpoints fail the
// search with ErrOutOfBounds.
func Search(d float64, pair sample.BoundaryPair, maxSamples int, c classifier.Classifier) (sample.Halfspace, error) {
	t, x := pair.T, pair.X
	consecutiveOOB := 0

	for i := 0; i < maxSamples; i++ {
		if geom.Distance(t, x) <= d {
			return sample.New(t, x.Sub(t)), nil
		}

		m := geom.Midpoint(t, x)
		inMode, err := c.Classify(m)
		if err != nil {
			if errors.Is(err, classifier.ErrOutOfBounds) {
				consecutiveOOB++
				if consecutiveOOB >= 3 {
					return sample.Halfspace{}, fmt.Errorf("surface: %w", ErrOutOfBounds)
				}
				continue
			}
			return sample.Halfspace{}, err
		}
		consecutiveOOB = 0

		if inMode {
			t = m
		} else {
			x = m
		}
	}

	if geom.Distance(t, x) <= d {
		return sample.New(t, x.Sub(t)), nil
	}
	return sample.Halfspace{}, fmt.Errorf("surface: %w after %d samples", ErrMaxSamplesExceeded, maxSamples)
}
