// Package search finds an initial boundary pair by sampling a domain until
// both an in-mode and an out-of-mode point have been observed.
// FindInitialBoundaryPair is a Monte-Carlo implementation of that contract.
package search

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/rnd"
	"github.com/toazbenj/racing-sembas/classifier"
	"github.com/toazbenj/racing-sembas/geom"
	"github.com/toazbenj/racing-sembas/sample"
)

// ErrMaxSamplesExceeded is returned when maxSamples classifications are
// spent without observing both an in-mode and an out-of-mode point.
var ErrMaxSamplesExceeded = errors.New("search: sample budget exceeded")

// FindInitialBoundaryPair draws uniform random points from domain, classifying
// each, until one in-mode and one out-of-mode point have been observed. It
// fails with ErrMaxSamplesExceeded once maxSamples classifications have been
// spent. An ErrOutOfBounds from the classifier is fatal here: the domain
// passed to a global search is the same domain passed to the classifier, so
// it indicates a misconfigured domain rather than a transient condition.
func FindInitialBoundaryPair(c classifier.Classifier, domain geom.Domain, maxSamples int) (sample.BoundaryPair, error) {
	var t, x geom.Vector
	haveIn, haveOut := false, false

	for i := 0; i < maxSamples; i++ {
		p := uniformPoint(domain)
		inMode, err := c.Classify(p)
		if err != nil {
			if errors.Is(err, classifier.ErrOutOfBounds) {
				return sample.BoundaryPair{}, fmt.Errorf("search: classifier rejected in-domain sample %v: %w", p, err)
			}
			return sample.BoundaryPair{}, err
		}

		if inMode && !haveIn {
			t = p
			haveIn = true
		} else if !inMode && !haveOut {
			x = p
			haveOut = true
		}

		if haveIn && haveOut {
			return sample.BoundaryPair{T: t, X: x}, nil
		}
	}

	return sample.BoundaryPair{}, fmt.Errorf("search: %w after %d samples", ErrMaxSamplesExceeded, maxSamples)
}

// uniformPoint draws a point uniformly at random from domain, one axis at
// a time.
func uniformPoint(domain geom.Domain) geom.Vector {
	p := geom.New(domain.Dim())
	for i := 0; i < domain.Dim(); i++ {
		p[i] = rnd.Float64(domain.Lo[i], domain.Hi[i])
	}
	return p
}
