// Package sample defines the geometric data that flows between the
// classifier, surfacing, adherer, and mesh explorer: tagged samples,
// boundary pairs, oriented halfspaces, and the explorer's PointNode.
package sample

import "github.com/toazbenj/racing-sembas/geom"

// Sample is a point tagged with the classification result observed for it.
// It is constructed by classifying a point and is otherwise immutable.
type Sample struct {
	Point  geom.Vector
	InMode bool
}

// InModeSample tags p as an in-mode sample.
func InModeSample(p geom.Vector) Sample {
	return Sample{Point: p, InMode: true}
}

// OutOfModeSample tags p as an out-of-mode sample.
func OutOfModeSample(p geom.Vector) Sample {
	return Sample{Point: p, InMode: false}
}

// BoundaryPair is an ordered (t, x) pair: t an in-mode point, x an
// out-of-mode point. Both must lie within the domain under study; the
// caller that constructs one is responsible for having classified t as
// in-mode and x as out-of-mode.
type BoundaryPair struct {
	T geom.Vector // in-mode point
	X geom.Vector // out-of-mode point
}

// Width returns the Euclidean distance between the pair's two points.
func (p BoundaryPair) Width() float64 {
	return geom.Distance(p.T, p.X)
}
