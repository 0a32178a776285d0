// Copyright 2026 The Sembas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the N-dimensional geometry primitives that the
// rest of sembas builds on: points/vectors, axis-aligned domains, and the
// plane rotation used by the adherer to sweep a tangent direction toward or
// away from a halfspace normal.
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Vector is a point or displacement in N-dimensional real space. All
// geometry in sembas uses double precision; N is fixed once an engine is
// constructed and is validated at every boundary that accepts a Vector.
type Vector []float64

// New allocates a zero vector of dimension n.
func New(n int) Vector {
	return make(Vector, n)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// Dim returns the dimensionality of v.
func (v Vector) Dim() int {
	return len(v)
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	mustSameDim(v, w)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	mustSameDim(v, w)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Dot returns the inner product of v and w.
func (v Vector) Dot(w Vector) float64 {
	mustSameDim(v, w)
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. Panics if v is (numerically)
// the zero vector, since there is no well-defined direction to return.
func (v Vector) Normalize() Vector {
	n := v.Norm()
	if n < 1e-14 {
		chk.Panic("geom: cannot normalize a zero-length vector")
	}
	return v.Scale(1.0 / n)
}

// Midpoint returns the point halfway between v and w.
func Midpoint(v, w Vector) Vector {
	mustSameDim(v, w)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = 0.5 * (v[i] + w[i])
	}
	return out
}

// Distance returns the Euclidean distance between v and w.
func Distance(v, w Vector) float64 {
	return v.Sub(w).Norm()
}

func mustSameDim(v, w Vector) {
	if len(v) != len(w) {
		chk.Panic("geom: dimension mismatch: %d vs %d", len(v), len(w))
	}
}
