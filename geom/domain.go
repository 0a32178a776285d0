package geom

import "github.com/cpmech/gosl/chk"

// Domain is an axis-aligned box [lo, hi] in N-space. Construction validates
// lo[i] <= hi[i] for every axis; a domain is therefore always non-degenerate
// in the sense that Contains is well defined.
type Domain struct {
	Lo Vector
	Hi Vector
}

// NewDomain builds a Domain from lo and hi, panicking if they disagree on
// dimension or violate lo[i] <= hi[i] on any axis. This is a construction-time
// InvalidConfiguration check, never raised mid-traversal.
func NewDomain(lo, hi Vector) Domain {
	mustSameDim(lo, hi)
	for i := range lo {
		if lo[i] > hi[i] {
			chk.Panic("geom: domain requires lo[%d]=%v <= hi[%d]=%v", i, lo[i], i, hi[i])
		}
	}
	return Domain{Lo: lo.Clone(), Hi: hi.Clone()}
}

// Unit returns the canonical normalized domain [0,1]^n.
func Unit(n int) Domain {
	lo := make(Vector, n)
	hi := make(Vector, n)
	for i := 0; i < n; i++ {
		hi[i] = 1
	}
	return Domain{Lo: lo, Hi: hi}
}

// Dim returns the dimensionality of the domain.
func (d Domain) Dim() int {
	return len(d.Lo)
}

// Contains reports whether p lies within the domain, inclusive of the
// boundary.
func (d Domain) Contains(p Vector) bool {
	if len(p) != len(d.Lo) {
		return false
	}
	for i := range p {
		if p[i] < d.Lo[i] || p[i] > d.Hi[i] {
			return false
		}
	}
	return true
}

// Extent returns hi[i] - lo[i] for axis i.
func (d Domain) Extent(i int) float64 {
	return d.Hi[i] - d.Lo[i]
}
