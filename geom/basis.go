package geom

import "math"

// collinearEps bounds how close a standard axis may project onto n before
// Gram-Schmidt skips it as degenerate.
const collinearEps = 1e-9

// Basis is an orthonormal frame of the tangent hyperplane at a halfspace
// normal n: N-1 unit vectors, each orthogonal to n and to every other basis
// vector.
type Basis []Vector

// TangentBasis derives {e_1,...,e_{N-1}} from n by a deterministic
// Gram-Schmidt process seeded from the standard basis vectors in index
// order, skipping any standard axis whose projection onto n has magnitude
// greater than 1-collinearEps. Because the seed order is fixed and the skip
// rule is deterministic, the same n always yields the same Basis.
func TangentBasis(n Vector) Basis {
	dim := n.Dim()
	unitN := n.Normalize()

	basis := make(Basis, 0, dim-1)
	for axis := 0; axis < dim && len(basis) < dim-1; axis++ {
		e := make(Vector, dim)
		e[axis] = 1

		proj := e.Dot(unitN)
		if math.Abs(proj) > 1-collinearEps {
			continue // standard axis is (near) collinear with n; skip it
		}

		// subtract the component along n
		cand := e.Sub(unitN.Scale(proj))

		// subtract components along every basis vector already accepted
		for _, b := range basis {
			cand = cand.Sub(b.Scale(cand.Dot(b)))
		}

		norm := cand.Norm()
		if norm < 1e-9 {
			continue // degenerate after orthogonalization against prior basis vectors
		}
		basis = append(basis, cand.Scale(1/norm))
	}
	return basis
}

// CardinalTangents returns {+e_i, -e_i} for every vector in the basis, the
// seed directions the mesh explorer enqueues around a newly accepted node.
func CardinalTangents(b Basis) []Vector {
	out := make([]Vector, 0, 2*len(b))
	for _, e := range b {
		out = append(out, e, e.Scale(-1))
	}
	return out
}
