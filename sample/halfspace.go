package sample

import "github.com/toazbenj/racing-sembas/geom"

// Halfspace is a single face of the reconstructed boundary polyhedron: a
// boundary point B (on, or within the surfacing error d of, the true
// boundary) and a unit outward surface normal N, pointing from in-mode
// toward out-of-mode by convention.
type Halfspace struct {
	B geom.Vector // boundary point; the most-recent in-mode point of the refinement that produced it
	N geom.Vector // unit outward normal
}

// New builds a Halfspace from a boundary point and a raw (not necessarily
// unit) direction, normalizing the direction.
func New(b, direction geom.Vector) Halfspace {
	return Halfspace{B: b, N: direction.Normalize()}
}

// PointNode wraps a Halfspace with identity for the explorer's
// tree-structured traversal: a monotonically increasing id and the id of
// the node it was discovered from. ParentID is NoParent for the root node.
// PointNodes are never mutated after creation.
type PointNode struct {
	ID        int
	ParentID  int
	Halfspace Halfspace
}

// NoParent marks a PointNode with no parent (the root of the traversal).
const NoParent = -1
