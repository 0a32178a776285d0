// Package explorer implements the mesh explorer: it schedules exploration
// of a boundary surface through cardinal tangent directions, drives an
// Adherer to find each neighbor, and prunes candidates that fall within a
// pruning margin of an already-accepted boundary point.
package explorer

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/toazbenj/racing-sembas/adherer"
	"github.com/toazbenj/racing-sembas/classifier"
	"github.com/toazbenj/racing-sembas/geom"
	"github.com/toazbenj/racing-sembas/sample"
)

// Outcome names the result of a single Step call.
type Outcome int

const (
	// Complete reports that the pending-direction queue is empty; the
	// explorer has covered the reachable connected component of the
	// boundary.
	Complete Outcome = iota
	// Sample reports that a classification was taken but the current
	// neighbor search has not yet finished.
	Sample
	// BoundaryFound reports that the current adherer completed and a
	// new node was committed; StepResult.NodeID names it.
	BoundaryFound
	// NodeExhausted reports that the current neighbor attempt ended
	// without producing a new node (the adherer failed with
	// BoundaryLost or persistent OutOfBounds); the explorer has
	// advanced past it.
	NodeExhausted
)

// StepResult is the outcome of a single Step call, plus any data that
// outcome carries.
type StepResult struct {
	Outcome Outcome
	Sample  sample.Sample // valid when Outcome == Sample
	NodeID  int           // valid when Outcome == BoundaryFound
}

// Stats reports the explorer's telemetry counters, the only user-visible
// reporting beyond each Step's own Result.
type Stats struct {
	Accepted     int
	BoundaryLost int
	OutOfBounds  int
}

type queueItem struct {
	parentID int
	tangent  geom.Vector
}

// MeshExplorer drives a breadth-first traversal of a boundary surface. It
// exclusively owns the boundary set, the pending-direction queue, and the
// spatial index used for pruning; no other component aliases them.
type MeshExplorer struct {
	jumpDistance float64
	margin       float64
	factory      adherer.Factory

	boundary []sample.PointNode
	index    *spatialIndex

	queue     []queueItem
	queueHead int

	current         adherer.Adherer
	currentParentID int

	stats Stats

	// Verbose gates diagnostic tracing through gosl/io. Tracing never
	// affects control flow.
	Verbose bool
}

// New constructs a MeshExplorer rooted at root, with jump distance d and
// pruning margin m (0 < m < d, validated here as a construction-time
// configuration error). The root's cardinal tangent directions are seeded
// into the queue immediately.
func New(d float64, root sample.Halfspace, margin float64, factory adherer.Factory) (*MeshExplorer, error) {
	if d <= 0 {
		return nil, fmt.Errorf("explorer: jump distance must be positive: %w", ErrInvalidConfiguration)
	}
	if margin <= 0 || margin >= d {
		return nil, fmt.Errorf("explorer: margin must satisfy 0 < margin < jumpDistance (got margin=%v, d=%v): %w", margin, d, ErrInvalidConfiguration)
	}

	e := &MeshExplorer{
		jumpDistance: d,
		margin:       margin,
		factory:      factory,
		index:        newSpatialIndex(margin),
	}

	rootNode := sample.PointNode{ID: 0, ParentID: sample.NoParent, Halfspace: root}
	e.boundary = []sample.PointNode{rootNode}
	e.index.Insert(0, root.B)
	e.stats.Accepted = 1

	for _, t := range geom.CardinalTangents(geom.TangentBasis(root.N)) {
		e.enqueue(0, t)
	}
	return e, nil
}

func (e *MeshExplorer) enqueue(parentID int, tangent geom.Vector) {
	e.queue = append(e.queue, queueItem{parentID: parentID, tangent: tangent})
}

// Boundary returns a read-only view of every committed halfspace, in
// commit order (node id == slice index).
func (e *MeshExplorer) Boundary() []sample.Halfspace {
	out := make([]sample.Halfspace, len(e.boundary))
	for i, n := range e.boundary {
		out[i] = n.Halfspace
	}
	return out
}

// BoundaryCount returns the number of committed nodes.
func (e *MeshExplorer) BoundaryCount() int {
	return len(e.boundary)
}

// Stats returns a snapshot of the explorer's telemetry counters.
func (e *MeshExplorer) Stats() Stats {
	return e.stats
}

// Step performs the next unit of work: at most one classification (prune
// check, optional adherer construction, single classify call, optional
// commit, all atomic from the caller's perspective). Pruned candidates are
// skipped without consuming a classification, so a call that only prunes
// before draining the queue performs zero classifications.
func (e *MeshExplorer) Step(c classifier.Classifier) (StepResult, error) {
	for {
		if e.current == nil {
			if e.queueHead >= len(e.queue) {
				return StepResult{Outcome: Complete}, nil
			}
			item := e.queue[e.queueHead]
			e.queueHead++

			parent := e.boundary[item.parentID]
			candidate := parent.Halfspace.B.Add(item.tangent.Scale(e.jumpDistance))
			if e.index.AnyWithin(candidate, e.margin) {
				e.logf("pruned direction from node %d without sampling", item.parentID)
				continue
			}

			e.current = e.factory.Build(parent.Halfspace, item.tangent)
			e.currentParentID = item.parentID
		}

		step, err := e.current.Sample(c)
		if err != nil {
			e.current = nil
			switch {
			case errors.Is(err, adherer.ErrBoundaryLost):
				e.stats.BoundaryLost++
				e.logf("boundary lost from node %d", e.currentParentID)
				return StepResult{Outcome: NodeExhausted}, nil
			case errors.Is(err, adherer.ErrOutOfBounds):
				e.stats.OutOfBounds++
				e.logf("out-of-bounds neighbor from node %d", e.currentParentID)
				return StepResult{Outcome: NodeExhausted}, nil
			default:
				return StepResult{}, err
			}
		}

		if !step.Done {
			return StepResult{Outcome: Sample, Sample: step.Sampled}, nil
		}

		hs, ok := e.current.Result()
		e.current = nil
		if !ok {
			return StepResult{}, fmt.Errorf("explorer: adherer reported completion without a result")
		}
		id := e.commit(e.currentParentID, hs)
		e.logf("accepted node %d (parent %d)", id, e.currentParentID)
		return StepResult{Outcome: BoundaryFound, NodeID: id}, nil
	}
}

// commit inserts a new node into the boundary and spatial index, then
// enqueues its cardinal tangents, suppressing the one most aligned with
// the direction back toward its parent.
func (e *MeshExplorer) commit(parentID int, hs sample.Halfspace) int {
	id := len(e.boundary)
	node := sample.PointNode{ID: id, ParentID: parentID, Halfspace: hs}
	e.boundary = append(e.boundary, node)
	e.index.Insert(id, hs.B)
	e.stats.Accepted++

	cardinals := geom.CardinalTangents(geom.TangentBasis(hs.N))

	parent := e.boundary[parentID]
	back := parent.Halfspace.B.Sub(hs.B)
	suppress := -1
	if back.Norm() > 1e-12 {
		backDir := back.Normalize()
		best := -2.0
		for i, t := range cardinals {
			if d := t.Dot(backDir); d > best {
				best = d
				suppress = i
			}
		}
	}

	for i, t := range cardinals {
		if i == suppress {
			continue
		}
		e.enqueue(id, t)
	}
	return id
}

func (e *MeshExplorer) logf(format string, args ...interface{}) {
	if e.Verbose {
		io.Pf("> "+format+"\n", args...)
	}
}
