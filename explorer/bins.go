package explorer

import (
	"strconv"
	"strings"

	"github.com/toazbenj/racing-sembas/geom"
)

// spatialIndex is a bucketed grid over boundary points, keyed by cell
// coordinates of size cellSize, supporting "any point within radius"
// queries for the pruning check.
type spatialIndex struct {
	cellSize float64
	buckets  map[string][]int
	points   map[int]geom.Vector
}

func newSpatialIndex(cellSize float64) *spatialIndex {
	return &spatialIndex{
		cellSize: cellSize,
		buckets:  make(map[string][]int),
		points:   make(map[int]geom.Vector),
	}
}

// cellCoord returns the integer grid cell containing p.
func (s *spatialIndex) cellCoord(p geom.Vector) []int {
	coord := make([]int, len(p))
	for i, v := range p {
		coord[i] = int(floorDiv(v, s.cellSize))
	}
	return coord
}

func floorDiv(v, size float64) float64 {
	q := v / size
	if q < 0 {
		return q - 1 // truncation toward zero would round negative quotients up; bias down instead
	}
	return q
}

func cellKey(coord []int) string {
	parts := make([]string, len(coord))
	for i, c := range coord {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// Insert adds a boundary point to the index under the given node id.
func (s *spatialIndex) Insert(id int, p geom.Vector) {
	key := cellKey(s.cellCoord(p))
	s.buckets[key] = append(s.buckets[key], id)
	s.points[id] = p
}

// AnyWithin reports whether any indexed point lies within radius of p. It
// only examines the 3^N cells adjacent to (and including) p's own cell,
// which is sufficient since radius <= cellSize for every pruning query
// sembas issues (margin < jump distance, and cellSize == margin).
func (s *spatialIndex) AnyWithin(p geom.Vector, radius float64) bool {
	center := s.cellCoord(p)
	for _, offset := range neighborOffsets(len(center)) {
		key := cellKey(addOffset(center, offset))
		for _, id := range s.buckets[key] {
			if geom.Distance(s.points[id], p) <= radius {
				return true
			}
		}
	}
	return false
}

func addOffset(coord, offset []int) []int {
	out := make([]int, len(coord))
	for i := range coord {
		out[i] = coord[i] + offset[i]
	}
	return out
}

// neighborOffsets enumerates every point in {-1,0,1}^n, the Moore
// neighborhood of a grid cell in n dimensions.
func neighborOffsets(n int) [][]int {
	offsets := [][]int{{}}
	for axis := 0; axis < n; axis++ {
		next := make([][]int, 0, len(offsets)*3)
		for _, o := range offsets {
			for _, d := range [3]int{-1, 0, 1} {
				extended := make([]int, len(o)+1)
				copy(extended, o)
				extended[len(o)] = d
				next = append(next, extended)
			}
		}
		offsets = next
	}
	return offsets
}
