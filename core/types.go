package core

import (
	"github.com/katalvlaran/surftess/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// VertexKind classifies a Vertex's place in the boundary-vs-interior
// topology (spec.md §3).
type VertexKind int

const (
	// Node is a boundary corner vertex (may be an isolated pole, in which
	// case EdgeID == -1).
	Node VertexKind = iota
	// EdgeInterior is a vertex sampled along a boundary edge segment.
	EdgeInterior
	// FaceInterior is a vertex inserted in the face's interior by
	// refinement (splitTri/splitSide).
	FaceInterior
)

// Vertex is one point of the triangulation, carrying both its world
// position and its parameter-space position (spec.md §3).
type Vertex struct {
	XYZ r3.Vec
	UV  geom.Vec2

	Kind VertexKind

	// EdgeID is the owning boundary edge's id for Node/EdgeInterior
	// vertices, or -1 for an isolated Node (a degenerate-face pole) and
	// for FaceInterior vertices.
	EdgeID int

	// EdgeParamIndex is this vertex's integer rank along its owning edge,
	// meaningful only when EdgeID >= 0.
	EdgeParamIndex int
}

// markBit returns the bitmask for side s (0..2) of Triangle.Mark.
func markBit(s int) uint8 { return 1 << uint(s) }

// Triangle is one facet of the triangulation. V and N are 1-based;
// N[s] <= 0 means side s is a boundary (or, before the frame snapshot, may
// carry a negated boundary-segment id, spec.md §9).
type Triangle struct {
	V [3]int // 1-based vertex indices
	N [3]int // 1-based neighbor triangle indices; <=0 means no neighbor

	// Mark is a 3-bit field: bit s set means side s is a swap candidate
	// (spec.md §3).
	Mark uint8

	// Mid is the cached surface centroid in world coordinates (scratch,
	// refreshed by fillMid).
	Mid r3.Vec

	// Area is scratch space reused by multiple heuristics for whichever
	// priority/threshold quantity the current phase needs (spec.md §4.7).
	Area float64

	// Close is a tri-state flag: -1 = NotFilled, -2 = Pending, 0 = not
	// close to a boundary edge, 1 = close to a boundary edge.
	Close int

	// Hit marks a triangle as frozen/skippable for the remainder of the
	// current sweep or selection pass (spec.md's "Frozen" glossary entry).
	Hit int

	// Count is scratch space: the swap engine uses it to tally
	// participation in the current sweep.
	Count int
}

// Tri-state values for Triangle.Close.
const (
	CloseNotFilled = -1
	ClosePending   = -2
	CloseFar       = 0
	CloseNear      = 1
)

// HasCandidate reports whether side s is marked as a swap candidate.
func (t *Triangle) HasCandidate(s int) bool { return t.Mark&markBit(s) != 0 }

// SetCandidate sets or clears the candidate bit for side s.
func (t *Triangle) SetCandidate(s int, on bool) {
	if on {
		t.Mark |= markBit(s)
	} else {
		t.Mark &^= markBit(s)
	}
}

// OtherVerts returns the two vertex indices of the side opposite local
// slot s (spec.md §3's sides = [[1,2],[2,0],[0,1]]).
func (t *Triangle) OtherVerts(s int) (int, int) {
	pair := sides[s]
	return t.V[pair[0]], t.V[pair[1]]
}

// BaryRecord is one vertex's barycentric position relative to the frozen
// frame triangulation (spec.md §4.9): FrameTri is the 1-based frame
// triangle index (0 if unset — only frame vertices themselves have no
// record), W0/W1 are the first two barycentric weights (the third is
// implied by 1-W0-W1 when normalized, or left unnormalized when the
// record is a least-negative fallback, spec.md §4.9).
type BaryRecord struct {
	FrameTri int
	W0, W1   float64
	Fallback bool // true if no frame triangle exactly contained this vertex
}
