package core

// Control constants fixed by spec.md §6.
const (
	// FloodDepth bounds the recursive neighbor-flood used by
	// heuristic.Flood and heuristic.Close2Edge.
	FloodDepth = 6

	// CloseEdgeDepth bounds the shallower neighbor search
	// heuristic.CloseEdge uses to classify Triangle.Close during a
	// midpoint refresh and as breakTri's final rejection guard — distinct
	// from the deeper FloodDepth search heuristic.Close2Edge performs for
	// AddSideDist's phase-3 boundary guard.
	CloseEdgeDepth = 4

	// AngTol is the tolerance swap predicates use when comparing
	// "improves it" angle/dihedral measures (spec.md §4.4).
	AngTol = 1e-6

	// DevAngle gates addFacetDist candidate eligibility (spec.md §4.7).
	DevAngle = 2.65

	// CutAngle gates breakTri/addFacetNorm candidate eligibility
	// (spec.md §4.7).
	CutAngle = 3.10

	// MaxAngle is the UV-angle ceiling used by the diag predicate and
	// several phase stop conditions (spec.md §4.4, §4.8).
	MaxAngle = 3.13

	// MaxOrientationCount aborts further insertion phases once exceeded
	// (spec.md §4.3).
	MaxOrientationCount = 500

	// Chunk is the geometric-growth chunk size for verts/tris dynamic
	// arrays (spec.md §3, implementation-defined per spec.md §6).
	Chunk = 256

	// MaxSweeps bounds swapTris's outer loop (spec.md §4.4).
	MaxSweeps = 200
)

// sides maps a triangle's opposite-vertex side index (0, 1, or 2) to the
// pair of local vertex slots forming that side: side s is opposite V[s]
// and connects V[sides[s][0]] to V[sides[s][1]] (spec.md §3's invariant
// list).
var sides = [3][2]int{
	{1, 2},
	{2, 0},
	{0, 1},
}

// Sides exposes the canonical side-to-vertex-slot mapping to other
// packages (predicate, swap, insert, heuristic) that must agree with core
// on which local slots form which side.
func Sides() [3][2]int { return sides }
