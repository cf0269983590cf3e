package heuristic

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Flood marks tID and every triangle within depth-1 neighbor steps of it
// as frozen (Triangle.Hit = 1): depth counts tID itself, so depth 1 marks
// tID alone and depth <= 0 marks nothing. This is the "ineligible for
// further picks this call" flood
// fill spec.md §4.7 describes for breakTri and splitInter. Grounded on
// original_source/src/egadsTris.c's EG_floodTriGraph.
func Flood(ts *core.TriStruct, tID, depth int) {
	if depth <= 0 {
		return
	}
	ts.Tri(tID).Hit = 1
	for _, n := range ts.Tri(tID).N {
		if n > 0 {
			Flood(ts, n, depth-1)
		}
	}
}

// Close2Edge reports whether xyz lies close to any boundary edge of the
// triangles reachable from t0 within core.FloodDepth triangles (t0 counts
// as the first): close means geom.RayIntersectDistFrac — the squared
// distance from xyz to the edge's line divided by the edge's squared
// length — is below ts.Edist2. This is AddSideDist's boundary guard while
// ts.Phase == 3 (spec.md §4.7). Grounded on
// original_source/src/egadsTris.c's EG_close2Edge/EG_recClose2Edge.
func Close2Edge(ts *core.TriStruct, t0 int, xyz r3.Vec) bool {
	return recClose2Edge(ts, t0, xyz, core.FloodDepth)
}

// CloseEdge applies Close2Edge's test over the triangles reachable from t0
// within core.CloseEdgeDepth triangles — the close-to-boundary
// classification a midpoint refresh uses to set Triangle.Close (spec.md
// §4.4) and breakTri's final rejection guard, a shallower search than
// Close2Edge's. Grounded on original_source/src/egadsTris.c's
// EG_closeEdge, which shares EG_close2Edge's recursive ray-fraction test
// at a shallower fixed depth.
func CloseEdge(ts *core.TriStruct, t0 int, xyz r3.Vec) bool {
	return recClose2Edge(ts, t0, xyz, core.CloseEdgeDepth)
}

func recClose2Edge(ts *core.TriStruct, t0 int, xyz r3.Vec, depth int) bool {
	if depth <= 0 {
		return false
	}
	t := ts.Tri(t0)
	sides := core.Sides()
	for side := 0; side < 3; side++ {
		tn := t.N[side]
		if tn <= 0 {
			a := ts.Vertex(t.V[sides[side][0]]).XYZ
			b := ts.Vertex(t.V[sides[side][1]]).XYZ
			if geom.RayIntersectDistFrac(a, b, xyz) < ts.Edist2 {
				return true
			}
			continue
		}
		if recClose2Edge(ts, tn, xyz, depth-1) {
			return true
		}
	}
	return false
}
