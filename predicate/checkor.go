package predicate

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
)

// Predicate is the shared shape every swap-quality rule implements:
// given an oriented edge (t1, side, t2) — side is the local side of t1
// across which t2 sits — report whether swapping the diagonal improves
// the mesh, publishing any running accumulator through ts.Accum
// (spec.md §4.4).
type Predicate func(ts *core.TriStruct, t1, side, t2 int) bool

func uvOf(ts *core.TriStruct, v int) geom.Vec2 { return ts.Vertex(v).UV }

// CheckOr implements spec.md §4.3's checkOr: given (t1, side, t2), let
// i0 = t1.V[side], (i1,i2) the shared-edge endpoints, i3 the apex of t2.
// Compute a1 = area2D(uv[i0],uv[i1],uv[i3]) and a2 = area2D(uv[i0],uv[i3],
// uv[i2]). Returns true iff a1*a2 > 0 AND a1*orUV > 0 — the new diagonal's
// two sub-triangles are both non-degenerate and consistently oriented.
//
// Per spec.md §9's literal-behavior open question, ts.OrCnt is incremented
// on every a1*orUV <= 0 branch, including when a1*a2 <= 0 was already true
// (i.e. the "already invalid" case still counts) — reproduced here exactly
// as documented rather than guessing a "count only swap proposals" intent.
func CheckOr(ts *core.TriStruct, t1, side, t2 int) bool {
	i0, i1, i2, i3, _ := ts.DiagonalQuad(t1, side, t2)
	a1 := geom.Area2D(uvOf(ts, i0), uvOf(ts, i1), uvOf(ts, i3))
	a2 := geom.Area2D(uvOf(ts, i0), uvOf(ts, i3), uvOf(ts, i2))

	if a1*float64(ts.OrUV) <= 0 {
		ts.OrCnt++
	}
	return a1*a2 > 0 && a1*float64(ts.OrUV) > 0
}
