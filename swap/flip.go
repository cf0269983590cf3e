package swap

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/predicate"
)

// flip rewrites the shared-edge pair (t1ID, side, t2ID) to share the
// opposite diagonal, exactly per spec.md §4.4's Flip section:
//
//	i0 = t1.v[side], i1 = t1.v[sides[side][0]], i2 = t1.v[sides[side][1]]
//	os = side of t2 whose neighbor is t1, i3 = t2.v[os]
//	n11, n12 = t1's other two neighbors; n21, n22 = t2's other two, with
//	n21 opposite i1 in t2 (sharing edge (i3,i2)) and n22 opposite i2
//	(sharing edge (i1,i3))
//	t1 <- (i1, i3, i0); neighbors (t2, n12, n22)
//	t2 <- (i2, i0, i3); neighbors (t1, n21, n11)
//
// Ownership of the edge shared with n11 moves from t1 to t2, and the edge
// shared with n22 moves from t2 to t1; both back-pointers are repatched.
// n12 and n21 keep their existing owner. Finally checkOr is re-evaluated on
// all six sides of the rewritten pair to refresh the candidate mark bits.
func flip(ts *core.TriStruct, t1ID, side, t2ID int) error {
	i0, i1, i2, i3, os := ts.DiagonalQuad(t1ID, side, t2ID)

	pair1 := core.Sides()[side]
	t1 := ts.Tri(t1ID)
	n11, n12 := t1.N[pair1[0]], t1.N[pair1[1]]

	pair2 := core.Sides()[os]
	t2 := ts.Tri(t2ID)
	a, _ := t2.OtherVerts(os)
	var n21, n22 int
	if a == i1 {
		n21, n22 = t2.N[pair2[0]], t2.N[pair2[1]]
	} else {
		n21, n22 = t2.N[pair2[1]], t2.N[pair2[0]]
	}

	if err := ts.RepatchNeighbor(n11, t1ID, t2ID); err != nil {
		return err
	}
	if err := ts.RepatchNeighbor(n22, t2ID, t1ID); err != nil {
		return err
	}

	t1.V = [3]int{i1, i3, i0}
	t1.N = [3]int{t2ID, n12, n22}
	t2.V = [3]int{i2, i0, i3}
	t2.N = [3]int{t1ID, n21, n11}

	predicate.Mark(ts, t1ID, 0, t2ID)
	predicate.Mark(ts, t1ID, 1, n12)
	predicate.Mark(ts, t1ID, 2, n22)
	predicate.Mark(ts, t2ID, 0, t1ID)
	predicate.Mark(ts, t2ID, 1, n21)
	predicate.Mark(ts, t2ID, 2, n11)

	return nil
}
