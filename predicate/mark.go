package predicate

import "github.com/katalvlaran/surftess/core"

// Mark re-evaluates CheckOr for (tID, s, nbrID) and sets tID's candidate
// bit on side s accordingly (spec.md §4.4's "re-evaluate checkOr and mark"
// step, shared by the flip, splitTri, and splitSide routines). If nbrID
// names a real triangle, its own side facing tID is refreshed
// symmetrically so both triangles agree on whether that shared edge is a
// swap candidate.
func Mark(ts *core.TriStruct, tID, s, nbrID int) {
	if nbrID <= 0 {
		ts.Tri(tID).SetCandidate(s, false)
		return
	}
	ts.Tri(tID).SetCandidate(s, CheckOr(ts, tID, s, nbrID))

	back := ts.SideTo(nbrID, tID)
	if back >= 0 {
		ts.Tri(nbrID).SetCandidate(back, CheckOr(ts, nbrID, back, tID))
	}
}
