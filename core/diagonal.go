package core

// DiagonalQuad computes the four vertices and the mirrored side index
// describing the shared-edge configuration of an oriented edge
// (t1ID, side, t2ID), exactly as spec.md §4.4's Flip section defines them:
//
//	i0 = t1.V[side]
//	i1 = t1.V[sides[side][0]]
//	i2 = t1.V[sides[side][1]]
//	os = the side of t2 whose neighbor is t1
//	i3 = t2.V[os]
//
// (i0,i1,i2) are t1's vertices with i0 the apex opposite the shared edge
// (i1,i2); i3 is t2's apex on the far side of that same edge. Every swap
// predicate and the flip itself builds on this quad.
func (ts *TriStruct) DiagonalQuad(t1ID, side, t2ID int) (i0, i1, i2, i3, os int) {
	t1 := ts.Tri(t1ID)
	i0 = t1.V[side]
	pair := sides[side]
	i1 = t1.V[pair[0]]
	i2 = t1.V[pair[1]]
	os = ts.SideTo(t2ID, t1ID)
	i3 = ts.Tri(t2ID).V[os]
	return
}

// OtherNeighbors returns the two neighbor triangle ids of tID other than
// the one on side s (in slot order), used by the flip and split routines
// to preserve external connectivity.
func (ts *TriStruct) OtherNeighbors(tID, s int) (int, int) {
	t := ts.Tri(tID)
	var out [2]int
	k := 0
	for i := 0; i < 3; i++ {
		if i == s {
			continue
		}
		out[k] = t.N[i]
		k++
	}
	return out[0], out[1]
}
