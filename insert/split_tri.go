package insert

import (
	"errors"

	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/predicate"
	"github.com/katalvlaran/surftess/surface"
	"gonum.org/v1/gonum/spatial/r3"
)

func fillMidIgnoringExtrapolation(ts *core.TriStruct, tID int) error {
	err := ts.FillMid(tID)
	if err == nil || errors.Is(err, surface.ErrExtrapolation) {
		return nil
	}
	return err
}

// SplitTri implements spec.md §4.5's splitTri: appends a new FACE vertex
// at (uv, xyz) and splits triangle tID into three, overwriting tID in
// place and appending the other two at the tail. Given tID's original
// (i0,i1,i2)/(n0,n1,n2):
//
//	tID      <- (i0, i1, node); neighbors (newA, newB, n2)
//	newA     <- (i1, i2, node); neighbors (newB, tID,  n0)
//	newB     <- (i2, i0, node); neighbors (tID,  newA, n1)
//
// Each child's third slot inherits the original external neighbor across
// that same edge; n0 and n1 are repatched to point at the child that now
// owns their shared edge (n2 keeps pointing at tID, unchanged). Returns
// the three triangle ids (tID, newA, newB) and the new vertex id.
func SplitTri(ts *core.TriStruct, tID int, uv geom.Vec2, xyz r3.Vec) (vID, tA, tB, tC int, err error) {
	t := ts.Tri(tID)
	i0, i1, i2 := t.V[0], t.V[1], t.V[2]
	n0, n1, n2 := t.N[0], t.N[1], t.N[2]

	node := ts.AppendVertex(core.Vertex{XYZ: xyz, UV: uv, Kind: core.FaceInterior, EdgeID: -1})

	newA := ts.AppendTriangle(core.Triangle{V: [3]int{i1, i2, node}, Close: core.CloseNotFilled})
	newB := ts.AppendTriangle(core.Triangle{V: [3]int{i2, i0, node}, Close: core.CloseNotFilled})

	if err := ts.RepatchNeighbor(n0, tID, newA); err != nil {
		return 0, 0, 0, 0, err
	}
	if err := ts.RepatchNeighbor(n1, tID, newB); err != nil {
		return 0, 0, 0, 0, err
	}

	t.V = [3]int{i0, i1, node}
	t.N = [3]int{newA, newB, n2}
	ts.Tri(newA).N = [3]int{newB, tID, n0}
	ts.Tri(newB).N = [3]int{tID, newA, n1}

	if e := fillMidIgnoringExtrapolation(ts, tID); e != nil {
		return 0, 0, 0, 0, e
	}
	if e := fillMidIgnoringExtrapolation(ts, newA); e != nil {
		return 0, 0, 0, 0, e
	}
	if e := fillMidIgnoringExtrapolation(ts, newB); e != nil {
		return 0, 0, 0, 0, e
	}

	predicate.Mark(ts, tID, 0, newA)
	predicate.Mark(ts, tID, 1, newB)
	predicate.Mark(ts, tID, 2, n2)
	predicate.Mark(ts, newA, 0, newB)
	predicate.Mark(ts, newA, 1, tID)
	predicate.Mark(ts, newA, 2, n0)
	predicate.Mark(ts, newB, 0, tID)
	predicate.Mark(ts, newB, 1, newA)
	predicate.Mark(ts, newB, 2, n1)

	return node, tID, newA, newB, nil
}
