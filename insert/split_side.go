package insert

import (
	"math"

	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/predicate"
	"gonum.org/v1/gonum/spatial/r3"
)

// minSideRatio is splitSide's sideMid==1 rejection threshold: sqrt(1/8),
// spec.md §4.5's "either new sub-segment is shorter than sqrt(1/8) of the
// original side".
var minSideRatio = math.Sqrt(1.0 / 8.0)

// subTrisValid reports whether inserting a FACE vertex at uv between the
// quad (i0,i1,i2,i3) yields four sub-triangles all oriented with ts.OrUV —
// the "checkOr-style area test" spec.md §4.5 requires of any splitSide
// candidate.
func subTrisValid(ts *core.TriStruct, i0, i1, i2, i3 int, uv geom.Vec2) bool {
	or := float64(ts.OrUV)
	quads := [4][2]int{{i0, i1}, {i1, i3}, {i2, i0}, {i3, i2}}
	for _, q := range quads {
		a := geom.Area2D(ts.Vertex(q[0]).UV, ts.Vertex(q[1]).UV, uv)
		if a*or <= 0 {
			return false
		}
	}
	return true
}

// SplitSide implements spec.md §4.5's splitSide: given the shared-edge
// configuration (t1ID, side, t2ID) — identical to the flip's (i0, i1, i2,
// i3, n11, n12, n21, n22, os) — inserts a new FACE vertex on the shared
// edge's midpoint (or, when an endpoint is an isolated Node, the inverse-
// evaluated midpoint of the 3D segment, falling back to the UV midpoint if
// that would invert any sub-triangle) and rewrites the pair into four
// triangles:
//
//	t1ID <- (i0, i1, node); neighbors (t2ID,  newA, n12)
//	t2ID <- (i1, i3, node); neighbors (newB,  t1ID, n22)
//	newA <- (i2, i0, node); neighbors (t1ID,  newB, n11)
//	newB <- (i3, i2, node); neighbors (newA,  t2ID, n21)
//
// sideMid selects the longest-side-split caller (heuristic.AddSideDist):
// when 1, either new sub-segment shorter than minSideRatio of the original
// is rejected with ErrRange. Also returns ErrRange if the final candidate
// would invert any of the four new sub-triangles.
func SplitSide(ts *core.TriStruct, t1ID, side, t2ID, sideMid int) (vID, newT1, newT2, newA, newB int, err error) {
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

	v1, v2 := ts.Vertex(i1), ts.Vertex(i2)

	uv, xyz := midpointCandidate(ts, v1, v2, i0, i1, i2, i3)

	if !subTrisValid(ts, i0, i1, i2, i3, uv) {
		return 0, 0, 0, 0, 0, ErrRange
	}

	if sideMid == 1 {
		d0 := r3.Norm(r3.Sub(v2.XYZ, v1.XYZ))
		d1 := r3.Norm(r3.Sub(xyz, v1.XYZ))
		d2 := r3.Norm(r3.Sub(v2.XYZ, xyz))
		if d0 == 0 || d1/d0 < minSideRatio || d2/d0 < minSideRatio {
			return 0, 0, 0, 0, 0, ErrRange
		}
	}

	node := ts.AppendVertex(core.Vertex{XYZ: xyz, UV: uv, Kind: core.FaceInterior, EdgeID: -1})

	newTriA := ts.AppendTriangle(core.Triangle{V: [3]int{i2, i0, node}, Close: core.CloseNotFilled})
	newTriB := ts.AppendTriangle(core.Triangle{V: [3]int{i3, i2, node}, Close: core.CloseNotFilled})

	if err := ts.RepatchNeighbor(n11, t1ID, newTriA); err != nil {
		return 0, 0, 0, 0, 0, err
	}
	if err := ts.RepatchNeighbor(n21, t2ID, newTriB); err != nil {
		return 0, 0, 0, 0, 0, err
	}

	t1.V = [3]int{i0, i1, node}
	t1.N = [3]int{t2ID, newTriA, n12}
	t2.V = [3]int{i1, i3, node}
	t2.N = [3]int{newTriB, t1ID, n22}
	ts.Tri(newTriA).N = [3]int{t1ID, newTriB, n11}
	ts.Tri(newTriB).N = [3]int{newTriA, t2ID, n21}

	for _, tID := range [4]int{t1ID, t2ID, newTriA, newTriB} {
		if e := fillMidIgnoringExtrapolation(ts, tID); e != nil {
			return 0, 0, 0, 0, 0, e
		}
	}

	predicate.Mark(ts, t1ID, 0, t2ID)
	predicate.Mark(ts, t1ID, 1, newTriA)
	predicate.Mark(ts, t1ID, 2, n12)
	predicate.Mark(ts, t2ID, 0, newTriB)
	predicate.Mark(ts, t2ID, 1, t1ID)
	predicate.Mark(ts, t2ID, 2, n22)
	predicate.Mark(ts, newTriA, 0, t1ID)
	predicate.Mark(ts, newTriA, 1, newTriB)
	predicate.Mark(ts, newTriA, 2, n11)
	predicate.Mark(ts, newTriB, 0, newTriA)
	predicate.Mark(ts, newTriB, 1, t2ID)
	predicate.Mark(ts, newTriB, 2, n21)

	return node, t1ID, t2ID, newTriA, newTriB, nil
}

// midpointCandidate computes splitSide's proposed new-vertex (uv, xyz) per
// spec.md §4.5: when either shared-edge endpoint is an isolated Node,
// inverse-evaluate the 3D segment midpoint and use it if it keeps all four
// sub-triangles correctly oriented; otherwise (and always for non-isolated
// endpoints) use the UV midpoint, forward-evaluated.
func midpointCandidate(ts *core.TriStruct, v1, v2 *core.Vertex, i0, i1, i2, i3 int) (geom.Vec2, r3.Vec) {
	if (v1.Kind == core.Node && v1.EdgeID == -1) || (v2.Kind == core.Node && v2.EdgeID == -1) {
		xyzMid := r3.Scale(0.5, r3.Add(v1.XYZ, v2.XYZ))
		if uv, _, err := ts.Face.InverseEvaluate(xyzMid); err == nil {
			if subTrisValid(ts, i0, i1, i2, i3, core.FromSurfaceUV(uv)) {
				return core.FromSurfaceUV(uv), xyzMid
			}
		}
	}
	uvMid := geom.Vec2{X: (v1.UV.X + v2.UV.X) / 2, Y: (v1.UV.Y + v2.UV.Y) / 2}
	if d, err := ts.Face.Evaluate(core.ToSurfaceUV(uvMid)); err == nil {
		return uvMid, d.XYZ
	}
	// Extrapolation at the UV midpoint itself: fall back to a linear 3D
	// midpoint so the caller's final subTrisValid/length checks still have
	// a concrete candidate to reject or accept.
	return uvMid, r3.Scale(0.5, r3.Add(v1.XYZ, v2.XYZ))
}
