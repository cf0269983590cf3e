package heuristic

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/insert"
	"gonum.org/v1/gonum/spatial/r3"
)

// SplitInter implements spec.md §4.7's splitInter: for each unfrozen
// triangle, finds its longest interior side — one whose two endpoints are
// both boundary vertices (when aux is nil) or whose precomputed unit
// vertex normals are anti-parallel enough (dot <= -1e-5, when aux is
// supplied) — and splits it at its forward-evaluated UV midpoint,
// rejecting when either resulting dihedral would fall to 0.1 or below.
// When aux is non-nil it is grown and refreshed with the new vertex's
// unit surface normal after every successful split, and the scan stops
// once cnt is nonzero and ts.NVerts() reaches it. Grounded on
// original_source/src/egadsTris.c's EG_splitInter.
func SplitInter(ts *core.TriStruct, sideMid int, aux *[]r3.Vec, cnt int) (int, error) {
	sides := core.Sides()
	total := ts.NTris()
	for tID := 1; tID <= total; tID++ {
		ts.Tri(tID).Hit = 0
	}

	split := 0
	for t1 := 1; t1 <= total; t1++ {
		if ts.Tri(t1).Hit != 0 {
			continue
		}
		t := ts.Tri(t1)

		side, dist := -1, 0.0
		for j := 0; j < 3; j++ {
			t2 := t.N[j]
			if t2 <= 0 || ts.Tri(t2).Hit != 0 {
				continue
			}
			i1, i2 := t.V[sides[j][0]], t.V[sides[j][1]]
			if aux == nil {
				if ts.Vertex(i1).Kind == core.FaceInterior || ts.Vertex(i2).Kind == core.FaceInterior {
					continue
				}
			} else {
				n1, n2 := (*aux)[i1-1], (*aux)[i2-1]
				if r3.Dot(n1, n2) >= -0.00001 {
					continue
				}
			}
			d := geom.DistSq3(ts.Vertex(i1).XYZ, ts.Vertex(i2).XYZ)
			if d > dist {
				dist = d
				side = j
			}
		}
		if side == -1 {
			continue
		}

		t2 := t.N[side]
		i0, i1, i2, i3, _ := ts.DiagonalQuad(t1, side, t2)

		uv := geom.Vec2{
			X: 0.5 * (ts.Vertex(i1).UV.X + ts.Vertex(i2).UV.X),
			Y: 0.5 * (ts.Vertex(i1).UV.Y + ts.Vertex(i2).UV.Y),
		}
		d, err := ts.Face.Evaluate(core.ToSurfaceUV(uv))
		if err != nil {
			continue
		}
		mid := d.XYZ

		if dotNorm(ts.Vertex(i0).XYZ, mid, ts.Vertex(i2).XYZ, ts.Vertex(i3).XYZ) <= 0.1 {
			continue
		}
		if dotNorm(ts.Vertex(i0).XYZ, ts.Vertex(i1).XYZ, mid, ts.Vertex(i3).XYZ) <= 0.1 {
			continue
		}

		vID, _, _, _, _, err := insert.SplitSide(ts, t1, side, t2, sideMid)
		if err != nil {
			ts.Tri(t1).Hit, ts.Tri(t2).Hit = 1, 1
			continue
		}

		Flood(ts, t1, core.FloodDepth)
		Flood(ts, t2, core.FloodDepth)

		if aux != nil {
			for len(*aux) < vID {
				*aux = append(*aux, r3.Vec{})
			}
			nv := ts.Vertex(vID)
			norm := r3.Vec{}
			if dd, err := ts.Face.Evaluate(core.ToSurfaceUV(nv.UV)); err == nil {
				du, duOK := unit(dd.Du)
				dv, dvOK := unit(dd.Dv)
				if duOK && dvOK {
					norm, _ = unit(r3.Cross(du, dv))
				}
			}
			(*aux)[vID-1] = norm
		}

		split++
		if cnt != 0 && ts.NVerts() >= cnt {
			return split, nil
		}
	}

	return split, nil
}

// unit normalizes v, reporting false (and the zero vector) when v has zero
// length.
func unit(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}
