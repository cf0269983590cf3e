package heuristic

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/insert"
	"github.com/katalvlaran/surftess/midhash"
	"gonum.org/v1/gonum/spatial/r3"
)

// dotNorm is the dot of the unit normal of (p0,p1,p2) with the unit normal
// of (p3,p2,p1) — the two facets that would share edge (p1,p2) if p0 and
// p3 were connected across it (original_source's EG_dotNorm).
func dotNorm(p0, p1, p2, p3 r3.Vec) float64 {
	return geom.Dihedral(p0, p1, p2, p3, p2, p1)
}

func areaSq3(a, b, c r3.Vec) float64 {
	n := geom.FacetNormal(a, b, c)
	return r3.Dot(n, n)
}

// BreakTri implements spec.md §4.7's breakTri: greedily splits the
// worst-area eligible triangle, repeating until no eligible triangle
// remains. In mode == -1 eligibility additionally requires an inverted or
// near-degenerate neighbor (the "inverted-neighbor insertion" of Phase A);
// in mode == 0 a midpoint hash caches evaluated centroids across calls
// within the same phase and an isolated-Node endpoint triggers the
// inverse-evaluate refinement spec.md describes. Returns the number of
// triangles split. The facet-local in/out sanity check egadsTris.c's
// EG_breakTri keeps alongside the dihedral/orientation guards is not
// reproduced here (see DESIGN.md). Grounded on
// original_source/src/egadsTris.c's EG_breakTri.
func BreakTri(ts *core.TriStruct, mode int, hash *midhash.Table) (int, error) {
	sides := core.Sides()

	for tID := 1; tID <= ts.NTris(); tID++ {
		t := ts.Tri(tID)
		t.Hit = 1

		v0, v1, v2 := ts.Vertex(t.V[0]).UV, ts.Vertex(t.V[1]).UV, ts.Vertex(t.V[2]).UV
		if geom.MaxAngle2D(v0, v1, v2) > core.CutAngle {
			continue
		}
		p0, p1, p2 := ts.Vertex(t.V[0]).XYZ, ts.Vertex(t.V[1]).XYZ, ts.Vertex(t.V[2]).XYZ
		area := areaSq3(p0, p1, p2)
		if area == 0 {
			continue
		}

		nInterior := 0
		dot, mina := 1.0, -1.0
		for side := 0; side < 3; side++ {
			if t.N[side] <= 0 {
				continue
			}
			nInterior++
			if mode != -1 {
				continue
			}
			i0, i1, i2, i3, _ := ts.DiagonalQuad(tID, side, t.N[side])
			d := dotNorm(ts.Vertex(i0).XYZ, ts.Vertex(i1).XYZ, ts.Vertex(i2).XYZ, ts.Vertex(i3).XYZ)
			if d < dot {
				dot = d
			}
			na := areaSq3(ts.Vertex(i1).XYZ, ts.Vertex(i2).XYZ, ts.Vertex(i3).XYZ)
			if mina < 0 || na < mina {
				mina = na
			}
		}
		if nInterior <= 1 {
			continue
		}
		if mode == -1 && dot > -0.9 && mina/area > 0.001 {
			continue
		}

		ok := true
		for _, pair := range sides {
			a, b := ts.Vertex(t.V[pair[0]]).XYZ, ts.Vertex(t.V[pair[1]]).XYZ
			if geom.DistSq3(a, b) <= ts.Eps2 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		t.Area = area
		t.Hit = 0
	}

	split := 0
	for {
		best, bestArea := -1, 0.0
		for tID := 1; tID <= ts.NTris(); tID++ {
			t := ts.Tri(tID)
			if t.Hit != 0 {
				continue
			}
			if t.Area > bestArea {
				best, bestArea = tID, t.Area
			}
		}
		if best == -1 {
			return split, nil
		}
		ts.Tri(best).Hit = 1

		if tryBreakOne(ts, best, mode, hash) {
			split++
			Flood(ts, best, core.FloodDepth)
		}
	}
}

func tryBreakOne(ts *core.TriStruct, tID, mode int, hash *midhash.Table) bool {
	t := ts.Tri(tID)
	i0, i1, i2 := t.V[0], t.V[1], t.V[2]
	v0, v1, v2 := ts.Vertex(i0), ts.Vertex(i1), ts.Vertex(i2)

	uv := ts.UVCentroid(tID)
	d, err := ts.Face.Evaluate(core.ToSurfaceUV(uv))
	if err != nil {
		return false
	}
	xyz := d.XYZ

	if mode == 0 {
		if hash != nil {
			if _, found := hash.Find(i0, i1, i2); !found {
				if v0.Kind == core.Node && v0.EdgeID == -1 ||
					v1.Kind == core.Node && v1.EdgeID == -1 ||
					v2.Kind == core.Node && v2.EdgeID == -1 {
					uv, xyz = refineByInverseEvaluate(ts, v0, v1, v2, uv, xyz)
				}
				hash.Add(i0, i1, i2, false, xyz)
			}
		}
		if dotNorm(v0.XYZ, v1.XYZ, xyz, v2.XYZ) < -0.98 ||
			dotNorm(v1.XYZ, v2.XYZ, xyz, v0.XYZ) < -0.98 ||
			dotNorm(v2.XYZ, v0.XYZ, xyz, v1.XYZ) < -0.98 {
			return false
		}
	} else {
		centroid3 := r3.Scale(1.0/3, r3.Add(r3.Add(v0.XYZ, v1.XYZ), v2.XYZ))
		if pUV, pXYZ, err := ts.Face.InverseEvaluate(centroid3); err == nil {
			cuv := core.FromSurfaceUV(pUV)
			a := geom.Area2D(v0.UV, v1.UV, v2.UV)
			if a*geom.Area2D(v0.UV, v1.UV, cuv) <= 0 ||
				a*geom.Area2D(v1.UV, v2.UV, cuv) <= 0 ||
				a*geom.Area2D(v2.UV, v0.UV, cuv) <= 0 {
				// projection fell outside: fall back to the plain centroid.
			} else {
				uv, xyz = cuv, pXYZ
			}
		}
	}

	if CloseEdge(ts, tID, xyz) {
		return false
	}

	_, _, _, _, err = insert.SplitTri(ts, tID, uv, xyz)
	return err == nil
}

// refineByInverseEvaluate projects the 3D centroid back into parameter
// space when an endpoint is an isolated pole, and re-validates the three
// UV sub-triangle orientations before trusting it (spec.md §4.7's breakTri
// mode==0 refinement). Returns the refined (uv, xyz) pair together so a
// caller never pairs a stale forward-evaluated uv with a refined xyz;
// falls back to the original (uv, xyz) on any failure.
func refineByInverseEvaluate(ts *core.TriStruct, v0, v1, v2 *core.Vertex, uv geom.Vec2, xyz r3.Vec) (geom.Vec2, r3.Vec) {
	centroid3 := r3.Scale(1.0/3, r3.Add(r3.Add(v0.XYZ, v1.XYZ), v2.XYZ))
	pUV, pXYZ, err := ts.Face.InverseEvaluate(centroid3)
	if err != nil {
		return uv, xyz
	}
	cuv := core.FromSurfaceUV(pUV)
	a := geom.Area2D(v0.UV, v1.UV, v2.UV)
	if a*geom.Area2D(v0.UV, v1.UV, cuv) <= 0 ||
		a*geom.Area2D(v1.UV, v2.UV, cuv) <= 0 ||
		a*geom.Area2D(v2.UV, v0.UV, cuv) <= 0 {
		return uv, xyz
	}
	return cuv, pXYZ
}
