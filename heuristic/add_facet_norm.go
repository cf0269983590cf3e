package heuristic

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/insert"
)

// AddFacetNorm implements spec.md §4.7's addFacetNorm: a single linear
// pass that splits every eligible triangle whose minimum neighbor
// dihedral falls below ts.DotNrm - core.AngTol, at the triangle's cached
// surface midpoint. Grounded on
// original_source/src/egadsTris.c's EG_addFacetNorm.
func AddFacetNorm(ts *core.TriStruct) (int, error) {
	split := 0
	total := ts.NTris()
	for tID := 1; tID <= total; tID++ {
		t := ts.Tri(tID)
		if t.Close != core.CloseFar {
			continue
		}

		nInterior := 0
		for side := 0; side < 3; side++ {
			if t.N[side] > 0 {
				nInterior++
			}
		}
		if nInterior <= 1 {
			continue
		}

		v0, v1, v2 := ts.Vertex(t.V[0]), ts.Vertex(t.V[1]), ts.Vertex(t.V[2])
		if geom.MaxAngle2D(v0.UV, v1.UV, v2.UV) > core.CutAngle {
			continue
		}

		mid := t.Mid
		thresh := 0.001 * ts.Edist2
		if geom.DistSq3(v0.XYZ, mid) < thresh ||
			geom.DistSq3(v1.XYZ, mid) < thresh ||
			geom.DistSq3(v2.XYZ, mid) < thresh {
			continue
		}

		area := areaSq3(v0.XYZ, v1.XYZ, v2.XYZ)

		minDot, ok := 1.0, true
		for side := 0; side < 3; side++ {
			if t.N[side] <= 0 {
				continue
			}
			i0, i1, i2, i3, _ := ts.DiagonalQuad(tID, side, t.N[side])
			neighborArea := areaSq3(ts.Vertex(i1).XYZ, ts.Vertex(i2).XYZ, ts.Vertex(i3).XYZ)
			if neighborArea > area && ts.Tri(t.N[side]).Close == core.CloseFar {
				continue
			}
			d := dotNorm(ts.Vertex(i0).XYZ, ts.Vertex(i1).XYZ, ts.Vertex(i2).XYZ, ts.Vertex(i3).XYZ)
			if d < 0 {
				ok = false
				break
			}
			if d < minDot {
				if dotNorm(mid, ts.Vertex(i1).XYZ, ts.Vertex(i2).XYZ, ts.Vertex(i3).XYZ) > d {
					minDot = d
				}
			}
		}
		if !ok {
			continue
		}
		if minDot+core.AngTol > ts.DotNrm {
			continue
		}

		uv := ts.UVCentroid(tID)
		if _, _, _, _, err := insert.SplitTri(ts, tID, uv, mid); err == nil {
			split++
		}
	}
	return split, nil
}
