package heuristic

import (
	"math"

	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/insert"
)

// AddFacetDist implements spec.md §4.7's addFacetDist: a single linear
// pass that splits every eligible triangle whose 3D centroid deviates
// from the cached surface midpoint by more than max(chord², devia²), at
// that cached midpoint. Grounded on
// original_source/src/egadsTris.c's EG_addFacetDist.
func AddFacetDist(ts *core.TriStruct) (int, error) {
	cmp := math.Max(ts.Chord*ts.Chord, ts.Devia2)
	sides := core.Sides()

	split := 0
	total := ts.NTris()
	for tID := 1; tID <= total; tID++ {
		t := ts.Tri(tID)
		if t.Close != core.CloseFar {
			continue
		}

		v0, v1, v2 := ts.Vertex(t.V[0]), ts.Vertex(t.V[1]), ts.Vertex(t.V[2])

		cx := (v0.XYZ.X + v1.XYZ.X + v2.XYZ.X) / 3
		cy := (v0.XYZ.Y + v1.XYZ.Y + v2.XYZ.Y) / 3
		cz := (v0.XYZ.Z + v1.XYZ.Z + v2.XYZ.Z) / 3
		dx, dy, dz := cx-t.Mid.X, cy-t.Mid.Y, cz-t.Mid.Z
		if dx*dx+dy*dy+dz*dz <= cmp {
			continue
		}

		if geom.MaxAngle2D(v0.UV, v1.UV, v2.UV) > core.DevAngle {
			continue
		}

		mid := t.Mid
		if dotNorm(v0.XYZ, v1.XYZ, mid, v2.XYZ) < 0 ||
			dotNorm(v1.XYZ, v2.XYZ, mid, v0.XYZ) < 0 ||
			dotNorm(v2.XYZ, v0.XYZ, mid, v1.XYZ) < 0 {
			continue
		}

		tooShort := false
		for _, pair := range sides {
			a, b := ts.Vertex(t.V[pair[0]]).XYZ, ts.Vertex(t.V[pair[1]]).XYZ
			if geom.DistSq3(a, b) <= cmp {
				tooShort = true
				break
			}
		}
		if tooShort {
			continue
		}

		uv := ts.UVCentroid(tID)
		if _, _, _, _, err := insert.SplitTri(ts, tID, uv, mid); err == nil {
			split++
		}
	}
	return split, nil
}

