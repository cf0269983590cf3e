package refine

import (
	"errors"

	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/heuristic"
	"github.com/katalvlaran/surftess/midhash"
	"github.com/katalvlaran/surftess/surface"
	"gonum.org/v1/gonum/spatial/r3"
)

// fillMidIgnoringExtrapolation refreshes tID's cached surface midpoint and,
// on success, reclassifies Triangle.Close against the nearest boundary edge
// (heuristic.CloseEdge), mirroring egadsTris.c's EG_fillMid: the original
// always recomputes both the midpoint and its close-to-boundary state
// together, never just one.
func fillMidIgnoringExtrapolation(ts *core.TriStruct, tID int) error {
	err := ts.FillMid(tID)
	if err != nil {
		if errors.Is(err, surface.ErrExtrapolation) {
			return nil
		}
		return err
	}
	t := ts.Tri(tID)
	if heuristic.CloseEdge(ts, tID, t.Mid) {
		t.Close = core.CloseNear
	} else {
		t.Close = core.CloseFar
	}
	return nil
}

// fillAllMid refreshes every triangle's cached surface midpoint (spec.md
// §4.8 Phase 1's "fillMid for every triangle").
func fillAllMid(ts *core.TriStruct) error {
	for i := 1; i <= ts.NTris(); i++ {
		if err := fillMidIgnoringExtrapolation(ts, i); err != nil {
			return err
		}
	}
	return nil
}

// maxPtsReached reports whether the configured point budget (spec.md §6)
// has been met.
func maxPtsReached(ts *core.TriStruct) bool {
	if cap, ok := ts.Config.TotalCap(); ok && ts.NVerts() >= cap {
		return true
	}
	if cap, ok := ts.Config.InteriorCap(); ok {
		interior := 0
		for i := 1; i <= ts.NVerts(); i++ {
			if ts.Vertex(i).Kind == core.FaceInterior {
				interior++
			}
		}
		if interior >= cap {
			return true
		}
	}
	return false
}

// vertexNormals computes one unit facet-normal average per vertex (vertex
// i at aux[i-1], the indexing heuristic.SplitInter reads) by summing the
// facet normals of every
// triangle touching that vertex — Phase X's "per-vertex unit normals aux"
// (spec.md §4.8).
func vertexNormals(ts *core.TriStruct) []r3.Vec {
	sums := make([]r3.Vec, ts.NVerts()+1)
	for i := 1; i <= ts.NTris(); i++ {
		t := ts.Tri(i)
		a, b, c := ts.Vertex(t.V[0]).XYZ, ts.Vertex(t.V[1]).XYZ, ts.Vertex(t.V[2]).XYZ
		n := geom.FacetNormal(a, b, c)
		for _, v := range t.V {
			sums[v] = r3.Add(sums[v], n)
		}
	}
	aux := make([]r3.Vec, ts.NVerts())
	for i := 1; i <= ts.NVerts(); i++ {
		if l := r3.Norm(sums[i]); l > 0 {
			aux[i-1] = r3.Scale(1/l, sums[i])
		}
	}
	return aux
}

// reconcileMid replaces every triangle's cached mid/close state with the
// hash's cached value when its current vertex triple was seen before a
// flip discarded it, recomputing only when absent — spec.md §4.8 Phase 1's
// "reconcile mid from hash (promote cached XYZ when present; else
// recompute)".
func reconcileMid(ts *core.TriStruct, hash *midhash.Table) error {
	for i := 1; i <= ts.NTris(); i++ {
		t := ts.Tri(i)
		if v, ok := hash.Find(t.V[0], t.V[1], t.V[2]); ok {
			t.Mid = v.XYZ
			if v.Close {
				t.Close = core.CloseNear
			} else {
				t.Close = core.CloseFar
			}
			continue
		}
		if err := fillMidIgnoringExtrapolation(ts, i); err != nil {
			return err
		}
	}
	return nil
}
