package refine

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// initBoundaryTolerances implements spec.md §4.8's initialization: derive
// devia2/VoverU from the boundary vertices' evaluate-vs-stored discrepancy
// and first-derivative magnitudes, derive edist2/eps2 from the boundary
// segment lengths, then enforce the documented floors. At the point this
// runs, every vertex in ts is still a boundary vertex (Node or
// EdgeInterior) — refinement has not yet appended any FaceInterior vertex.
func initBoundaryTolerances(ts *core.TriStruct, outLevel int) {
	devia2s := make([]float64, 0, ts.NVerts())
	var sumDu, sumDv float64

	for i := 1; i <= ts.NVerts(); i++ {
		v := ts.Vertex(i)
		d, err := ts.Face.Evaluate(core.ToSurfaceUV(v.UV))
		if err != nil {
			logf(outLevel, levelExtrapolation, "refine: init: vertex %d extrapolates, skipped", i)
			continue
		}
		devia2s = append(devia2s, geom.DistSq3(v.XYZ, d.XYZ))
		sumDu += r3.Norm(d.Du)
		sumDv += r3.Norm(d.Dv)
	}

	var devia2 float64
	if len(devia2s) > 0 {
		devia2 = floats.Max(devia2s)
	}
	// "Twice the size used in egadsTess" — preserved verbatim (spec.md §9).
	devia2 /= 256

	voverU := 1.0
	if sumDu > 0 {
		voverU = sumDv / sumDu
	}

	segLens := make([]float64, 0, len(ts.Segs))
	for _, seg := range ts.Segs {
		segLens = append(segLens, geom.DistSq3(ts.Vertex(seg.V0).XYZ, ts.Vertex(seg.V1).XYZ))
	}

	var edist2, eps2 float64
	if len(segLens) > 0 {
		edist2 = floats.Sum(segLens) / float64(len(segLens))
		eps2 = floats.Min(segLens) / 4
	}

	minlen2 := ts.Config.MinLen() * ts.Config.MinLen()
	if eps2 < devia2 {
		eps2 = devia2
	}
	if eps2 < minlen2 {
		eps2 = minlen2
	}
	if devia2 < minlen2 {
		devia2 = minlen2
	}

	ts.Devia2 = devia2
	ts.VoverU = voverU
	ts.Edist2 = edist2
	ts.Eps2 = eps2
	ts.MaxLen = ts.Config.MaxLen()
	ts.Chord = ts.Config.Chord()
	ts.DotNrm = ts.Config.DotNorm()
	ts.MinLen = ts.Config.MinLen()
}

// markInteriorCandidates sets the swap-candidate bit on every side that
// has a neighbor (spec.md §4.8: "mark every interior edge as a
// candidate").
func markInteriorCandidates(ts *core.TriStruct) {
	for i := 1; i <= ts.NTris(); i++ {
		t := ts.Tri(i)
		for s := 0; s < 3; s++ {
			t.SetCandidate(s, t.N[s] > 0)
		}
	}
}

// countBadOrientation returns how many triangles' signed UV area
// disagrees with ts.OrUV — the §7 "bad triangle" count badStart's
// continuation-mode trigger is based on.
func countBadOrientation(ts *core.TriStruct) int {
	bad := 0
	or := float64(ts.OrUV)
	for i := 1; i <= ts.NTris(); i++ {
		t := ts.Tri(i)
		a := geom.Area2D(ts.Vertex(t.V[0]).UV, ts.Vertex(t.V[1]).UV, ts.Vertex(t.V[2]).UV)
		if a*or <= 0 {
			bad++
		}
	}
	return bad
}
