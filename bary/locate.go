package bary

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
)

// BaryFrame implements spec.md §4.9: for every vertex appended after the
// frame snapshot, locate a frame triangle containing its UV by exact-sign
// inTriExact and record the normalized (frame triangle, w0, w1) triple in
// ts.Bary. When no frame triangle exactly contains the vertex, the frame
// triangle with the largest min(w0,w1,w2) (the least-negative candidate)
// is recorded instead, with Fallback set and the vertex logged at
// levelFallback.
//
// ts.SnapshotFrame must have already run (spec.md §9: "the frame snapshot
// must be taken before any collapse"); BaryFrame only reads ts.Frame, it
// never mutates the triangulation itself.
func BaryFrame(ts *core.TriStruct, outLevel int) error {
	if len(ts.Bary) < ts.NVerts() {
		grown := make([]core.BaryRecord, ts.NVerts())
		copy(grown, ts.Bary)
		ts.Bary = grown
	}

	nFrameTris := ts.NFrameTris()
	for i := ts.NFrameVerts + 1; i <= ts.NVerts(); i++ {
		p := ts.Vertex(i).UV

		var (
			found           bool
			bestTri         int
			bestW           [3]float64
			bestMin         float64
			bestMinAssigned bool
		)

		for j := 0; j < nFrameTris; j++ {
			i0, i1, i2 := ts.FrameTriVerts(j)
			uv0, uv1, uv2 := ts.Vertex(i0).UV, ts.Vertex(i1).UV, ts.Vertex(i2).UV

			status, w := geom.InTriExact(uv0, uv1, uv2, p)
			if status == geom.StatusSuccess {
				ts.Bary[i-1] = core.BaryRecord{FrameTri: j + 1, W0: w[0], W1: w[1], Fallback: false}
				found = true
				break
			}

			m := geom.MinWeight(w)
			if !bestMinAssigned || m > bestMin {
				bestMin, bestMinAssigned = m, true
				bestTri, bestW = j+1, w
			}
		}

		if found {
			continue
		}

		logf(outLevel, levelFallback, "bary: vertex %d: no containing frame triangle, using least-negative candidate %d", i, bestTri)
		ts.Bary[i-1] = core.BaryRecord{FrameTri: bestTri, W0: bestW[0], W1: bestW[1], Fallback: true}
	}
	return nil
}

// BaryTess implements spec.md §8 property 5's reprojection: reconstruct
// vertex i's UV as w0*uv[i0] + w1*uv[i1] + (1-w0-w1)*uv[i2], where
// (i0,i1,i2) is the frame triangle ts.Bary[i-1] recorded. Frame vertices
// (i <= ts.NFrameVerts) have no record and reproject to their own stored
// UV. Returns ErrNoBaryRecord if BaryFrame has not recorded vertex i.
func BaryTess(ts *core.TriStruct, i int) (geom.Vec2, error) {
	if err := ts.CheckVertexIndex(i); err != nil {
		return geom.Vec2{}, err
	}
	if i <= ts.NFrameVerts {
		return ts.Vertex(i).UV, nil
	}
	if i > len(ts.Bary) || ts.Bary[i-1].FrameTri == 0 {
		return geom.Vec2{}, ErrNoBaryRecord
	}

	rec := ts.Bary[i-1]
	i0, i1, i2 := ts.FrameTriVerts(rec.FrameTri - 1)
	uv0, uv1, uv2 := ts.Vertex(i0).UV, ts.Vertex(i1).UV, ts.Vertex(i2).UV
	w2 := 1 - rec.W0 - rec.W1

	return geom.Vec2{
		X: rec.W0*uv0.X + rec.W1*uv1.X + w2*uv2.X,
		Y: rec.W0*uv0.Y + rec.W1*uv1.Y + w2*uv2.Y,
	}, nil
}
