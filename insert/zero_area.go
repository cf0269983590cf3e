package insert

import (
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// ZeroAreaCleanup implements spec.md §4.6: for each triangle whose 3D
// facet normal has exactly zero magnitude, it looks for the side whose two
// endpoints carry identical (EdgeID, EdgeParamIndex) pairs — the same
// boundary parameter sampled twice, typically at a seam or degenerate-face
// pole (spec.md §8 scenario D) — and collapses that edge via CollapseEdge
// when its UV span is within 1e-4 of the face's parameter range in both u
// and v.
//
// A faithful port must compare both elements of the pair with equality;
// egadsTris.c carried a `pti1[1] = pti2[1]` assignment where an `==`
// comparison was clearly intended (spec.md §9), which this implementation
// does not reproduce.
func ZeroAreaCleanup(ts *core.TriStruct) error {
	uMin, uMax, vMin, vMax, _, _ := ts.Face.Range()
	uTol := 1e-4 * (uMax - uMin)
	vTol := 1e-4 * (vMax - vMin)

	sides := core.Sides()
	for tID := 1; tID <= ts.NTris(); {
		t := ts.Tri(tID)
		a, b, c := ts.Vertex(t.V[0]).XYZ, ts.Vertex(t.V[1]).XYZ, ts.Vertex(t.V[2]).XYZ
		if r3.Norm(geom.FacetNormal(a, b, c)) != 0 {
			tID++
			continue
		}

		node, tnode, collapse := 0, 0, false
		for _, pair := range sides {
			v1, v2 := ts.Vertex(t.V[pair[0]]), ts.Vertex(t.V[pair[1]])
			if v1.EdgeID < 0 || v2.EdgeID < 0 {
				continue
			}
			if v1.EdgeID != v2.EdgeID || v1.EdgeParamIndex != v2.EdgeParamIndex {
				continue
			}
			du, dv := v1.UV.X-v2.UV.X, v1.UV.Y-v2.UV.Y
			if du < 0 {
				du = -du
			}
			if dv < 0 {
				dv = -dv
			}
			if du < uTol && dv < vTol {
				node, tnode, collapse = t.V[pair[0]], t.V[pair[1]], true
				break
			}
		}

		if !collapse {
			tID++
			continue
		}
		if err := CollapseEdge(ts, node, tnode, 1); err != nil {
			return err
		}
		// tID's slot now holds whatever triangle the collapse moved into
		// it (or the next surviving triangle); re-examine without
		// advancing.
	}
	return nil
}
