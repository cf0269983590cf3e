package heuristic

import (
	"math"

	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/insert"
	"gonum.org/v1/gonum/spatial/r3"
)

// AddSideDist implements spec.md §4.7's addSideDist: repeatedly finds the
// longest side (by squared 3D length) that exceeds its triangle's
// threshold and splits it at its midpoint, stopping once no side
// qualifies or 2*split exceeds iter. Triangles touching a non-interior
// vertex use a wider, boundary-sensitive threshold than purely interior
// triangles. Grounded on original_source/src/egadsTris.c's
// EG_addSideDist/EG_fillSides.
func AddSideDist(ts *core.TriStruct, iter int, maxlen2 float64, sideMid int) (int, error) {
	mindist := math.Max(maxlen2, ts.Devia2)
	emndist := math.Max(math.Max(mindist, ts.Edist2), ts.Eps2)

	sides := core.Sides()
	n := ts.NTris()
	area := make([]float64, n+1)
	mid := make([][3]float64, n+1)

	fillSides := func(tID int) {
		t := ts.Tri(tID)
		t.Hit = 0

		a := mindist
		for k := 0; k < 3; k++ {
			if ts.Vertex(t.V[k]).Kind != core.FaceInterior {
				a = emndist
				break
			}
		}
		area[tID] = a

		for j := 0; j < 3; j++ {
			mid[tID][j] = 0
			t2 := t.N[j]
			if t2 < tID {
				continue
			}
			a0, a1 := ts.Vertex(t.V[sides[j][0]]).XYZ, ts.Vertex(t.V[sides[j][1]]).XYZ
			mid[tID][j] = geom.DistSq3(a0, a1)
		}
	}

	for tID := 1; tID <= n; tID++ {
		fillSides(tID)
	}

	split := 0
	for {
		best, bestSide, dist := -1, -1, 0.0
		for tID := 1; tID <= ts.NTris(); tID++ {
			if ts.Tri(tID).Hit != 0 {
				continue
			}
			cmp := area[tID]
			for j := 0; j < 3; j++ {
				d := mid[tID][j]
				if d <= cmp {
					continue
				}
				if d > dist {
					best, bestSide, dist = tID, j, d
				}
			}
		}
		if best == -1 {
			return split, nil
		}

		if ts.Phase == 3 {
			t1 := ts.Tri(best)
			i1, i2 := t1.V[sides[bestSide][0]], t1.V[sides[bestSide][1]]
			xyz := r3.Scale(0.5, r3.Add(ts.Vertex(i1).XYZ, ts.Vertex(i2).XYZ))
			if Close2Edge(ts, best, xyz) {
				ts.Tri(best).Hit = 1
				continue
			}
		}

		t2 := ts.Tri(best).N[bestSide]
		_, newT1, newT2, newA, newB, err := insert.SplitSide(ts, best, bestSide, t2, sideMid)
		if err != nil {
			ts.Tri(best).Hit = 1
			continue
		}

		split++
		if 2*split > iter {
			return split, nil
		}

		Flood(ts, newT1, core.FloodDepth)
		Flood(ts, newT2, core.FloodDepth)

		area = append(area, 0, 0)
		mid = append(mid, [3]float64{}, [3]float64{})
		fillSides(newT1)
		fillSides(newT2)
		fillSides(newA)
		fillSides(newB)
	}
}
