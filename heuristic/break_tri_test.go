package heuristic_test

import (
	"testing"

	"github.com/katalvlaran/surftess/config"
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/heuristic"
	"github.com/katalvlaran/surftess/surface/testface"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// flatFan builds a 4-triangle fan around a central vertex, entirely flat
// (on the identity Plane, XYZ == (u,v,0) everywhere) so every triangle has
// the same facet area and every dihedral is exactly aligned (dot == 1).
// Every triangle has two interior sides, so all four are eligible; ties
// are broken by BreakTri's strict "> bestArea" scan toward the
// lowest-indexed triangle, making triangle 1 the deterministic pick.
func flatFan(t *testing.T) *core.TriStruct {
	t.Helper()
	cfg, err := config.New(config.WithOrientation(1))
	require.NoError(t, err)
	face := testface.Plane{UMin: -2, UMax: 2, VMin: -2, VMax: 2}
	ts := core.New(face, cfg, 0)

	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 0, Z: 0}, UV: geom.Vec2{X: 0, Y: 0}, Kind: core.FaceInterior, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 1, Y: 0, Z: 0}, UV: geom.Vec2{X: 1, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 1, Z: 0}, UV: geom.Vec2{X: 0, Y: 1}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: -1, Y: 0, Z: 0}, UV: geom.Vec2{X: -1, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: -1, Z: 0}, UV: geom.Vec2{X: 0, Y: -1}, Kind: core.Node, EdgeID: -1})

	ts.AppendTriangle(core.Triangle{V: [3]int{1, 2, 3}, N: [3]int{0, 2, 4}})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 3, 4}, N: [3]int{0, 3, 1}})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 4, 5}, N: [3]int{0, 4, 2}})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 5, 2}, N: [3]int{0, 1, 3}})

	ts.Eps2 = 0.0001
	ts.Edist2 = 0.000001
	return ts
}

func TestBreakTri_SplitsLowestIndexedTieAndFreezesTheRest(t *testing.T) {
	ts := flatFan(t)

	split, err := heuristic.BreakTri(ts, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 1, split)
	require.Equal(t, 6, ts.NTris())
	require.NoError(t, ts.CheckNeighborConsistency())
}

func TestBreakTri_NoEligibleTriangleWhenEveryOneIsBoundaryOnly(t *testing.T) {
	cfg, err := config.New(config.WithOrientation(1))
	require.NoError(t, err)
	face := testface.Plane{UMin: -2, UMax: 2, VMin: -2, VMax: 2}
	ts := core.New(face, cfg, 0)

	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 0, Z: 0}, UV: geom.Vec2{X: 0, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 1, Y: 0, Z: 0}, UV: geom.Vec2{X: 1, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 1, Y: 1, Z: 0}, UV: geom.Vec2{X: 1, Y: 1}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 1, Z: 0}, UV: geom.Vec2{X: 0, Y: 1}, Kind: core.Node, EdgeID: -1})

	// A two-triangle quad: each triangle has exactly one interior side
	// (the shared diagonal), so BreakTri's nInterior > 1 gate rejects both.
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 2, 3}, N: [3]int{0, 2, 0}})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 3, 4}, N: [3]int{0, 0, 1}})

	split, err := heuristic.BreakTri(ts, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, split)
	require.Equal(t, 2, ts.NTris())
}
