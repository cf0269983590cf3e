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

// cylinderQuad lays a unit-radius, unit-height quarter-turn of Cylinder
// out as two triangles sharing the V1-V3 diagonal, the same squareQuad
// split layout used by the insert package's tests. The cached Mid of each
// triangle is set to its own forward-evaluated UV centroid, as refine
// would leave it after an earlier pass.
func cylinderQuad(t *testing.T) *core.TriStruct {
	t.Helper()
	cfg, err := config.New(config.WithOrientation(1))
	require.NoError(t, err)
	face := testface.Cylinder{R: 1, H: 1}
	ts := core.New(face, cfg, 0)

	const halfPi = 1.5707963267948966

	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 1, Y: 0, Z: 0}, UV: geom.Vec2{X: 0, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 1, Z: 0}, UV: geom.Vec2{X: halfPi, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 1, Z: 1}, UV: geom.Vec2{X: halfPi, Y: 1}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 1, Y: 0, Z: 1}, UV: geom.Vec2{X: 0, Y: 1}, Kind: core.Node, EdgeID: -1})

	ts.AppendTriangle(core.Triangle{
		V: [3]int{1, 2, 3}, N: [3]int{0, 2, 0}, Close: core.CloseFar,
		Mid: r3.Vec{X: 0.5, Y: 0.8660254037844387, Z: 1.0 / 3},
	})
	ts.AppendTriangle(core.Triangle{
		V: [3]int{1, 3, 4}, N: [3]int{0, 0, 1}, Close: core.CloseFar,
		Mid: r3.Vec{X: 0.8660254037844387, Y: 0.5, Z: 2.0 / 3},
	})

	ts.Chord = 0
	ts.Devia2 = 0
	return ts
}

func TestAddFacetDist_SplitsBothCurvedTriangles(t *testing.T) {
	ts := cylinderQuad(t)

	split, err := heuristic.AddFacetDist(ts)
	require.NoError(t, err)
	require.Equal(t, 2, split)
	require.Equal(t, 6, ts.NTris())
	require.Equal(t, 6, ts.NVerts())
	require.NoError(t, ts.CheckNeighborConsistency())
}

func TestAddFacetDist_SkipsFlatQuad(t *testing.T) {
	cfg, err := config.New(config.WithOrientation(1))
	require.NoError(t, err)
	face := testface.Plane{UMin: -2, UMax: 5, VMin: -2, VMax: 5}
	ts := core.New(face, cfg, 0)

	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 0, Z: 0}, UV: geom.Vec2{X: 0, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 3, Y: 0, Z: 0}, UV: geom.Vec2{X: 3, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 3, Y: 3, Z: 0}, UV: geom.Vec2{X: 3, Y: 3}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 3, Z: 0}, UV: geom.Vec2{X: 0, Y: 3}, Kind: core.Node, EdgeID: -1})

	// Exact-integer coordinates make the forward-evaluated centroid match
	// the averaged corners bit for bit, so the deviation is exactly zero
	// regardless of floating rounding.
	ts.AppendTriangle(core.Triangle{
		V: [3]int{1, 2, 3}, N: [3]int{0, 2, 0}, Close: core.CloseFar,
		Mid: r3.Vec{X: 2, Y: 1, Z: 0},
	})
	ts.AppendTriangle(core.Triangle{
		V: [3]int{1, 3, 4}, N: [3]int{0, 0, 1}, Close: core.CloseFar,
		Mid: r3.Vec{X: 1, Y: 2, Z: 0},
	})
	ts.Chord = 0
	ts.Devia2 = 0

	split, err := heuristic.AddFacetDist(ts)
	require.NoError(t, err)
	require.Equal(t, 0, split)
	require.Equal(t, 2, ts.NTris())
}
