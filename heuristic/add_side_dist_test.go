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

// unitSquareQuad is a flat unit square split along its (0,0)-(1,1)
// diagonal into two triangles, the diagonal being the only side whose
// squared length the fillSides pre-pass caches as nonzero (every other
// side is a mesh boundary, and a side's cache only lives on the
// lower-indexed of its two triangles).
func unitSquareQuad(t *testing.T) *core.TriStruct {
	t.Helper()
	cfg, err := config.New(config.WithOrientation(1))
	require.NoError(t, err)
	face := testface.Plane{UMin: -2, UMax: 2, VMin: -2, VMax: 2}
	ts := core.New(face, cfg, 0)

	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 0, Z: 0}, UV: geom.Vec2{X: 0, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 1, Y: 0, Z: 0}, UV: geom.Vec2{X: 1, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 1, Y: 1, Z: 0}, UV: geom.Vec2{X: 1, Y: 1}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 1, Z: 0}, UV: geom.Vec2{X: 0, Y: 1}, Kind: core.Node, EdgeID: -1})

	ts.AppendTriangle(core.Triangle{V: [3]int{1, 2, 3}, N: [3]int{0, 2, 0}})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 3, 4}, N: [3]int{0, 0, 1}})

	ts.Phase = 0
	return ts
}

func TestAddSideDist_SplitsTheDiagonalThenStops(t *testing.T) {
	ts := unitSquareQuad(t)

	split, err := heuristic.AddSideDist(ts, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, split)
	require.Equal(t, 4, ts.NTris())
	require.Equal(t, 5, ts.NVerts())
	require.NoError(t, ts.CheckNeighborConsistency())
}

func TestAddSideDist_SkipsWhenThresholdExceedsEverySide(t *testing.T) {
	ts := unitSquareQuad(t)

	// The diagonal is length sqrt(2), squared 2.0 — a maxlen2 above that
	// leaves every side ineligible.
	split, err := heuristic.AddSideDist(ts, 10, 3, 0)
	require.NoError(t, err)
	require.Equal(t, 0, split)
	require.Equal(t, 2, ts.NTris())
}
