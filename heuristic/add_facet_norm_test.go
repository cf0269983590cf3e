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

// bentFan builds a 4-triangle fan around a central vertex C, flat in UV
// but folded in XYZ along two opposite spokes (O1-C-O4 and C-O3... see
// below), so that two of the four fan edges are coplanar (dihedral 1) and
// the other two carry a genuine ~33 degree fold. The face itself is the
// flat identity Plane — only the vertices' XYZ is bent, which is all
// AddFacetNorm's dihedral computation looks at.
func bentFan(t *testing.T) *core.TriStruct {
	t.Helper()
	cfg, err := config.New(config.WithOrientation(1))
	require.NoError(t, err)
	face := testface.Plane{UMin: -2, UMax: 2, VMin: -2, VMax: 2}
	ts := core.New(face, cfg, 0)

	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 0, Z: 0}, UV: geom.Vec2{X: 0, Y: 0}, Kind: core.FaceInterior, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 1, Y: 0, Z: 0}, UV: geom.Vec2{X: 1, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: 1, Z: 0.3}, UV: geom.Vec2{X: 0, Y: 1}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: -1, Y: 0, Z: 0}, UV: geom.Vec2{X: -1, Y: 0}, Kind: core.Node, EdgeID: -1})
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 0, Y: -1, Z: 0.3}, UV: geom.Vec2{X: 0, Y: -1}, Kind: core.Node, EdgeID: -1})

	ts.AppendTriangle(core.Triangle{
		V: [3]int{1, 2, 3}, N: [3]int{0, 2, 4}, Close: core.CloseFar,
		Mid: r3.Vec{X: 1.0 / 3, Y: 1.0 / 3, Z: 0},
	})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 3, 4}, N: [3]int{0, 3, 1}, Close: core.CloseFar})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 4, 5}, N: [3]int{0, 4, 2}, Close: core.CloseFar})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 5, 2}, N: [3]int{0, 1, 3}, Close: core.CloseFar})

	ts.DotNrm = 0.95
	ts.Edist2 = 0.000001
	return ts
}

func TestAddFacetNorm_SplitsFoldedSpokeOnly(t *testing.T) {
	ts := bentFan(t)

	split, err := heuristic.AddFacetNorm(ts)
	require.NoError(t, err)
	require.Equal(t, 1, split)
	require.Equal(t, 6, ts.NTris())
	require.NoError(t, ts.CheckNeighborConsistency())
}

func TestAddFacetNorm_SkipsWhenDotNrmIsLenient(t *testing.T) {
	ts := bentFan(t)
	ts.DotNrm = 0.5 // 0.835 > 0.5: the fold is within tolerance.

	split, err := heuristic.AddFacetNorm(ts)
	require.NoError(t, err)
	require.Equal(t, 0, split)
	require.Equal(t, 4, ts.NTris())
}
