package insert_test

import (
	"testing"

	"github.com/katalvlaran/surftess/config"
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/insert"
	"github.com/katalvlaran/surftess/surface/testface"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// squareQuad builds a unit square split along diagonal (1,3): t1=(1,2,3),
// t2=(1,3,4), shared side 1 of t1 / side 2 of t2.
func squareQuad(t *testing.T) *core.TriStruct {
	t.Helper()
	cfg, err := config.New(config.WithOrientation(1))
	require.NoError(t, err)

	face := testface.Plane{UMin: -1, UMax: 2, VMin: -1, VMax: 2}
	ts := core.New(face, cfg, 0)
	ts.VoverU = 1

	corners := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, c := range corners {
		ts.AppendVertex(core.Vertex{
			XYZ:    r3.Vec{X: c[0], Y: c[1], Z: 0},
			UV:     geom.Vec2{X: c[0], Y: c[1]},
			Kind:   core.Node,
			EdgeID: -1,
		})
	}
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 2, 3}, N: [3]int{0, 2, 0}, Close: core.CloseNotFilled})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 3, 4}, N: [3]int{0, 0, 1}, Close: core.CloseNotFilled})
	return ts
}

func TestSplitSide_MidpointSplitPreservesNeighborConsistency(t *testing.T) {
	ts := squareQuad(t)

	node, newT1, newT2, newA, newB, err := insert.SplitSide(ts, 1, 1, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 5, node)
	require.Equal(t, 1, newT1)
	require.Equal(t, 2, newT2)
	require.Equal(t, 3, newA)
	require.Equal(t, 4, newB)

	require.NoError(t, ts.CheckNeighborConsistency())

	// All four children reference the new vertex.
	for _, tID := range []int{newT1, newT2, newA, newB} {
		v := ts.Tri(tID).V
		require.Contains(t, []int{v[0], v[1], v[2]}, node)
	}

	// The new vertex sits at the shared-edge (1,3) midpoint, (0.5, 0.5).
	got := ts.Vertex(node).UV
	require.InDelta(t, 0.5, got.X, 1e-9)
	require.InDelta(t, 0.5, got.Y, 1e-9)
}

func TestSplitSide_ExternalNeighborsRepatchToCorrectChild(t *testing.T) {
	ts := squareQuad(t)

	// A triangle sharing t1's edge (vertex2, vertex1) — opposite t1's third
	// slot (vertex3) — so it owns t1's N[2] back-pointer before the split.
	ts.AppendVertex(core.Vertex{XYZ: r3.Vec{X: 2, Y: -1, Z: 0}, UV: geom.Vec2{X: 2, Y: -1}, Kind: core.Node, EdgeID: -1})
	ext := ts.AppendTriangle(core.Triangle{V: [3]int{2, 1, 5}, N: [3]int{0, 0, 1}, Close: core.CloseNotFilled})
	ts.Tri(1).N[2] = ext

	_, _, _, newA, _, err := insert.SplitSide(ts, 1, 1, 2, 0)
	require.NoError(t, err)
	require.NoError(t, ts.CheckNeighborConsistency())

	// n11 (t1's neighbor across edge (i0,i2), i.e. (vertex2, vertex1)) must
	// now be owned by newA, not t1ID.
	found := false
	for s := 0; s < 3; s++ {
		if ts.Tri(newA).N[s] == ext {
			found = true
		}
	}
	require.True(t, found)
}
