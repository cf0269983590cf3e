// Package refine_test exercises spec.md §8's end-to-end scenarios against
// the public Tessellate entry point, using the small deterministic faces
// in surface/testface.
package refine_test

import (
	"testing"

	"github.com/katalvlaran/surftess/config"
	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/refine"
	"github.com/katalvlaran/surftess/surface"
	"github.com/katalvlaran/surftess/surface/testface"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// planeQuad builds a unit square split into two triangles over a flat
// Plane face, bound to cfg.
func planeQuad(t *testing.T, cfg *config.Config) (*core.TriStruct, testface.Plane) {
	t.Helper()
	face := testface.Plane{UMin: 0, UMax: 1, VMin: 0, VMax: 1}
	ts := core.New(face, cfg, 0)

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
	ts.Segs = []core.Segment{{V0: 1, V1: 2}, {V0: 2, V1: 3}, {V0: 3, V1: 4}, {V0: 4, V1: 1}}
	return ts, face
}

// Scenario A: a flat quad with maxlen == 0 and chord == 0 is left
// structurally unchanged — only the pre-swap/angle passes may run, and
// neither can find a beneficial flip on a quad that is already the
// better diagonal once oriented consistently.
func TestTessellate_FlatQuadUnchangedWithoutSizingTargets(t *testing.T) {
	cfg, err := config.New(config.WithOrientation(1), config.WithMaxLen(0), config.WithChord(0))
	require.NoError(t, err)
	ts, _ := planeQuad(t, cfg)

	status, err := refine.Tessellate(0, ts, 0)
	require.NoError(t, err)
	require.Equal(t, core.StatusOK, status)
	require.Equal(t, 2, ts.NTris())
	require.Equal(t, 4, ts.NVerts())
}

// Scenario B (chord-driven refinement on a curved face): a sphere octant
// split into two triangles, with a tight chord tolerance, must end up
// with strictly more triangles than it started with, and every appended
// vertex must lie within the face's parameter range.
func TestTessellate_SphereOctantChordRefinementAddsPoints(t *testing.T) {
	cfg, err := config.New(config.WithOrientation(1), config.WithChord(0.05), config.WithMaxLen(0))
	require.NoError(t, err)

	face := testface.SphereOctant{}
	ts := core.New(face, cfg, 0)

	uMin, uMax, vMin, vMax, _, _ := face.Range()
	corners := [][2]float64{{uMin, vMin}, {uMax, vMin}, {uMax, vMax}, {uMin, vMax}}
	for _, c := range corners {
		d, err := face.Evaluate(surface.UV{U: c[0], V: c[1]})
		require.NoError(t, err)
		ts.AppendVertex(core.Vertex{
			XYZ:    d.XYZ,
			UV:     geom.Vec2{X: c[0], Y: c[1]},
			Kind:   core.Node,
			EdgeID: -1,
		})
	}
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 2, 3}, N: [3]int{0, 2, 0}, Close: core.CloseNotFilled})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 3, 4}, N: [3]int{0, 0, 1}, Close: core.CloseNotFilled})
	ts.Segs = []core.Segment{{V0: 1, V1: 2}, {V0: 2, V1: 3}, {V0: 3, V1: 4}, {V0: 4, V1: 1}}

	status, err := refine.Tessellate(0, ts, 0)
	require.NoError(t, err)
	require.Equal(t, core.StatusOK, status)
	require.Greater(t, ts.NTris(), 2)

	for i := 5; i <= ts.NVerts(); i++ {
		v := ts.Vertex(i)
		require.GreaterOrEqual(t, v.UV.X, uMin)
		require.LessOrEqual(t, v.UV.X, uMax)
		require.GreaterOrEqual(t, v.UV.Y, vMin)
		require.LessOrEqual(t, v.UV.Y, vMax)
	}
}

// Scenario B, continued: the chord-deviation property Phase 1/Phase 2
// exist to enforce (spec.md §8 testable property 6) — every final
// triangle's 3D centroid must sit within max(chord^2, edist^2) of the
// triangle's cached surface midpoint. A run that left Triangle.Close
// stuck at its initial state would make both phases permanent no-ops
// and this bound would only hold by the accident of Phase C's
// midpoint-mismatch splitting, so this is checked independently of NTris
// growth.
func TestTessellate_SphereOctantChordConvergence(t *testing.T) {
	cfg, err := config.New(config.WithOrientation(1), config.WithChord(0.05), config.WithMaxLen(0))
	require.NoError(t, err)

	face := testface.SphereOctant{}
	ts := core.New(face, cfg, 0)

	uMin, uMax, vMin, vMax, _, _ := face.Range()
	corners := [][2]float64{{uMin, vMin}, {uMax, vMin}, {uMax, vMax}, {uMin, vMax}}
	for _, c := range corners {
		d, err := face.Evaluate(surface.UV{U: c[0], V: c[1]})
		require.NoError(t, err)
		ts.AppendVertex(core.Vertex{
			XYZ:    d.XYZ,
			UV:     geom.Vec2{X: c[0], Y: c[1]},
			Kind:   core.Node,
			EdgeID: -1,
		})
	}
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 2, 3}, N: [3]int{0, 2, 0}, Close: core.CloseNotFilled})
	ts.AppendTriangle(core.Triangle{V: [3]int{1, 3, 4}, N: [3]int{0, 0, 1}, Close: core.CloseNotFilled})
	ts.Segs = []core.Segment{{V0: 1, V1: 2}, {V0: 2, V1: 3}, {V0: 3, V1: 4}, {V0: 4, V1: 1}}

	status, err := refine.Tessellate(0, ts, 0)
	require.NoError(t, err)
	require.Equal(t, core.StatusOK, status)

	limit := ts.Chord * ts.Chord
	if ts.Edist2 > limit {
		limit = ts.Edist2
	}
	sawFar := false
	for tID := 1; tID <= ts.NTris(); tID++ {
		tri := ts.Tri(tID)
		require.NotEqual(t, core.CloseNotFilled, tri.Close,
			"triangle %d was never classified against the nearest boundary edge", tID)
		if tri.Close != core.CloseFar {
			continue
		}
		sawFar = true
		a, b, c := ts.Vertex(tri.V[0]).XYZ, ts.Vertex(tri.V[1]).XYZ, ts.Vertex(tri.V[2]).XYZ
		centroid := r3.Scale(1.0/3, r3.Add(r3.Add(a, b), c))
		require.LessOrEqual(t, geom.DistSq3(centroid, tri.Mid), limit*1.001,
			"triangle %d centroid deviates from its cached surface midpoint beyond the chord/edist bound", tID)
	}
	require.True(t, sawFar, "expected at least one triangle classified away from the boundary")
}

// Tessellate refuses to run when the bound face reports it is being
// called from a different goroutine than it was bound to (spec.md §5).
func TestTessellate_RefusesWhenNotSameThread(t *testing.T) {
	cfg, err := config.New(config.WithOrientation(1))
	require.NoError(t, err)
	ts, _ := planeQuad(t, cfg)
	ts.Face = notSameThreadFace{Plane: ts.Face.(testface.Plane)}

	_, err = refine.Tessellate(0, ts, 0)
	require.ErrorIs(t, err, refine.ErrNotSameThread)
}

type notSameThreadFace struct {
	testface.Plane
}

func (notSameThreadFace) SameThread() bool { return false }
