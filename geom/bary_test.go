// Package geom_test verifies vector algebra and exact-sign inclusion
// contracts.
package geom_test

import (
	"testing"

	"github.com/katalvlaran/surftess/geom"
	"github.com/stretchr/testify/require"
)

// TestInTriExact_Inside VERIFIES that a point strictly inside a
// counter-clockwise triangle reports StatusSuccess with weights summing to
// one.
//
// Implementation:
//   - Stage 1: build a CCW unit-right triangle (0,0),(1,0),(0,1).
//   - Stage 2: query the centroid.
//   - Stage 3: assert StatusSuccess and weight sum ~= 1.
//
// Determinism: deterministic. Complexity: O(1).
func TestInTriExact_Inside(t *testing.T) {
	a := geom.Vec2{X: 0, Y: 0}
	b := geom.Vec2{X: 1, Y: 0}
	c := geom.Vec2{X: 0, Y: 1}
	centroid := geom.Vec2{X: 1.0 / 3, Y: 1.0 / 3}

	status, w := geom.InTriExact(a, b, c, centroid)
	require.Equal(t, geom.StatusSuccess, status)
	require.InDelta(t, 1.0, w[0]+w[1]+w[2], 1e-12)
	require.InDelta(t, 1.0/3, w[0], 1e-9)
}

// TestInTriExact_Outside VERIFIES a point outside the triangle reports
// StatusOutside.
func TestInTriExact_Outside(t *testing.T) {
	a := geom.Vec2{X: 0, Y: 0}
	b := geom.Vec2{X: 1, Y: 0}
	c := geom.Vec2{X: 0, Y: 1}
	outside := geom.Vec2{X: 5, Y: 5}

	status, _ := geom.InTriExact(a, b, c, outside)
	require.Equal(t, geom.StatusOutside, status)
}

// TestInTriExact_Degenerate VERIFIES a degenerate (collinear) triangle
// reports StatusDegenerate.
func TestInTriExact_Degenerate(t *testing.T) {
	a := geom.Vec2{X: 0, Y: 0}
	b := geom.Vec2{X: 1, Y: 0}
	c := geom.Vec2{X: 2, Y: 0}
	p := geom.Vec2{X: 1, Y: 0}

	status, _ := geom.InTriExact(a, b, c, p)
	require.Equal(t, geom.StatusDegenerate, status)
}

// TestArea2D_Sign VERIFIES Area2D's sign convention: positive for
// counter-clockwise winding, negative for clockwise.
func TestArea2D_Sign(t *testing.T) {
	a := geom.Vec2{X: 0, Y: 0}
	b := geom.Vec2{X: 1, Y: 0}
	c := geom.Vec2{X: 0, Y: 1}

	require.Greater(t, geom.Area2D(a, b, c), 0.0)
	require.Less(t, geom.Area2D(a, c, b), 0.0)
}
