// Package midhash_test verifies the midpoint cache's contracts.
package midhash_test

import (
	"testing"

	"github.com/katalvlaran/surftess/midhash"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestTable_SizeIsPrime VERIFIES Create always sizes to a tabulated prime
// at or above the requested capacity.
func TestTable_SizeIsPrime(t *testing.T) {
	tb := midhash.Create(100)
	require.Equal(t, 131, tb.Size())
	tb.Destroy()
}

// TestTable_AddFindOrderIndependent VERIFIES the key triple is
// order-independent: any permutation of (i0,i1,i2) finds the same entry.
//
// Implementation:
//   - Stage 1: Add(1,2,3,...).
//   - Stage 2: Find with every permutation of (1,2,3) and assert the same
//     Value is returned.
//
// Determinism: deterministic. Complexity: O(1) per lookup.
func TestTable_AddFindOrderIndependent(t *testing.T) {
	tb := midhash.Create(16)
	defer tb.Destroy()

	xyz := r3.Vec{X: 1, Y: 2, Z: 3}
	res := tb.Add(3, 1, 2, true, xyz)
	require.Equal(t, midhash.Added, res)

	perms := [][3]int{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}}
	for _, p := range perms {
		v, ok := tb.Find(p[0], p[1], p[2])
		require.True(t, ok)
		require.Equal(t, xyz, v.XYZ)
		require.True(t, v.Close)
	}
}

// TestTable_AddAlreadyPresent VERIFIES re-adding the same key triple is a
// no-op that reports AlreadyPresent.
func TestTable_AddAlreadyPresent(t *testing.T) {
	tb := midhash.Create(16)
	defer tb.Destroy()

	require.Equal(t, midhash.Added, tb.Add(1, 2, 3, false, r3.Vec{}))
	require.Equal(t, midhash.AlreadyPresent, tb.Add(3, 2, 1, true, r3.Vec{X: 9}))

	v, ok := tb.Find(1, 2, 3)
	require.True(t, ok)
	require.False(t, v.Close)
	require.Equal(t, r3.Vec{}, v.XYZ)
}

// TestTable_FindMissing VERIFIES Find reports ok=false for an uncached
// triple.
func TestTable_FindMissing(t *testing.T) {
	tb := midhash.Create(16)
	defer tb.Destroy()

	_, ok := tb.Find(1, 2, 3)
	require.False(t, ok)
}
