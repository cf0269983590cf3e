// Package config_test verifies Config construction contracts.
package config_test

import (
	"testing"

	"github.com/katalvlaran/surftess/config"
	"github.com/stretchr/testify/require"
)

// TestNew_RequiresOrientation VERIFIES that New rejects a Config built
// without WithOrientation.
//
// Implementation:
//   - Stage 1: call New() with no options.
//   - Stage 2: assert ErrMissingOrientation.
//   - Stage 3: call New(WithOrientation(1)) and assert success.
//
// Determinism: deterministic, no randomness.
// Complexity: O(1).
func TestNew_RequiresOrientation(t *testing.T) {
	_, err := config.New()
	require.ErrorIs(t, err, config.ErrMissingOrientation)

	c, err := config.New(config.WithOrientation(1))
	require.NoError(t, err)
	require.Equal(t, 1, c.Orientation())
}

// TestWithOrientation_Panics VERIFIES the fail-fast option-constructor
// contract borrowed from lvlath/builder: invalid orientation panics
// immediately rather than surfacing as a runtime error later.
func TestWithOrientation_Panics(t *testing.T) {
	require.Panics(t, func() { config.WithOrientation(0) })
	require.Panics(t, func() { config.WithOrientation(2) })
}

// TestNegativeTolerancesPanic VERIFIES WithChord/WithMaxLen/WithMinLen
// reject negative bounds at construction time.
func TestNegativeTolerancesPanic(t *testing.T) {
	require.Panics(t, func() { config.WithChord(-1) })
	require.Panics(t, func() { config.WithMaxLen(-1) })
	require.Panics(t, func() { config.WithMinLen(-1) })
	require.Panics(t, func() { config.WithDotNorm(-2) })
}

// TestMaxPointsCaps VERIFIES InteriorCap/TotalCap interpret the signed
// MaxPoints value per spec.md §6.
func TestMaxPointsCaps(t *testing.T) {
	c, err := config.New(config.WithOrientation(1), config.WithMaxPoints(100))
	require.NoError(t, err)
	total, ok := c.TotalCap()
	require.True(t, ok)
	require.Equal(t, 100, total)
	_, ok = c.InteriorCap()
	require.False(t, ok)

	c, err = config.New(config.WithOrientation(1), config.WithMaxPoints(-10))
	require.NoError(t, err)
	interior, ok := c.InteriorCap()
	require.True(t, ok)
	require.Equal(t, 8, interior)
	_, ok = c.TotalCap()
	require.False(t, ok)
}
