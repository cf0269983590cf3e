package config

import "errors"

// Sentinel errors for config construction, every message prefixed with
// the package name (lvlath/matrix/errors.go's convention) to ease
// grepping across logs.
var (
	// ErrBadOrientation indicates WithOrientation received a value other than +1 or -1.
	ErrBadOrientation = errors.New("config: orientation must be +1 or -1")

	// ErrMissingOrientation indicates New was called without WithOrientation.
	ErrMissingOrientation = errors.New("config: orientation sign was never set")

	// ErrNegativeTolerance indicates a negative chord, maxlen, minlen, or dotnrm bound.
	ErrNegativeTolerance = errors.New("config: tolerance must be >= 0")
)
