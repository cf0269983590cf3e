package surface

import "errors"

// Sentinel errors returned by a Face implementation's Evaluate/InverseEvaluate.
var (
	// ErrExtrapolation indicates the requested (u,v) or (x,y,z) lies outside
	// the face's valid domain; the caller logs and skips the site
	// (spec.md §7).
	ErrExtrapolation = errors.New("surface: evaluation point extrapolates outside face domain")
)
