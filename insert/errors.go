package insert

import "errors"

// ErrRange indicates a geometric guard rejected the proposed insertion —
// non-fatal; callers loop and try the next candidate (spec.md §7's
// RangeError kind).
var ErrRange = errors.New("insert: rejected by geometric guard")
