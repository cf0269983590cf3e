package midhash

import "errors"

// Sentinel errors for midhash operations.
var (
	// ErrOutOfMemory indicates a bucket allocation failed. In this Go port
	// allocation is handled by the runtime allocator and this sentinel is
	// reserved for callers who wrap Add's result through an injected
	// allocator abstraction (spec.md §5); Add itself never returns it.
	ErrOutOfMemory = errors.New("midhash: out of memory")
)
