package core

import "errors"

// Sentinel errors for core operations, prefixed "core:" following
// lvlath/core/types.go and lvlath/matrix/errors.go's convention.
var (
	// ErrOutOfMemory indicates a dynamic-array growth failed. Go's runtime
	// allocator panics rather than returning an error on true exhaustion;
	// this sentinel is reserved for the alloc abstraction spec.md §5
	// describes (so an injected allocator can report failure without a
	// panic) and is otherwise unused by the slice-backed implementation
	// here.
	ErrOutOfMemory = errors.New("core: out of memory")

	// ErrIndexRange indicates a vertex or triangle index fell outside
	// [1, len]. Per spec.md §7 this is always a bug: callers should treat
	// it as fatal, never retry.
	ErrIndexRange = errors.New("core: index out of range")

	// ErrDegenerate indicates a zero-area triangle or zero-length normal
	// was encountered where a non-degenerate one was required.
	ErrDegenerate = errors.New("core: degenerate triangle or normal")

	// ErrNeighborNotFound indicates RepatchNeighbor could not find the
	// expected back-pointer in a neighbor's three neighbor slots — a
	// neighbor-consistency violation (spec.md §8 property 1).
	ErrNeighborNotFound = errors.New("core: neighbor back-pointer not found")
)
