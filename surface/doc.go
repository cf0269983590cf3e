// Package surface declares the interface this core consumes from its
// environment: a parametric face's (u,v) -> (x,y,z) evaluator, its inverse,
// its parameter range, a same-thread concurrency guard, and a verbosity
// knob (spec.md §6). Nothing in this package implements a real surface;
// that is out of scope (spec.md §1's OUT OF SCOPE list) and lives in the
// caller's geometric kernel. surface/testface provides a deterministic
// double used by this repo's own tests.
//
// Grounded on lvlath/core/api.go's thin-facade style: an interface package
// carries no algorithmic weight of its own.
package surface
