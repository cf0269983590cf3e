// Package testface provides deterministic surface.Face doubles used by
// this repo's own tests: a flat Plane, a unit-sphere octant, and a
// circular Cylinder — enough to exercise spec.md §8's end-to-end
// scenarios A-C without depending on a real geometric kernel.
//
// Grounded on lvlath/core/test_helpers_test.go's shape (small, deterministic
// test doubles kept alongside the package under test) generalized into an
// exported package since surface.Face implementations are needed by tests
// in several packages (core, refine, bary), not just one.
package testface
