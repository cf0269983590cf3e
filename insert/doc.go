// Package insert implements spec.md §4.5's point-insertion engines —
// SplitTri (one-to-three centroid split), SplitSide (two-to-four midpoint
// split), and CollapseEdge (the inverse: remove an interior FACE vertex by
// merging its two incident triangles away) — plus §4.6's zero-area
// cleanup pass. Every operation maintains the neighbor-consistency
// invariant (spec.md §8 property 1), refreshes the midpoint cache, and
// re-evaluates predicate.CheckOr to reset candidate mark bits on every
// affected side.
//
// Grounded on lvlath/core's invariant-after-every-mutation discipline
// (its append/remove routines), adapted from lvlath's generic
// node/edge bookkeeping to the triple-child/quad-child triangle layouts
// spec.md §4.5 specifies, and on iceisfun-gomesh's InsertPoint family for
// the overall split/repatch shape.
package insert
