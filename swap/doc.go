// Package swap implements spec.md §4.4's flip rewrite and the swapTris
// sweep driver: repeatedly applies a predicate.Predicate to every marked
// interior edge until a sweep produces no swaps or the sweep cap
// (core.MaxSweeps) is reached, maintaining the hit/mark bookkeeping and
// midpoint-hash promotion the driver depends on.
//
// Grounded on lvlath/algorithms's fixed-point iteration shape (a visitor
// driven repeatedly over a graph's edges until convergence), generalized
// from a single visitor to a pluggable predicate.Predicate and from graph
// edges to triangle sides.
package swap
