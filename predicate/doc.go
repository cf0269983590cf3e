// Package predicate implements the five pluggable swap-quality predicates
// of spec.md §4.3-§4.4: checkOr (the UV orientation/validity gate every
// swap proposal must pass) and the angUV/angXYZ/area/diag quality
// predicates the swap engine drives. Every predicate shares the signature
// Predicate(ts, t1, side, t2) bool; angUV, angXYZ and diag also publish a
// scalar accumulator through ts.Accum, as spec.md §4.4 describes, while
// checkOr and area publish none.
//
// Grounded on lvlath/algorithms's pluggable-visitor-over-shared-state shape
// (algorithms/bfs.go's Visit callback threaded through a single driver),
// generalized from a single visitor type to five interchangeable geometric
// predicates threaded through swap.Tris.
package predicate
