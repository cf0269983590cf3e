// Package core defines the central data model of the triangulation
// refinement engine: Vertex, Triangle, and the TriStruct aggregate that
// owns them (spec.md §3), plus the O(1) neighbor-navigation and
// back-pointer-maintenance routines every mutating operation in the
// predicate/swap/insert/heuristic/refine packages relies on (spec.md
// §4.2).
//
// Storage model: verts and tris are dynamic arrays ("chunked" geometric
// growth, spec.md §3's "fixed-size chunk" policy) indexed 0-based
// internally; Triangle.V stores 1-based vertex indices and Triangle.N
// stores 1-based neighbor triangle indices, with 0 or negative meaning
// "no neighbor" (a boundary edge, or — during the initial triangulation
// hand-off, before the frame snapshot — a negative boundary-segment id,
// which the frame snapshot preserves verbatim per spec.md §9's design
// note).
//
// Grounded on lvlath/core's mutex-guarded-aggregate-with-sentinel-errors
// shape (types.go) and its back-pointer-walk idiom
// (methods_adjacent.go), generalized from a map-backed graph to an
// array-backed triangulation, and on iceisfun-gomesh's cdt-adjacency.go
// neighbor-rewrite idiom for RepatchNeighbor.
//
// Concurrency: a TriStruct is owned exclusively by one goroutine for the
// duration of a refine.Tessellate call (spec.md §5); unlike lvlath/core
// there is no internal locking here — the single-threaded-per-face
// contract is enforced once, at the public entry point, via
// surface.Face.SameThread.
package core
