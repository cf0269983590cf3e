// Package refine implements spec.md §4.8's refinement driver: the
// initialization pass that derives the boundary tolerances, the planar
// branch, and the general branch's ten ordered phases (Pre-swap, Phase X,
// Phase 0, Phase A, Phase B, Phase C, Phase D, Phase 1, Phase 2, Phase 3),
// exposed through the single public entry point Tessellate (spec.md §6's
// tessellate(outLevel, &mut triStruct, tID) -> status).
//
// Grounded on lvlath/algorithms's orchestration-layer shape: a single
// exported entry point (e.g. algorithms.BFS) sequencing calls into
// lower-level visitor/predicate packages over one shared mutable
// aggregate, generalized here from a graph traversal to a fixed phase
// sequence over a core.TriStruct.
package refine
