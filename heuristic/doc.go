// Package heuristic implements spec.md §4.7's candidate-selection
// heuristics — breakTri, addFacetNorm, addFacetDist, addSideDist, and
// splitInter — the priority-and-validate routines refine's driver phases
// call to decide where the triangulation needs another vertex.
//
// Grounded on lvlath/builder's priority/validator-function idiom
// (builder/validators.go) generalized to geometric priority scans over
// core.TriStruct's triangle array, and on
// original_source/src/egadsTris.c's EG_breakTri/EG_addFacetNorm/
// EG_addFacetDist/EG_addSideDist/EG_splitInter for exact guard ordering.
package heuristic
