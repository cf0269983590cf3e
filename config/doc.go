// Package config holds the tunable, construction-time parameters for a single
// refinement run: chord tolerance, maximum/minimum side length, the dihedral
// (dot-of-normals) threshold, the point-count cap, the planar/general branch
// switch, UV orientation sign, and output verbosity.
//
// Values are assembled through functional RefineOption values applied
// left-to-right, exactly as lvlath/builder assembles a builderConfig: option
// constructors validate their argument and panic on structurally meaningless
// input (e.g. a zero orientation sign), while the resulting Config is never
// mutated again and never causes a panic once handed to refine.Tessellate.
//
// Build a Config with New(opts...); the zero-value Config is not valid on
// its own since Orientation defaults to 0, which New rejects unless
// WithOrientation is supplied. maxPts > 0 caps total vertices; maxPts < 0
// caps interior vertices to |maxPts| - 2 (spec.md §6); MaxPoints() exposes
// the raw signed value and InteriorCap()/TotalCap() interpret it.
package config
