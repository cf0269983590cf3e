// Package midhash implements the midpoint cache described in spec.md §4.1:
// a triple-key hash table keyed by the unordered vertex-index triple of a
// triangle, storing the cached surface centroid and a "close to edge"
// flag. It is created and destroyed once per refinement phase (spec.md
// §3's lifecycle note) rather than carried for the lifetime of a
// core.TriStruct.
//
// Grounded on lvlath/matrix's custom-container idiom (own sizing policy,
// own storage, no generic map): here the table size is always the first
// prime at or above the requested capacity, and collisions are resolved by
// an append-only singly linked bucket chain, exactly as spec.md §4.1
// mandates — a plain Go map could not honor the prime-sizing contract the
// spec calls out explicitly.
package midhash
