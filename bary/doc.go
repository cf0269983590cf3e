// Package bary implements spec.md §4.9's barycentric locator: after
// refinement, every non-frame vertex is located against the frozen frame
// triangulation by exact-sign inTriExact, recording a (frame triangle,
// w0, w1) triple sufficient to reproject that vertex's UV onto a
// perturbed re-evaluation of the frame (spec.md §8 property 5).
//
// Grounded on viamrobotics-rdk's delaunay triangulator's locate-by-
// triangle idiom (walk candidate triangles, test containment, fall back
// to the least-negative candidate when none contains the point exactly),
// generalized from a walk over a live triangulation to a linear scan of
// the frame's fixed triangle list.
package bary
