// Package geom provides the 2D/3D vector algebra primitives the rest of this
// core builds on: UV-space vector algebra and signed area, 3D facet-normal
// and dihedral (dot-of-normals) computation, a squared point-to-edge-line
// distance normalized by the edge length, and the exact-sign barycentric
// inclusion test
// (spec.md §4.9's inTriExact/orienTri).
//
// 3D points and vectors are gonum.org/v1/gonum/spatial/r3.Vec values; UV
// (parameter-space) points are the package-local Vec2. Keeping UV as a
// distinct type (rather than reusing r3.Vec with a zero Z) makes every
// signed-area computation's dimensionality explicit at the call site,
// matching spec.md's strict separation of UV-space and XYZ-space
// quantities throughout §4.
package geom
