package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// FacetNormal returns the (non-normalized) 3D cross-product normal of
// triangle (a,b,c): (b-a) x (c-a). Its magnitude is twice the triangle's
// 3D area — callers needing a true unit normal should call r3.Unit on the
// result, after checking r3.Norm > 0 (a zero-length normal signals a
// degenerate triangle, spec.md §4.6).
func FacetNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}

// Area3D returns the (unsigned) area of triangle (a,b,c) in 3D.
func Area3D(a, b, c r3.Vec) float64 {
	return 0.5 * r3.Norm(FacetNormal(a, b, c))
}

// Dihedral returns the dot product of the unit normals of the two facets
// (t1a,t1b,t1c) and (t2a,t2b,t2c) — the quantity spec.md §4.4/§4.7 compares
// against dotnrm. Returns 0 if either facet is degenerate (zero normal).
func Dihedral(t1a, t1b, t1c, t2a, t2b, t2c r3.Vec) float64 {
	n1 := FacetNormal(t1a, t1b, t1c)
	n2 := FacetNormal(t2a, t2b, t2c)
	l1, l2 := r3.Norm(n1), r3.Norm(n2)
	if l1 == 0 || l2 == 0 {
		return 0
	}
	return r3.Dot(n1, n2) / (l1 * l2)
}

// UnitNormal returns the unit facet normal of (a,b,c), and false if the
// facet is degenerate (spec.md §4.6's zero-area case).
func UnitNormal(a, b, c r3.Vec) (r3.Vec, bool) {
	n := FacetNormal(a, b, c)
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}, false
	}
	return r3.Scale(1/l, n), true
}

// DistSq3 returns the squared Euclidean distance between p and q.
func DistSq3(p, q r3.Vec) float64 {
	d := r3.Sub(p, q)
	return r3.Dot(d, d)
}

// RayIntersectDistFrac returns the perpendicular distance from p to the
// infinite line through (a,b), normalized by the length of (a,b), squared.
// This mirrors egadsTris.c's EG_rayIntersect/EG_getIntersect primitive
// used by close2Edge: the result is compared against edist2 (a
// squared-length tolerance), so this returns a squared, length-normalized
// quantity rather than a raw distance.
func RayIntersectDistFrac(a, b, p r3.Vec) float64 {
	d := r3.Sub(b, a)
	dlen := r3.Norm(d)
	if dlen == 0 {
		return math.MaxFloat64
	}
	dir := r3.Scale(1/dlen, d)
	w := r3.Sub(p, a)
	t := r3.Dot(w, dir)
	foot := r3.Add(a, r3.Scale(t, dir))
	perp := r3.Sub(p, foot)
	dist := r3.Norm(perp) / dlen
	return dist * dist
}
