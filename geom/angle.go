package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// angleAt2D returns the interior angle at vertex a of the 2D triangle
// (a,b,c), using the atan2(|cross|, dot) form for numerical robustness
// near 0 and pi.
func angleAt2D(a, b, c Vec2) float64 {
	ab := Sub2(b, a)
	ac := Sub2(c, a)
	cross := math.Abs(Cross2(ab, ac))
	dot := Dot2(ab, ac)
	return math.Atan2(cross, dot)
}

// MaxAngle2D returns the largest of the three interior angles of triangle
// (a,b,c) in UV space (spec.md §4.4's "UV-angle" quantity). Callers that
// need the V-axis pre-scaled by VoverU must scale b,c,a with ScaledV
// before calling.
func MaxAngle2D(a, b, c Vec2) float64 {
	aa := angleAt2D(a, b, c)
	ab := angleAt2D(b, c, a)
	ac := angleAt2D(c, a, b)
	return math.Max(aa, math.Max(ab, ac))
}

func angleAt3D(a, b, c r3.Vec) float64 {
	ab := r3.Sub(b, a)
	ac := r3.Sub(c, a)
	cross := r3.Norm(r3.Cross(ab, ac))
	dot := r3.Dot(ab, ac)
	return math.Atan2(cross, dot)
}

// MaxAngle3D returns the largest of the three interior angles of triangle
// (a,b,c) in world space (spec.md §4.4's angXYZ quantity).
func MaxAngle3D(a, b, c r3.Vec) float64 {
	aa := angleAt3D(a, b, c)
	ab := angleAt3D(b, c, a)
	ac := angleAt3D(c, a, b)
	return math.Max(aa, math.Max(ab, ac))
}
