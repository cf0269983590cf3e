package geom

import "math"

// Vec2 is a parameter-space (u,v) point or vector.
type Vec2 struct{ X, Y float64 }

// Add2 returns a+b.
func Add2(a, b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Sub2 returns a-b.
func Sub2(a, b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Scale2 returns f*v.
func Scale2(f float64, v Vec2) Vec2 { return Vec2{f * v.X, f * v.Y} }

// Dot2 returns the 2D dot product of a and b.
func Dot2(a, b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Cross2 returns the scalar z-component of the 3D cross product of
// (a,0) x (b,0): a.X*b.Y - a.Y*b.X.
func Cross2(a, b Vec2) float64 { return a.X*b.Y - a.Y*b.X }

// Norm2 returns the Euclidean length of v.
func Norm2(v Vec2) float64 { return math.Hypot(v.X, v.Y) }

// DistSq2 returns the squared Euclidean distance between a and b.
func DistSq2(a, b Vec2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Area2D returns twice the signed area of triangle (a,b,c): (b-a) x (c-a).
// Positive for counter-clockwise winding. This is spec.md §2/§4.3's area2D
// primitive; callers compare its sign against orUV.
func Area2D(a, b, c Vec2) float64 {
	return Cross2(Sub2(b, a), Sub2(c, a))
}

// ScaledV scales the V component of a Vec2 by f, used throughout swap
// predicates to pre-scale the V axis by VoverU before measuring UV angles
// (spec.md §4.4's angUV row).
func ScaledV(v Vec2, f float64) Vec2 { return Vec2{v.X, v.Y * f} }
