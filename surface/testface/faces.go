package testface

import (
	"math"

	"github.com/katalvlaran/surftess/surface"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is a flat z=0 surface.Face over [uMin,uMax]x[vMin,vMax], with
// Evaluate(u,v) = (u,v,0). Used by spec.md §8 scenario A (the flat quad).
type Plane struct {
	UMin, UMax, VMin, VMax float64
	Level                  int
}

func (p Plane) Evaluate(uv surface.UV) (surface.Derivatives, error) {
	if uv.U < p.UMin || uv.U > p.UMax || uv.V < p.VMin || uv.V > p.VMax {
		return surface.Derivatives{}, surface.ErrExtrapolation
	}
	return surface.Derivatives{
		XYZ: r3.Vec{X: uv.U, Y: uv.V, Z: 0},
		Du:  r3.Vec{X: 1, Y: 0, Z: 0},
		Dv:  r3.Vec{X: 0, Y: 1, Z: 0},
	}, nil
}

func (p Plane) InverseEvaluate(xyz r3.Vec) (surface.UV, r3.Vec, error) {
	uv := surface.UV{U: xyz.X, V: xyz.Y}
	return uv, r3.Vec{X: xyz.X, Y: xyz.Y, Z: 0}, nil
}

func (p Plane) Range() (uMin, uMax, vMin, vMax float64, pu, pv bool) {
	return p.UMin, p.UMax, p.VMin, p.VMax, false, false
}

func (p Plane) SameThread() bool { return true }
func (p Plane) OutLevel() int    { return p.Level }

// SphereOctant is the unit-sphere 90deg x 90deg patch parameterized by
// u in [0, pi/2] (polar angle from +Z) and v in [0, pi/2] (azimuth),
// used by spec.md §8 scenario B.
type SphereOctant struct {
	Level int
}

func (s SphereOctant) Evaluate(uv surface.UV) (surface.Derivatives, error) {
	if uv.U < 0 || uv.U > math.Pi/2 || uv.V < 0 || uv.V > math.Pi/2 {
		return surface.Derivatives{}, surface.ErrExtrapolation
	}
	su, cu := math.Sin(uv.U), math.Cos(uv.U)
	sv, cv := math.Sin(uv.V), math.Cos(uv.V)
	xyz := r3.Vec{X: su * cv, Y: su * sv, Z: cu}
	du := r3.Vec{X: cu * cv, Y: cu * sv, Z: -su}
	dv := r3.Vec{X: -su * sv, Y: su * cv, Z: 0}
	return surface.Derivatives{XYZ: xyz, Du: du, Dv: dv}, nil
}

func (s SphereOctant) InverseEvaluate(xyz r3.Vec) (surface.UV, r3.Vec, error) {
	n := r3.Norm(xyz)
	if n == 0 {
		return surface.UV{}, xyz, surface.ErrExtrapolation
	}
	p := r3.Scale(1/n, xyz)
	u := math.Acos(clamp(p.Z, -1, 1))
	v := math.Atan2(p.Y, p.X)
	if v < 0 {
		v = 0
	}
	return surface.UV{U: u, V: v}, p, nil
}

func (s SphereOctant) Range() (uMin, uMax, vMin, vMax float64, pu, pv bool) {
	return 0, math.Pi / 2, 0, math.Pi / 2, false, false
}

func (s SphereOctant) SameThread() bool { return true }
func (s SphereOctant) OutLevel() int    { return s.Level }

// Cylinder is a half-circular cylinder of radius R and height [0,H],
// parameterized by u in [0,pi] (angle) and v in [0,H] (axial height),
// used by spec.md §8 scenario C.
type Cylinder struct {
	R, H  float64
	Level int
}

func (c Cylinder) Evaluate(uv surface.UV) (surface.Derivatives, error) {
	if uv.U < 0 || uv.U > math.Pi || uv.V < 0 || uv.V > c.H {
		return surface.Derivatives{}, surface.ErrExtrapolation
	}
	su, cu := math.Sin(uv.U), math.Cos(uv.U)
	xyz := r3.Vec{X: c.R * cu, Y: c.R * su, Z: uv.V}
	du := r3.Vec{X: -c.R * su, Y: c.R * cu, Z: 0}
	dv := r3.Vec{X: 0, Y: 0, Z: 1}
	return surface.Derivatives{XYZ: xyz, Du: du, Dv: dv}, nil
}

func (c Cylinder) InverseEvaluate(xyz r3.Vec) (surface.UV, r3.Vec, error) {
	u := math.Atan2(xyz.Y, xyz.X)
	if u < 0 {
		u = 0
	}
	v := xyz.Z
	if v < 0 {
		v = 0
	}
	if v > c.H {
		v = c.H
	}
	proj := r3.Vec{X: c.R * math.Cos(u), Y: c.R * math.Sin(u), Z: v}
	return surface.UV{U: u, V: v}, proj, nil
}

func (c Cylinder) Range() (uMin, uMax, vMin, vMax float64, pu, pv bool) {
	return 0, math.Pi, 0, c.H, false, false
}

func (c Cylinder) SameThread() bool { return true }
func (c Cylinder) OutLevel() int    { return c.Level }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
