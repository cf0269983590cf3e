package predicate

import (
	"math"

	"github.com/katalvlaran/surftess/core"
	"github.com/katalvlaran/surftess/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

func xyzOf(ts *core.TriStruct, v int) r3.Vec { return ts.Vertex(v).XYZ }

// scaledUVOf returns vertex v's UV point with its V axis pre-scaled by
// ts.VoverU, the normalization spec.md §4.4's angUV/diag rows require
// before measuring a UV-space angle.
func scaledUVOf(ts *core.TriStruct, v int) geom.Vec2 {
	return geom.ScaledV(uvOf(ts, v), ts.VoverU)
}

// dihedral returns the dot product of the unit facet normals of (a,b,c) and
// (d,e,f), by 1-based vertex index (core.AngXYZ, predicate.Diag share this).
func dihedral(ts *core.TriStruct, a, b, c, d, e, f int) float64 {
	return geom.Dihedral(xyzOf(ts, a), xyzOf(ts, b), xyzOf(ts, c), xyzOf(ts, d), xyzOf(ts, e), xyzOf(ts, f))
}

// AngUV implements spec.md §4.4's angUV predicate: the swap improves the
// mesh iff the largest UV-space interior angle of the two candidate
// triangles (i0,i1,i3) and (i0,i3,i2), plus core.AngTol, is still smaller
// than the largest UV angle of the current pair (i0,i1,i2) and (i1,i2,i3).
// Angles are measured with the V axis pre-scaled by ts.VoverU. Publishes
// the candidate's max angle as ts.Accum's running max, so the driver's
// phase-stop conditions ("angUV > MAXANG") can read it back after a sweep.
func AngUV(ts *core.TriStruct, t1, side, t2 int) bool {
	i0, i1, i2, i3, _ := ts.DiagonalQuad(t1, side, t2)
	uv0, uv1, uv2, uv3 := scaledUVOf(ts, i0), scaledUVOf(ts, i1), scaledUVOf(ts, i2), scaledUVOf(ts, i3)

	oldMax := math.Max(geom.MaxAngle2D(uv0, uv1, uv2), geom.MaxAngle2D(uv1, uv2, uv3))
	newMax := math.Max(geom.MaxAngle2D(uv0, uv1, uv3), geom.MaxAngle2D(uv0, uv3, uv2))

	if newMax > ts.Accum {
		ts.Accum = newMax
	}
	return newMax+core.AngTol < oldMax
}

// AngXYZ implements spec.md §4.4's angXYZ predicate: analogous to AngUV but
// in world space, with the additional guard that the dihedral (dot of the
// two candidate triangles' facet normals) must not drop below ts.DotNrm —
// unless ts.Phase == core.PlanarPhase, in which case the planar branch
// skips the guard entirely (spec.md §4.4, §9).
func AngXYZ(ts *core.TriStruct, t1, side, t2 int) bool {
	i0, i1, i2, i3, _ := ts.DiagonalQuad(t1, side, t2)
	p0, p1, p2, p3 := ts.Vertex(i0).XYZ, ts.Vertex(i1).XYZ, ts.Vertex(i2).XYZ, ts.Vertex(i3).XYZ

	oldMax := math.Max(geom.MaxAngle3D(p0, p1, p2), geom.MaxAngle3D(p1, p2, p3))
	newMax := math.Max(geom.MaxAngle3D(p0, p1, p3), geom.MaxAngle3D(p0, p3, p2))

	if newMax > ts.Accum {
		ts.Accum = newMax
	}
	if newMax+core.AngTol >= oldMax {
		return false
	}
	if ts.Phase == core.PlanarPhase {
		return true
	}

	return dihedral(ts, i0, i1, i3, i0, i3, i2) >= ts.DotNrm
}

// Area implements spec.md §4.4's area predicate: a forced repair swap. The
// current pair (i0,i1,i2)/(i1,i3,i2), ordered along the shared edge, is
// rejected as already inconsistent when its two signed UV areas disagree in
// sign; the swap is taken only when the new diagonal's pair is itself fully
// valid (both sub-areas agree in sign with ts.OrUV). No accumulator is
// published.
func Area(ts *core.TriStruct, t1, side, t2 int) bool {
	i0, i1, i2, i3, _ := ts.DiagonalQuad(t1, side, t2)
	uv0, uv1, uv2, uv3 := uvOf(ts, i0), uvOf(ts, i1), uvOf(ts, i2), uvOf(ts, i3)

	oldA1 := geom.Area2D(uv0, uv1, uv2)
	oldA2 := geom.Area2D(uv1, uv3, uv2)

	newA1 := geom.Area2D(uv0, uv1, uv3)
	newA2 := geom.Area2D(uv0, uv3, uv2)

	return oldA1*oldA2 <= 0 &&
		newA1*float64(ts.OrUV) > 0 &&
		newA2*float64(ts.OrUV) > 0
}

// Diag implements spec.md §4.4's diag predicate: the swap is taken when the
// candidate pair's largest UV angle is within core.MaxAngle and the
// post-swap dihedral strictly improves on the pre-swap one by more than
// core.AngTol. Publishes the running minimum of the worse (smaller) of the
// pre/post dihedral across a sweep, so the driver can read back how close
// the mesh came to failing the dihedral test.
func Diag(ts *core.TriStruct, t1, side, t2 int) bool {
	i0, i1, i2, i3, _ := ts.DiagonalQuad(t1, side, t2)
	uv0, uv1, uv2, uv3 := scaledUVOf(ts, i0), scaledUVOf(ts, i1), scaledUVOf(ts, i2), scaledUVOf(ts, i3)

	newMax := math.Max(geom.MaxAngle2D(uv0, uv1, uv3), geom.MaxAngle2D(uv0, uv3, uv2))

	dotBefore := dihedral(ts, i0, i1, i2, i1, i3, i2)
	dotAfter := dihedral(ts, i0, i1, i3, i0, i3, i2)

	worse := math.Min(dotBefore, dotAfter)
	if worse < ts.Accum {
		ts.Accum = worse
	}

	return newMax <= core.MaxAngle && dotAfter > dotBefore+core.AngTol
}
