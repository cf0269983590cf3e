package core

import (
	"github.com/katalvlaran/surftess/geom"
	"github.com/katalvlaran/surftess/surface"
)

// UVCentroid returns the UV-space centroid of triangle tID's three
// vertices.
func (ts *TriStruct) UVCentroid(tID int) geom.Vec2 {
	t := ts.Tri(tID)
	a := ts.Vertex(t.V[0]).UV
	b := ts.Vertex(t.V[1]).UV
	c := ts.Vertex(t.V[2]).UV
	return geom.Vec2{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
}

// ToSurfaceUV converts a geom.Vec2 to the surface package's UV type.
func ToSurfaceUV(v geom.Vec2) surface.UV { return surface.UV{U: v.X, V: v.Y} }

// FromSurfaceUV converts a surface.UV back to geom.Vec2.
func FromSurfaceUV(uv surface.UV) geom.Vec2 { return geom.Vec2{X: uv.U, Y: uv.V} }

// FillMid forward-evaluates the surface at triangle tID's UV centroid and
// caches the resulting world position in Tri(tID).Mid (spec.md §4.4's
// "refreshes cached midpoints"). Returns surface.ErrExtrapolation if the
// centroid lies outside the face's domain, in which case Mid is left
// unchanged and the caller should skip this site (spec.md §7).
func (ts *TriStruct) FillMid(tID int) error {
	uv := ts.UVCentroid(tID)
	d, err := ts.Face.Evaluate(ToSurfaceUV(uv))
	if err != nil {
		return err
	}
	ts.Tri(tID).Mid = d.XYZ
	return nil
}
