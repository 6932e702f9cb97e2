package primitive

import (
	"math"

	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Triangle is a single triangle with a flat, precomputed face normal.
type Triangle struct {
	V0, V1, V2 types.Vec3

	normal     types.Vec3
	degenerate bool
	bounds     AABB
}

// NewTriangle creates a triangle from three vertices. Collinear vertices
// produce a degenerate triangle that never intersects anything.
func NewTriangle(v0, v1, v2 types.Vec3) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	normal, ok := types.UnitOK(edge1.Cross(edge2))
	t.normal = normal
	t.degenerate = !ok

	t.bounds = NewAABB(
		types.MinVec3(v0, types.MinVec3(v1, v2)),
		types.MaxVec3(v0, types.MaxVec3(v1, v2)),
	)
	return t
}

// Normal returns the flat face normal (zero for degenerate triangles).
func (t *Triangle) Normal() types.Vec3 {
	return t.normal
}

// Intersect runs the Moller-Trumbore test: barycentric coordinates derived
// from the two edge vectors and the ray direction. A near-zero determinant
// (ray parallel to the triangle plane, or a degenerate triangle) is a miss.
func (t *Triangle) Intersect(ray Ray) *Intersection {
	if t.degenerate {
		return nil
	}

	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < 1e-12 {
		return nil
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Sub(t.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return nil
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return nil
	}

	dist := edge2.Dot(qvec) * invDet
	if dist < Epsilon {
		return nil
	}

	return &Intersection{
		Point:     ray.At(dist),
		Normal:    t.normal,
		Incidence: incidence(ray),
		Distance:  dist,
	}
}

// Bounds returns the triangle's bounding box.
func (t *Triangle) Bounds() AABB {
	return t.bounds
}
