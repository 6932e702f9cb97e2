package primitive

import (
	"github.com/SteveThePug/rust-raytracer-sub000/roots"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Sphere is a sphere with an arbitrary center and radius.
type Sphere struct {
	Center types.Vec3
	Radius float64

	bounds AABB
}

// NewSphere creates a sphere.
func NewSphere(center types.Vec3, radius float64) *Sphere {
	r := types.XYZ(radius, radius, radius)
	return &Sphere{
		Center: center,
		Radius: radius,
		bounds: NewAABB(center.Sub(r), center.Add(r)),
	}
}

// UnitSphere creates the unit sphere at the origin.
func UnitSphere() *Sphere {
	return NewSphere(types.Vec3{}, 1)
}

// Intersect solves |origin + t*dir - center|^2 = r^2 for the nearest valid t.
func (s *Sphere) Intersect(ray Ray) *Intersection {
	l := ray.Origin.Sub(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * l.Dot(ray.Direction)
	c := l.Dot(l) - s.Radius*s.Radius

	t, ok := firstValidRoot(roots.Quadratic(a, b, c))
	if !ok {
		return nil
	}

	point := ray.At(t)
	normal, ok := types.UnitOK(point.Sub(s.Center))
	if !ok {
		return nil
	}

	return &Intersection{
		Point:     point,
		Normal:    normal,
		Incidence: incidence(ray),
		Distance:  t,
	}
}

// Bounds returns the sphere's bounding box.
func (s *Sphere) Bounds() AABB {
	return s.bounds
}
