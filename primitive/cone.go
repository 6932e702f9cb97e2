package primitive

import (
	"github.com/SteveThePug/rust-raytracer-sub000/roots"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Cone is a finite cone around the Y axis with its apex at y = Height and a
// base disk of radius Radius at y = 0.
type Cone struct {
	Radius float64
	Height float64

	k2     float64 // (Radius / Height)^2, the squared slope of the lateral surface
	base   *Disk
	bounds AABB
}

// NewCone creates a capped cone.
func NewCone(radius, height float64) *Cone {
	k := radius / height
	return &Cone{
		Radius: radius,
		Height: height,
		k2:     k * k,
		base:   NewDisk(types.Vec3{}, types.XYZ(0, -1, 0), radius),
		bounds: NewAABB(types.XYZ(-radius, 0, -radius), types.XYZ(radius, height, radius)),
	}
}

// UnitCone creates a cone of base radius 1 and height 2.
func UnitCone() *Cone {
	return NewCone(1, 2)
}

// Intersect combines the lateral surface with the base disk, exactly as the
// cylinder combines its caps.
func (c *Cone) Intersect(ray Ray) *Intersection {
	return nearest(c.intersectLateral(ray), c.base.Intersect(ray))
}

// intersectLateral solves the implicit cone equation
// x^2 + z^2 - k^2*(h - y)^2 = 0 along the ray. Roots outside the [0, Height]
// band are rejected; a hit exactly at the apex has a zero gradient and is
// treated as a miss.
func (c *Cone) intersectLateral(ray Ray) *Intersection {
	o, d := ray.Origin, ray.Direction
	hy := c.Height - o.Y

	a := d.X*d.X + d.Z*d.Z - c.k2*d.Y*d.Y
	b := 2 * (o.X*d.X + o.Z*d.Z + c.k2*hy*d.Y)
	cc := o.X*o.X + o.Z*o.Z - c.k2*hy*hy

	for _, t := range roots.Quadratic(a, b, cc) {
		if t < Epsilon {
			continue
		}
		point := ray.At(t)
		if point.Y < 0 || point.Y > c.Height {
			continue
		}
		// Gradient of the implicit equation; zero exactly at the apex.
		grad := types.XYZ(2*point.X, 2*c.k2*(c.Height-point.Y), 2*point.Z)
		normal, ok := types.UnitOK(grad)
		if !ok {
			continue
		}
		return &Intersection{
			Point:     point,
			Normal:    normal,
			Incidence: incidence(ray),
			Distance:  t,
		}
	}
	return nil
}

// Bounds returns the cone's bounding box.
func (c *Cone) Bounds() AABB {
	return c.bounds
}
