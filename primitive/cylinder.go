package primitive

import (
	"github.com/SteveThePug/rust-raytracer-sub000/roots"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Cylinder is a finite cylinder around the Y axis spanning [Base, Top], with
// disk caps on both ends.
type Cylinder struct {
	Radius float64
	Base   float64
	Top    float64

	baseCap *Disk
	topCap  *Disk
	bounds  AABB
}

// NewCylinder creates a capped cylinder around the Y axis. Base and Top are
// swapped if given out of order.
func NewCylinder(radius, base, top float64) *Cylinder {
	if base > top {
		base, top = top, base
	}
	return &Cylinder{
		Radius:  radius,
		Base:    base,
		Top:     top,
		baseCap: NewDisk(types.XYZ(0, base, 0), types.XYZ(0, -1, 0), radius),
		topCap:  NewDisk(types.XYZ(0, top, 0), types.XYZ(0, 1, 0), radius),
		bounds:  NewAABB(types.XYZ(-radius, base, -radius), types.XYZ(radius, top, radius)),
	}
}

// UnitCylinder creates a radius-1 cylinder spanning y in [0, 1].
func UnitCylinder() *Cylinder {
	return NewCylinder(1, 0, 1)
}

// Intersect combines the lateral surface with both caps and keeps the
// nearest valid hit. Lateral candidates outside the height range are
// rejected before the comparison.
func (c *Cylinder) Intersect(ray Ray) *Intersection {
	return nearest(
		c.intersectLateral(ray),
		c.baseCap.Intersect(ray),
		c.topCap.Intersect(ray),
	)
}

// intersectLateral solves x^2 + z^2 = r^2 along the ray and accepts the
// first root whose hit lies within the height range.
func (c *Cylinder) intersectLateral(ray Ray) *Intersection {
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X + d.Z*d.Z
	b := 2 * (o.X*d.X + o.Z*d.Z)
	cc := o.X*o.X + o.Z*o.Z - c.Radius*c.Radius

	for _, t := range roots.Quadratic(a, b, cc) {
		if t < Epsilon {
			continue
		}
		point := ray.At(t)
		if point.Y < c.Base || point.Y > c.Top {
			continue
		}
		normal, ok := types.UnitOK(types.XYZ(point.X, 0, point.Z))
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

// Bounds returns the cylinder's bounding box.
func (c *Cylinder) Bounds() AABB {
	return c.bounds
}
