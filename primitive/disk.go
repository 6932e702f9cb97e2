package primitive

import (
	"math"

	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Disk is a flat circle with a center, an orientation normal and a radius.
type Disk struct {
	Center types.Vec3
	Normal types.Vec3 // unit length
	Radius float64

	bounds AABB
}

// NewDisk creates a disk. The normal is normalized on construction.
func NewDisk(center, normal types.Vec3, radius float64) *Disk {
	r := types.XYZ(radius, radius, radius)
	return &Disk{
		Center: center,
		Normal: types.Unit(normal),
		Radius: radius,
		bounds: NewAABB(center.Sub(r), center.Add(r)),
	}
}

// UnitDisk creates a radius-1 disk in the XZ plane facing +Y.
func UnitDisk() *Disk {
	return NewDisk(types.Vec3{}, types.XYZ(0, 1, 0), 1)
}

// Intersect solves the plane equation dot(normal, point) = dot(normal,
// center) and accepts the hit when it falls within the radius.
func (d *Disk) Intersect(ray Ray) *Intersection {
	denom := ray.Direction.Dot(d.Normal)
	if math.Abs(denom) < 1e-12 {
		// Ray parallel to the disk plane.
		return nil
	}

	t := d.Center.Sub(ray.Origin).Dot(d.Normal) / denom
	if t < Epsilon {
		return nil
	}

	point := ray.At(t)
	if types.Norm(point.Sub(d.Center)) > d.Radius {
		return nil
	}

	return &Intersection{
		Point:     point,
		Normal:    d.Normal,
		Incidence: incidence(ray),
		Distance:  t,
	}
}

// Bounds returns the disk's bounding box.
func (d *Disk) Bounds() AABB {
	return d.bounds
}
