package primitive

import (
	"math"

	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Box is an axis-aligned box between two corner points.
type Box struct {
	Min types.Vec3
	Max types.Vec3

	bounds AABB
}

// NewBox creates a box. Inverted corners are normalized per axis.
func NewBox(a, b types.Vec3) *Box {
	min := types.MinVec3(a, b)
	max := types.MaxVec3(a, b)
	return &Box{Min: min, Max: max, bounds: NewAABB(min, max)}
}

// UnitBox creates the box [-1, 1]^3.
func UnitBox() *Box {
	return NewBox(types.XYZ(-1, -1, -1), types.XYZ(1, 1, 1))
}

// Intersect runs the slab method and returns the entry hit with the normal
// of the slab boundary that produced it. Slab ties are broken by fixed axis
// priority (X before Y before Z) so the picked face is deterministic.
func (b *Box) Intersect(ray Ray) *Intersection {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	entryAxis := -1

	for axis := 0; axis < 3; axis++ {
		origin := types.Component(ray.Origin, axis)
		dir := types.Component(ray.Direction, axis)
		lo := types.Component(b.Min, axis)
		hi := types.Component(b.Max, axis)

		if math.Abs(dir) < 1e-12 {
			if origin < lo || origin > hi {
				return nil
			}
			continue
		}

		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		// Strict comparison keeps the lowest-numbered axis on exact ties.
		if t1 > tmin {
			tmin = t1
			entryAxis = axis
		}
		tmax = math.Min(tmax, t2)
		if tmax < tmin {
			return nil
		}
	}

	if entryAxis < 0 || tmin < Epsilon {
		// Origin inside the box or entry too close along the ray.
		return nil
	}

	// The outward normal of the entry face opposes the ray direction along
	// the entry axis.
	var normal types.Vec3
	sign := -math.Copysign(1, types.Component(ray.Direction, entryAxis))
	switch entryAxis {
	case 0:
		normal = types.XYZ(sign, 0, 0)
	case 1:
		normal = types.XYZ(0, sign, 0)
	default:
		normal = types.XYZ(0, 0, sign)
	}

	return &Intersection{
		Point:     ray.At(tmin),
		Normal:    normal,
		Incidence: incidence(ray),
		Distance:  tmin,
	}
}

// Bounds returns the box's padded bounding box.
func (b *Box) Bounds() AABB {
	return b.bounds
}
