package primitive

import (
	"math"

	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// aabbPad is the amount every box is grown by on construction so that edge
// and grazing rays are not rejected by floating point noise.
const aabbPad = 1e-6

// AABB is an axis-aligned bounding box. After construction Min <= Max holds
// per axis.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// NewAABB builds a box from two corner points. Inverted inputs are
// normalized per axis and the result is padded by a small epsilon.
func NewAABB(a, b types.Vec3) AABB {
	min := types.MinVec3(a, b)
	max := types.MaxVec3(a, b)
	pad := types.XYZ(aabbPad, aabbPad, aabbPad)
	return AABB{Min: min.Sub(pad), Max: max.Add(pad)}
}

// EmptyAABB returns a box that unions as the identity: any Union or Grow
// call replaces its corners.
func EmptyAABB() AABB {
	return AABB{
		Min: types.XYZ(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: types.XYZ(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// Hit tests the ray against the box with the slab method: the ray intersects
// iff the latest entry parameter does not exceed the earliest exit parameter
// and the exit is not behind the origin.
func (b AABB) Hit(ray Ray) bool {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := types.Component(ray.Origin, axis)
		dir := types.Component(ray.Direction, axis)
		lo := types.Component(b.Min, axis)
		hi := types.Component(b.Max, axis)

		if math.Abs(dir) < 1e-12 {
			// Parallel to this slab: inside or miss entirely.
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmax < tmin {
			return false
		}
	}

	return tmax >= 0
}

// Union returns the smallest box containing both boxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: types.MinVec3(b.Min, other.Min),
		Max: types.MaxVec3(b.Max, other.Max),
	}
}

// Grow returns the box extended to contain the point.
func (b AABB) Grow(p types.Vec3) AABB {
	return AABB{
		Min: types.MinVec3(b.Min, p),
		Max: types.MaxVec3(b.Max, p),
	}
}

// Center returns the box centroid.
func (b AABB) Center() types.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b AABB) Size() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns the axis (0 = X, 1 = Y, 2 = Z) with the largest extent.
func (b AABB) LongestAxis() int {
	size := b.Size()
	axis := 0
	if size.Y > size.X {
		axis = 1
	}
	if size.Z > types.Component(size, axis) {
		axis = 2
	}
	return axis
}

// Transform returns an axis-aligned box covering this box mapped through an
// affine transform, computed by re-bounding the eight transformed corners.
func (b AABB) Transform(m types.Mat4) AABB {
	out := EmptyAABB()
	for _, x := range []float64{b.Min.X, b.Max.X} {
		for _, y := range []float64{b.Min.Y, b.Max.Y} {
			for _, z := range []float64{b.Min.Z, b.Max.Z} {
				out = out.Grow(m.MulPoint(types.XYZ(x, y, z)))
			}
		}
	}
	return out
}
