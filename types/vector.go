package types

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3 component float64 vector. It doubles as a point and as an RGB
// colour triple throughout the tracer. The arithmetic delegates to
// gonum's spatial/r3 package, which exposes vector operations as free
// functions rather than methods.
type Vec3 r3.Vec

// XYZ defines a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of v and u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3(r3.Add(r3.Vec(v), r3.Vec(u)))
}

// Sub returns the difference of v and u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3(r3.Sub(r3.Vec(v), r3.Vec(u)))
}

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3(r3.Scale(f, r3.Vec(v)))
}

// Dot returns the dot product of v and u.
func (v Vec3) Dot(u Vec3) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(u))
}

// Cross returns the cross product of v and u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3(r3.Cross(r3.Vec(v), r3.Vec(u)))
}

// Norm returns the vector length.
func Norm(v Vec3) float64 {
	return r3.Norm(r3.Vec(v))
}

// Unit normalizes a vector. The zero vector is returned unchanged instead of
// propagating NaN components.
func Unit(v Vec3) Vec3 {
	n := Norm(v)
	if n == 0 {
		return Vec3{}
	}
	return v.Scale(1.0 / n)
}

// UnitOK normalizes a vector and reports whether the input had enough length
// for the result to be meaningful. Degenerate inputs (for example the gradient
// of an implicit surface sampled at a singular point) report false.
func UnitOK(v Vec3) (Vec3, bool) {
	n := Norm(v)
	if n < 1e-12 {
		return Vec3{}, false
	}
	return v.Scale(1.0 / n), true
}

// MulVec3 multiplies two vectors component-wise.
func MulVec3(a, b Vec3) Vec3 {
	return Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// MinVec3 calculates the component-wise minimum of two vectors.
func MinVec3(a, b Vec3) Vec3 {
	return Vec3{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		Z: math.Min(a.Z, b.Z),
	}
}

// MaxVec3 calculates the component-wise maximum of two vectors.
func MaxVec3(a, b Vec3) Vec3 {
	return Vec3{
		X: math.Max(a.X, b.X),
		Y: math.Max(a.Y, b.Y),
		Z: math.Max(a.Z, b.Z),
	}
}

// ClampVec3 clamps each component to the [lo, hi] range.
func ClampVec3(v Vec3, lo, hi float64) Vec3 {
	return Vec3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// Component returns the axis component of v (0 = X, 1 = Y, 2 = Z).
func Component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
