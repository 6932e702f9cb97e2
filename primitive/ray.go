package primitive

import "github.com/SteveThePug/rust-raytracer-sub000/types"

// Ray is the parametric line origin + t*direction. The direction is not
// required to be unit length: intersection code is invariant to its scale when
// computing hit points, but the hit parameter t is then a parameter along the
// supplied direction rather than a metric distance.
type Ray struct {
	Origin    types.Vec3
	Direction types.Vec3
}

// NewRay creates a ray.
func NewRay(origin, direction types.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) types.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
