package scene

import (
	"math"

	"github.com/SteveThePug/rust-raytracer-sub000/primitive"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Camera is a pinhole camera generating one primary ray per pixel.
type Camera struct {
	Eye    types.Vec3
	Target types.Vec3
	Up     types.Vec3
	// Fov is the vertical field of view in degrees.
	Fov    float64
	Aspect float64

	forward types.Vec3
	right   types.Vec3
	up      types.Vec3
	halfW   float64
	halfH   float64
}

// NewCamera creates a camera looking from eye toward target.
func NewCamera(eye, target, up types.Vec3, fov, aspect float64) *Camera {
	c := &Camera{Eye: eye, Target: target, Up: up, Fov: fov, Aspect: aspect}
	c.Update()
	return c
}

// Update recomputes the camera basis after any field change.
func (c *Camera) Update() {
	c.forward = types.Unit(c.Target.Sub(c.Eye))
	c.right = types.Unit(c.forward.Cross(c.Up))
	c.up = c.right.Cross(c.forward)
	c.halfH = math.Tan(c.Fov * math.Pi / 360)
	c.halfW = c.halfH * c.Aspect
}

// PrimaryRay returns the ray through the center of pixel (x, y) on a
// width x height frame. Pixel (0, 0) is the top-left corner.
func (c *Camera) PrimaryRay(x, y, width, height int) primitive.Ray {
	ndcX := 2*(float64(x)+0.5)/float64(width) - 1
	ndcY := 1 - 2*(float64(y)+0.5)/float64(height)

	dir := c.forward.
		Add(c.right.Scale(ndcX * c.halfW)).
		Add(c.up.Scale(ndcY * c.halfH))
	return primitive.NewRay(c.Eye, types.Unit(dir))
}
