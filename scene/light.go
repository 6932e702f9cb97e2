package scene

import "github.com/SteveThePug/rust-raytracer-sub000/types"

// Light is a point light with polynomial distance attenuation. Falloff holds
// the constant, linear and quadratic coefficients.
type Light struct {
	Position types.Vec3
	Colour   types.Vec3
	Falloff  [3]float64
	Active   bool
}

// NewLight creates an active light.
func NewLight(position, colour types.Vec3, falloff [3]float64) *Light {
	return &Light{
		Position: position,
		Colour:   colour,
		Falloff:  falloff,
		Active:   true,
	}
}

// WhiteLight creates a white light with constant-only falloff.
func WhiteLight(position types.Vec3) *Light {
	return NewLight(position, types.XYZ(1, 1, 1), [3]float64{1, 0, 0})
}
