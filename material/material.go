// Package material holds the static reflectance data bound to scene nodes.
package material

import "github.com/SteveThePug/rust-raytracer-sub000/types"

// Material describes the Phong reflectance of a surface. All channel
// coefficients are expected to be in [0, 1].
type Material struct {
	// Kd is the diffuse reflectance per colour channel.
	Kd types.Vec3
	// Ks is the specular reflectance per colour channel.
	Ks types.Vec3
	// Kr is the reflective coefficient per colour channel. It is carried for
	// scene descriptions but unused while recursive reflection stays out of
	// scope.
	Kr types.Vec3
	// Shininess is the specular exponent.
	Shininess float64
}

// New creates a material from its coefficients.
func New(kd, ks, kr types.Vec3, shininess float64) *Material {
	return &Material{Kd: kd, Ks: ks, Kr: kr, Shininess: shininess}
}

// The preset palette used by the built-in scenes.

func Magenta() *Material {
	return New(types.XYZ(1, 0, 1), types.XYZ(1, 0, 1), types.Vec3{}, 0.5)
}

func Turquoise() *Material {
	return New(types.XYZ(0.25, 0.3, 0.7), types.XYZ(0.25, 0.3, 0.7), types.Vec3{}, 0.5)
}

func Red() *Material {
	return New(types.XYZ(0.8, 0, 0.3), types.XYZ(0.8, 0.3, 0), types.Vec3{}, 0.5)
}

func Blue() *Material {
	return New(types.XYZ(0, 0.3, 0.6), types.XYZ(0.3, 0, 0.6), types.Vec3{}, 0.5)
}

func Green() *Material {
	return New(types.XYZ(0, 1, 0), types.XYZ(0, 1, 0), types.Vec3{}, 0.5)
}
