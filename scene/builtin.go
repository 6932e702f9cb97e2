package scene

import (
	"github.com/SteveThePug/rust-raytracer-sub000/material"
	"github.com/SteveThePug/rust-raytracer-sub000/primitive"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Builtin returns the demo scene used when no scene file is given: one of
// each analytic surface arranged around the origin, a gnomon marking the
// axes, and two lights.
func Builtin(aspect float64) (*Scene, error) {
	s := New()

	s.Materials["magenta"] = material.Magenta()
	s.Materials["turquoise"] = material.Turquoise()
	s.Materials["red"] = material.Red()
	s.Materials["blue"] = material.Blue()
	s.Materials["green"] = material.Green()

	place := func(label string, prim primitive.Primitive, mat *material.Material, x, y, z float64) error {
		node := NewNode(prim, mat)
		if err := node.Translate(x, y, z); err != nil {
			return err
		}
		return s.AddNode(label, node)
	}

	steps := []func() error{
		func() error { return place("sphere", primitive.UnitSphere(), material.Magenta(), -4, 0, 0) },
		func() error { return place("box", primitive.UnitBox(), material.Turquoise(), -2, 0, 0) },
		func() error { return place("cylinder", primitive.UnitCylinder(), material.Red(), 0, 0, 0) },
		func() error { return place("cone", primitive.UnitCone(), material.Blue(), 2, 0, 0) },
		func() error { return place("torus", primitive.NewTorus(1, 0.25), material.Green(), 4, 0, 0) },
		func() error { return place("steiner", primitive.NewSteiner(), material.Magenta(), -2, 0, 3) },
		func() error { return place("roman", primitive.NewRoman(), material.Blue(), 0, 0, 3) },
		func() error { return place("cross-cap", primitive.NewCrossCap(), material.Red(), 2, 0, 3) },
		func() error { return place("gnomon", primitive.NewGnomon(), material.Green(), 0, -2, 0) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	s.Lights["key"] = WhiteLight(types.XYZ(5, 8, -6))
	s.Lights["fill"] = NewLight(types.XYZ(-6, 4, -4), types.XYZ(0.4, 0.4, 0.5), [3]float64{1, 0, 0.01})

	s.Cameras["main"] = NewCamera(
		types.XYZ(0, 3, -10),
		types.Vec3{},
		types.XYZ(0, 1, 0),
		45,
		aspect,
	)
	return s, nil
}
