package primitive

import "github.com/SteveThePug/rust-raytracer-sub000/types"

// unitQuarticBounds is a conservative box for the unit-scale quartic
// surfaces. Their real extents sit inside the unit cube; the slack keeps
// grazing rays from being culled early.
func unitQuarticBounds() AABB {
	return NewAABB(types.XYZ(-1.5, -1.5, -1.5), types.XYZ(1.5, 1.5, 1.5))
}

// Steiner is the quartic surface x^2 y^2 + x^2 z^2 + y^2 z^2 + y z^2 = 0.
type Steiner struct {
	*implicitSurface
}

// NewSteiner creates a unit-scale Steiner surface.
func NewSteiner() *Steiner {
	return &Steiner{newImplicitSurface([]term{
		{1, 2, 2, 0},
		{1, 2, 0, 2},
		{1, 0, 2, 2},
		{1, 0, 1, 2},
	}, unitQuarticBounds())}
}

// Steiner2 is the quartic surface x^2 y^2 + x^2 z^2 + y^2 z^2 - 2 x y z = 0.
type Steiner2 struct {
	*implicitSurface
}

// NewSteiner2 creates a unit-scale Steiner2 surface.
func NewSteiner2() *Steiner2 {
	return &Steiner2{newImplicitSurface([]term{
		{1, 2, 2, 0},
		{1, 2, 0, 2},
		{1, 0, 2, 2},
		{-2, 1, 1, 1},
	}, unitQuarticBounds())}
}

// Roman is Steiner's Roman surface x^2 y^2 + y^2 z^2 + z^2 x^2 - x y z = 0.
type Roman struct {
	*implicitSurface
}

// NewRoman creates a unit-scale Roman surface.
func NewRoman() *Roman {
	return &Roman{newImplicitSurface([]term{
		{1, 2, 2, 0},
		{1, 0, 2, 2},
		{1, 2, 0, 2},
		{-1, 1, 1, 1},
	}, unitQuarticBounds())}
}
