package primitive

import "github.com/SteveThePug/rust-raytracer-sub000/types"

// Torus is a ring around the Y axis with major radius R (center of tube to
// center of ring) and minor radius r (tube thickness). Its implicit form
//
//	(x^2 + y^2 + z^2 + R^2 - r^2)^2 - 4R^2 (x^2 + z^2) = 0
//
// expands into the monomial terms below.
type Torus struct {
	*implicitSurface

	Major, Minor float64
}

// NewTorus creates a torus with the given major and minor radii.
func NewTorus(major, minor float64) *Torus {
	k := major*major - minor*minor
	terms := []term{
		{1, 4, 0, 0},
		{1, 0, 4, 0},
		{1, 0, 0, 4},
		{2, 2, 2, 0},
		{2, 2, 0, 2},
		{2, 0, 2, 2},
		{2*k - 4*major*major, 2, 0, 0},
		{2 * k, 0, 2, 0},
		{2*k - 4*major*major, 0, 0, 2},
		{k * k, 0, 0, 0},
	}
	outer := major + minor
	bounds := NewAABB(
		types.XYZ(-outer, -minor, -outer),
		types.XYZ(outer, minor, outer),
	)
	return &Torus{
		implicitSurface: newImplicitSurface(terms, bounds),
		Major:           major,
		Minor:           minor,
	}
}
