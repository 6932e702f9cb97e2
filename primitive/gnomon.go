package primitive

import "github.com/SteveThePug/rust-raytracer-sub000/types"

const (
	gnomonArmLength    = 1.0
	gnomonArmThickness = 0.05
)

// Gnomon is an axis indicator built from three thin boxes, one running along
// each positive axis from the origin.
type Gnomon struct {
	arms   [3]*Box
	bounds AABB
}

// NewGnomon creates a gnomon with unit-length arms.
func NewGnomon() *Gnomon {
	g := &Gnomon{
		arms: [3]*Box{
			NewBox(types.XYZ(0, -gnomonArmThickness, -gnomonArmThickness), types.XYZ(gnomonArmLength, gnomonArmThickness, gnomonArmThickness)),
			NewBox(types.XYZ(-gnomonArmThickness, 0, -gnomonArmThickness), types.XYZ(gnomonArmThickness, gnomonArmLength, gnomonArmThickness)),
			NewBox(types.XYZ(-gnomonArmThickness, -gnomonArmThickness, 0), types.XYZ(gnomonArmThickness, gnomonArmThickness, gnomonArmLength)),
		},
	}

	g.bounds = EmptyAABB()
	for _, arm := range g.arms {
		g.bounds = g.bounds.Union(arm.Bounds())
	}
	return g
}

// Intersect returns the nearest hit among the three arms.
func (g *Gnomon) Intersect(ray Ray) *Intersection {
	return nearest(g.arms[0].Intersect(ray), g.arms[1].Intersect(ray), g.arms[2].Intersect(ray))
}

// Bounds returns the union of the arm extents.
func (g *Gnomon) Bounds() AABB {
	return g.bounds
}
