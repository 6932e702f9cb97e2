package primitive

// CrossCap is the quartic surface
//
//	4x^4 + 4x^2 y^2 + 4x^2 z^2 + 4x^2 z + y^4 + y^2 z^2 - y^2 = 0
type CrossCap struct {
	*implicitSurface
}

// NewCrossCap creates a unit-scale cross-cap surface.
func NewCrossCap() *CrossCap {
	return &CrossCap{newImplicitSurface([]term{
		{4, 4, 0, 0},
		{4, 2, 2, 0},
		{4, 2, 0, 2},
		{4, 2, 0, 1},
		{1, 0, 4, 0},
		{1, 0, 2, 2},
		{-1, 0, 2, 0},
	}, unitQuarticBounds())}
}

// CrossCap2 is the cross-cap variant whose x^2 z term carries the opposite
// sign, mirroring the surface along Z.
type CrossCap2 struct {
	*implicitSurface
}

// NewCrossCap2 creates a unit-scale mirrored cross-cap surface.
func NewCrossCap2() *CrossCap2 {
	return &CrossCap2{newImplicitSurface([]term{
		{4, 4, 0, 0},
		{4, 2, 2, 0},
		{4, 2, 0, 2},
		{-4, 2, 0, 1},
		{1, 0, 4, 0},
		{1, 0, 2, 2},
		{-1, 0, 2, 0},
	}, unitQuarticBounds())}
}
