package primitive

import (
	"github.com/SteveThePug/rust-raytracer-sub000/roots"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// term is a single monomial c * x^i * y^j * z^k of an implicit surface
// polynomial. Total degree must not exceed 4 so ray substitution stays
// within the quartic solver's reach.
type term struct {
	c       float64
	i, j, k int
}

func (t term) eval(p types.Vec3) float64 {
	return t.c * intPow(p.X, t.i) * intPow(p.Y, t.j) * intPow(p.Z, t.k)
}

func intPow(v float64, n int) float64 {
	out := 1.0
	for ; n > 0; n-- {
		out *= v
	}
	return out
}

// binomial coefficients C(n, k) for n <= 4.
var binomial = [5][5]float64{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
	{1, 4, 6, 4, 1},
}

// implicitSurface is a quartic (or lower degree) surface defined as the zero
// set of a monomial polynomial F(x, y, z) = 0. Normals come from the
// polynomial's gradient, which is derived symbolically at construction time.
type implicitSurface struct {
	terms  []term
	grad   [3][]term
	bounds AABB
}

func newImplicitSurface(terms []term, bounds AABB) *implicitSurface {
	s := &implicitSurface{terms: terms, bounds: bounds}
	for _, t := range terms {
		if t.i > 0 {
			s.grad[0] = append(s.grad[0], term{t.c * float64(t.i), t.i - 1, t.j, t.k})
		}
		if t.j > 0 {
			s.grad[1] = append(s.grad[1], term{t.c * float64(t.j), t.i, t.j - 1, t.k})
		}
		if t.k > 0 {
			s.grad[2] = append(s.grad[2], term{t.c * float64(t.k), t.i, t.j, t.k - 1})
		}
	}
	return s
}

// eval computes F(p).
func (s *implicitSurface) eval(p types.Vec3) float64 {
	var sum float64
	for _, t := range s.terms {
		sum += t.eval(p)
	}
	return sum
}

// gradient computes the (unnormalized) normal direction at p.
func (s *implicitSurface) gradient(p types.Vec3) types.Vec3 {
	var g [3]float64
	for axis := 0; axis < 3; axis++ {
		for _, t := range s.grad[axis] {
			g[axis] += t.eval(p)
		}
	}
	return types.XYZ(g[0], g[1], g[2])
}

// rayCoefficients substitutes the parametric ray into F and collects the
// resulting polynomial in t. Each coordinate power expands binomially:
// (o + t*d)^n = sum C(n,a) o^(n-a) d^a t^a, and the per-axis expansions
// convolve into at most a degree-4 polynomial.
func (s *implicitSurface) rayCoefficients(ray Ray) [5]float64 {
	var coeffs [5]float64

	o, d := ray.Origin, ray.Direction
	for _, t := range s.terms {
		var xs, ys, zs [5]float64
		for a := 0; a <= t.i; a++ {
			xs[a] = binomial[t.i][a] * intPow(o.X, t.i-a) * intPow(d.X, a)
		}
		for a := 0; a <= t.j; a++ {
			ys[a] = binomial[t.j][a] * intPow(o.Y, t.j-a) * intPow(d.Y, a)
		}
		for a := 0; a <= t.k; a++ {
			zs[a] = binomial[t.k][a] * intPow(o.Z, t.k-a) * intPow(d.Z, a)
		}

		for a := 0; a <= t.i; a++ {
			for b := 0; b <= t.j; b++ {
				for c := 0; c <= t.k; c++ {
					coeffs[a+b+c] += t.c * xs[a] * ys[b] * zs[c]
				}
			}
		}
	}
	return coeffs
}

func (s *implicitSurface) Intersect(ray Ray) *Intersection {
	if !s.bounds.Hit(ray) {
		return nil
	}

	c := s.rayCoefficients(ray)
	dist, ok := firstValidRoot(roots.Quartic(c[4], c[3], c[2], c[1], c[0]))
	if !ok {
		return nil
	}

	point := ray.At(dist)
	normal, ok := types.UnitOK(s.gradient(point))
	if !ok {
		// Singular point of the surface; there is no well defined normal.
		return nil
	}

	return &Intersection{
		Point:     point,
		Normal:    normal,
		Incidence: incidence(ray),
		Distance:  dist,
	}
}

func (s *implicitSurface) Bounds() AABB {
	return s.bounds
}
