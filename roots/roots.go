// Package roots finds the real roots of low-degree polynomials in closed
// form. All solvers return their roots sorted in ascending order; callers
// that want the nearest ray intersection must take the smallest root above
// their threshold rather than rely on any solver-internal ordering.
package roots

import (
	"math"
	"sort"
)

// Coefficients smaller than this are treated as zero when deciding whether a
// polynomial degenerates to a lower degree.
const degenerateEps = 1e-12

// isZero reports whether v is close enough to zero for root-finding purposes.
func isZero(v float64) bool {
	return math.Abs(v) < degenerateEps
}

// Quadratic returns the real roots of a*t^2 + b*t + c = 0 in ascending order.
// A vanishing leading coefficient degrades to the linear case.
func Quadratic(a, b, c float64) []float64 {
	if isZero(a) {
		if isZero(b) {
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}

	// Numerically stable form: compute the larger-magnitude root first and
	// derive the other from the product of roots.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	t0, t1 := q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return []float64{t0, t1}
}

// Cubic returns the real roots of a*t^3 + b*t^2 + c*t + d = 0 in ascending
// order using Cardano's method with the trigonometric branch for three real
// roots.
func Cubic(a, b, c, d float64) []float64 {
	if isZero(a) {
		return Quadratic(b, c, d)
	}

	// Normalize to t^3 + A*t^2 + B*t + C = 0.
	A := b / a
	B := c / a
	C := d / a

	// Substitute t = u - A/3 to eliminate the quadratic term:
	// u^3 + 3p*u + 2q = 0.
	sqA := A * A
	p := (-sqA/3.0 + B) / 3.0
	q := (2.0/27.0*A*sqA - A*B/3.0 + C) / 2.0

	cbP := p * p * p
	disc := q*q + cbP

	var out []float64
	switch {
	case isZero(disc):
		if isZero(q) {
			// Triple root.
			out = []float64{0}
		} else {
			u := math.Cbrt(-q)
			out = []float64{2 * u, -u}
		}
	case disc < 0:
		// Three distinct real roots.
		phi := math.Acos(-q/math.Sqrt(-cbP)) / 3.0
		s := 2 * math.Sqrt(-p)
		out = []float64{
			s * math.Cos(phi),
			-s * math.Cos(phi+math.Pi/3.0),
			-s * math.Cos(phi-math.Pi/3.0),
		}
	default:
		sqrtDisc := math.Sqrt(disc)
		out = []float64{math.Cbrt(sqrtDisc-q) - math.Cbrt(sqrtDisc+q)}
	}

	sub := A / 3.0
	for i := range out {
		out[i] -= sub
	}
	sort.Float64s(out)
	return out
}

// Quartic returns the real roots of a*t^4 + b*t^3 + c*t^2 + d*t + e = 0 in
// ascending order using Ferrari's method via a resolvent cubic. A vanishing
// leading coefficient degrades to the cubic case, which matters for implicit
// surfaces intersected by axis-aligned rays.
func Quartic(a, b, c, d, e float64) []float64 {
	if isZero(a) {
		return Cubic(b, c, d, e)
	}

	// Normalize to t^4 + A*t^3 + B*t^2 + C*t + D = 0.
	A := b / a
	B := c / a
	C := d / a
	D := e / a

	// Substitute t = u - A/4 to eliminate the cubic term:
	// u^4 + p*u^2 + q*u + r = 0.
	sqA := A * A
	p := -3.0/8.0*sqA + B
	q := sqA*A/8.0 - A*B/2.0 + C
	r := -3.0/256.0*sqA*sqA + sqA*B/16.0 - A*C/4.0 + D

	var out []float64
	if isZero(r) {
		// No absolute term: u * (u^3 + p*u + q) = 0.
		out = append(Cubic(1, 0, p, q), 0)
	} else {
		// Solve the resolvent cubic; any real root will do.
		res := Cubic(1, -p/2.0, -r, r*p/2.0-q*q/8.0)
		if len(res) == 0 {
			return nil
		}
		z := res[0]

		u := z*z - r
		v := 2*z - p
		switch {
		case isZero(u):
			u = 0
		case u > 0:
			u = math.Sqrt(u)
		default:
			return nil
		}
		switch {
		case isZero(v):
			v = 0
		case v > 0:
			v = math.Sqrt(v)
		default:
			return nil
		}

		quad1 := v
		if q < 0 {
			quad1 = -v
		}
		out = append(out, Quadratic(1, quad1, z-u)...)
		out = append(out, Quadratic(1, -quad1, z+u)...)
	}

	sub := A / 4.0
	for i := range out {
		out[i] -= sub
	}
	sort.Float64s(out)
	return out
}
