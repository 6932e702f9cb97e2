package roots

import (
	"math"
	"sort"
	"testing"
)

func approxEqual(got, want []float64, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			return false
		}
	}
	return true
}

func TestQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"two roots negative", 1, 3, 2, []float64{-2, -1}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear degenerate", 0, 2, -4, []float64{2}},
		{"constant degenerate", 0, 0, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quadratic(tt.a, tt.b, tt.c)
			if !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("Quadratic(%v, %v, %v) = %v; want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestQuadratic_Ascending(t *testing.T) {
	// A root behind the origin with smaller magnitude must still sort first;
	// the nearest-hit policy depends on ascending order, not |t| order.
	got := Quadratic(1, -1.8, -0.19) // roots -0.1 and 1.9
	want := []float64{-0.1, 1.9}
	if !approxEqual(got, want, 1e-9) {
		t.Fatalf("expected ascending roots %v; got %v", want, got)
	}
}

func TestCubic(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		want       []float64
	}{
		// (t-1)(t-2)(t-3) = t^3 - 6t^2 + 11t - 6
		{"three roots", 1, -6, 11, -6, []float64{1, 2, 3}},
		// (t-2)(t^2+1) = t^3 - 2t^2 + t - 2
		{"one root", 1, -2, 1, -2, []float64{2}},
		{"quadratic degenerate", 0, 1, -3, 2, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cubic(tt.a, tt.b, tt.c, tt.d)
			if !approxEqual(got, tt.want, 1e-7) {
				t.Errorf("Cubic(%v, %v, %v, %v) = %v; want %v", tt.a, tt.b, tt.c, tt.d, got, tt.want)
			}
		})
	}
}

func TestQuartic(t *testing.T) {
	tests := []struct {
		name          string
		a, b, c, d, e float64
		want          []float64
	}{
		// (t-1)(t-2)(t-3)(t-4) = t^4 - 10t^3 + 35t^2 - 50t + 24
		{"four roots", 1, -10, 35, -50, 24, []float64{1, 2, 3, 4}},
		// (t^2-1)(t^2-4) = t^4 - 5t^2 + 4 (biquadratic)
		{"biquadratic", 1, 0, -5, 0, 4, []float64{-2, -1, 1, 2}},
		// (t^2+1)(t^2+4) has no real roots
		{"no real roots", 1, 0, 5, 0, 4, nil},
		// t * (t-1)(t-2)(t-3)
		{"root at zero", 1, -6, 11, -6, 0, []float64{0, 1, 2, 3}},
		{"cubic degenerate", 0, 1, -6, 11, -6, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quartic(tt.a, tt.b, tt.c, tt.d, tt.e)
			if !approxEqual(got, tt.want, 1e-6) {
				t.Errorf("Quartic = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestQuartic_RootsSatisfyPolynomial(t *testing.T) {
	// Torus-style quartic with irrational roots: check residuals instead of
	// exact values.
	a, b, c, d, e := 1.0, 0.0, -7.25, 0.0, 9.0
	ts := Quartic(a, b, c, d, e)
	if len(ts) == 0 {
		t.Fatal("expected real roots")
	}
	if !sort.Float64sAreSorted(ts) {
		t.Fatalf("roots are not sorted: %v", ts)
	}
	for _, root := range ts {
		res := a*math.Pow(root, 4) + b*math.Pow(root, 3) + c*root*root + d*root + e
		if math.Abs(res) > 1e-6 {
			t.Errorf("root %v has residual %v", root, res)
		}
	}
}
