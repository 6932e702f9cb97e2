package primitive

import (
	"math"
	"testing"

	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

const testEps = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < testEps
}

func vecApproxEq(a, b types.Vec3) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func checkUnitNormal(t *testing.T, hit *Intersection) {
	t.Helper()
	if n := types.Norm(hit.Normal); !approxEq(n, 1) {
		t.Fatalf("expected unit normal; got length %v", n)
	}
}

func TestFirstValidRoot(t *testing.T) {
	specs := []struct {
		roots  []float64
		expT   float64
		expHit bool
	}{
		{[]float64{-1, 2, 3}, 2, true},
		{[]float64{-0.1, 1.9}, 1.9, true},
		{[]float64{Epsilon / 2, 5}, 5, true},
		{[]float64{-3, -1}, 0, false},
		{nil, 0, false},
	}

	for idx, spec := range specs {
		root, hit := firstValidRoot(spec.roots)
		if hit != spec.expHit {
			t.Fatalf("[spec %d] expected hit flag %v; got %v", idx, spec.expHit, hit)
		}
		if hit && !approxEq(root, spec.expT) {
			t.Fatalf("[spec %d] expected root %v; got %v", idx, spec.expT, root)
		}
	}
}

func TestNearestPicksSmallestDistance(t *testing.T) {
	a := &Intersection{Distance: 3}
	b := &Intersection{Distance: 1.5}

	if got := nearest(nil, a, b, nil); got != b {
		t.Fatalf("expected intersection with distance 1.5; got %v", got)
	}
	if got := nearest(nil, nil); got != nil {
		t.Fatalf("expected nil for all-miss candidates; got %v", got)
	}
}

func TestIncidenceOpposesDirection(t *testing.T) {
	ray := NewRay(types.Vec3{}, types.XYZ(0, 0, 3))
	if inc := incidence(ray); !vecApproxEq(inc, types.XYZ(0, 0, -1)) {
		t.Fatalf("expected incidence (0 0 -1); got %v", inc)
	}
}
