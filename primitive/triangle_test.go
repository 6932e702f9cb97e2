package primitive

import (
	"testing"

	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

func testTriangle() *Triangle {
	return NewTriangle(
		types.XYZ(-1, -1, 0),
		types.XYZ(1, -1, 0),
		types.XYZ(0, 1, 0),
	)
}

func TestTriangleIntersect(t *testing.T) {
	tri := testTriangle()

	specs := []struct {
		desc    string
		ray     Ray
		expHit  bool
		expDist float64
	}{
		{
			desc:    "hit through the interior",
			ray:     NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1)),
			expHit:  true,
			expDist: 5,
		},
		{
			desc:    "hit from the back side",
			ray:     NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1)),
			expHit:  true,
			expDist: 5,
		},
		{
			desc:   "plane hit outside the barycentric bounds",
			ray:    NewRay(types.XYZ(2, 2, -5), types.XYZ(0, 0, 1)),
			expHit: false,
		},
		{
			desc:   "ray parallel to the triangle plane",
			ray:    NewRay(types.XYZ(0, -5, 1), types.XYZ(0, 1, 0)),
			expHit: false,
		},
		{
			desc:   "triangle behind the origin",
			ray:    NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, -1)),
			expHit: false,
		},
	}

	for _, spec := range specs {
		t.Run(spec.desc, func(t *testing.T) {
			hit := tri.Intersect(spec.ray)
			if !spec.expHit {
				if hit != nil {
					t.Fatalf("expected miss; got hit at distance %v", hit.Distance)
				}
				return
			}
			if hit == nil {
				t.Fatal("expected a hit; got a miss")
			}
			if !approxEq(hit.Distance, spec.expDist) {
				t.Fatalf("expected distance %v; got %v", spec.expDist, hit.Distance)
			}
			checkUnitNormal(t, hit)
		})
	}
}

func TestTriangleFlatNormal(t *testing.T) {
	tri := testTriangle()

	// The winding above makes the normal face +z; it is returned unchanged
	// regardless of which side the ray arrives from.
	front := tri.Intersect(NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1)))
	back := tri.Intersect(NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1)))
	if front == nil || back == nil {
		t.Fatal("expected hits from both sides")
	}
	if !vecApproxEq(front.Normal, types.XYZ(0, 0, 1)) || !vecApproxEq(back.Normal, types.XYZ(0, 0, 1)) {
		t.Fatalf("expected flat normal (0 0 1) from both sides; got %v and %v", front.Normal, back.Normal)
	}
}

func TestDegenerateTriangleNeverHits(t *testing.T) {
	tri := NewTriangle(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1), types.XYZ(2, 2, 2))
	if hit := tri.Intersect(NewRay(types.XYZ(1, 1, -5), types.XYZ(0, 0, 1))); hit != nil {
		t.Fatalf("expected a degenerate triangle to always miss; got hit at distance %v", hit.Distance)
	}
}
