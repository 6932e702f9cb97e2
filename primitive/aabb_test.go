package primitive

import (
	"testing"

	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

func TestAABBHit(t *testing.T) {
	box := NewAABB(types.XYZ(-1, -1, -1), types.XYZ(1, 1, 1))

	specs := []struct {
		desc   string
		ray    Ray
		expHit bool
	}{
		{
			desc:   "head-on hit",
			ray:    NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1)),
			expHit: true,
		},
		{
			desc:   "origin inside",
			ray:    NewRay(types.Vec3{}, types.XYZ(0, 0, 1)),
			expHit: true,
		},
		{
			desc:   "box behind the origin",
			ray:    NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, 1)),
			expHit: false,
		},
		{
			desc:   "parallel ray inside the slab",
			ray:    NewRay(types.XYZ(0, 0.5, -5), types.XYZ(0, 0, 1)),
			expHit: true,
		},
		{
			desc:   "parallel ray outside the slab",
			ray:    NewRay(types.XYZ(0, 2, -5), types.XYZ(0, 0, 1)),
			expHit: false,
		},
		{
			desc:   "diagonal miss",
			ray:    NewRay(types.XYZ(-5, 0, 0), types.XYZ(1, 1, 0)),
			expHit: false,
		},
	}

	for _, spec := range specs {
		t.Run(spec.desc, func(t *testing.T) {
			if got := box.Hit(spec.ray); got != spec.expHit {
				t.Fatalf("expected hit=%v; got %v", spec.expHit, got)
			}
		})
	}
}

// Construction pads the corners so grazing rays along a face still register.
func TestAABBGrazingRay(t *testing.T) {
	box := NewAABB(types.XYZ(-1, -1, -1), types.XYZ(1, 1, 1))
	if !box.Hit(NewRay(types.XYZ(1, 0, -5), types.XYZ(0, 0, 1))) {
		t.Fatal("expected a grazing ray along the +x face to hit")
	}
}

func TestAABBNormalizesInvertedCorners(t *testing.T) {
	box := NewAABB(types.XYZ(1, 2, 3), types.XYZ(-1, -2, -3))
	if box.Min.X > box.Max.X || box.Min.Y > box.Max.Y || box.Min.Z > box.Max.Z {
		t.Fatalf("expected normalized corners; got min %v max %v", box.Min, box.Max)
	}
}

func TestAABBUnionAndGrow(t *testing.T) {
	a := NewAABB(types.XYZ(-1, -1, -1), types.Vec3{})
	b := NewAABB(types.Vec3{}, types.XYZ(2, 2, 2))

	union := a.Union(b)
	if union.Min.X > -1 || union.Max.X < 2 {
		t.Fatalf("expected union to span [-1, 2]; got %v", union)
	}

	grown := a.Grow(types.XYZ(5, 0, 0))
	if grown.Max.X < 5 {
		t.Fatalf("expected grow to reach x=5; got %v", grown)
	}

	empty := EmptyAABB()
	if got := empty.Union(a); got.Min != a.Min || got.Max != a.Max {
		t.Fatalf("expected union with the empty box to be the identity; got %v", got)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(types.Vec3{}, types.XYZ(1, 5, 2))
	if axis := box.LongestAxis(); axis != 1 {
		t.Fatalf("expected longest axis 1; got %d", axis)
	}
}

func TestAABBTransform(t *testing.T) {
	box := NewAABB(types.XYZ(-1, -1, -1), types.XYZ(1, 1, 1))
	moved := box.Transform(types.Translation(types.XYZ(10, 0, 0)))
	if moved.Min.X > 9.1 || moved.Max.X < 10.9 {
		t.Fatalf("expected the box translated to x near 10; got %v", moved)
	}
}

func TestBVHMatchesBruteForce(t *testing.T) {
	spheres := []Primitive{
		NewSphere(types.XYZ(-4, 0, 0), 1),
		NewSphere(types.XYZ(-2, 1, 0), 1),
		NewSphere(types.XYZ(0, 0, 2), 1),
		NewSphere(types.XYZ(2, -1, 0), 1),
		NewSphere(types.XYZ(4, 0, -2), 1),
		NewSphere(types.XYZ(6, 2, 1), 1),
	}
	bvh := NewBVH(spheres)

	for x := -6.0; x <= 8; x += 0.5 {
		for y := -2.0; y <= 3; y += 0.5 {
			ray := NewRay(types.XYZ(x, y, -10), types.XYZ(0, 0, 1))

			var want *Intersection
			for _, s := range spheres {
				if hit := s.Intersect(ray); hit != nil {
					if want == nil || hit.Distance < want.Distance {
						want = hit
					}
				}
			}

			got := bvh.Intersect(ray)
			if (got == nil) != (want == nil) {
				t.Fatalf("ray %v: hierarchy hit=%v, brute force hit=%v", ray, got != nil, want != nil)
			}
			if got != nil && !approxEq(got.Distance, want.Distance) {
				t.Fatalf("ray %v: hierarchy distance %v, brute force distance %v", ray, got.Distance, want.Distance)
			}
		}
	}
}

func TestBVHEmptyAndSingle(t *testing.T) {
	ray := NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1))

	if hit := NewBVH(nil).Intersect(ray); hit != nil {
		t.Fatalf("expected an empty hierarchy to miss; got %v", hit)
	}

	single := NewBVH([]Primitive{UnitSphere()})
	hit := single.Intersect(ray)
	if hit == nil || !approxEq(hit.Distance, 4) {
		t.Fatalf("expected a hit at distance 4; got %v", hit)
	}
}
