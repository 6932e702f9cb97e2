package tracer

import (
	"math"
	"testing"

	"github.com/SteveThePug/rust-raytracer-sub000/material"
	"github.com/SteveThePug/rust-raytracer-sub000/primitive"
	"github.com/SteveThePug/rust-raytracer-sub000/scene"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

const testEps = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < testEps
}

func singleSphereScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc := scene.New()
	if err := sc.AddNode("sphere", scene.NewNode(primitive.UnitSphere(), material.Magenta())); err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestTraceNearestNode(t *testing.T) {
	sc := singleSphereScene(t)

	far := scene.NewNode(primitive.UnitSphere(), material.Blue())
	if err := far.Translate(0, 0, 10); err != nil {
		t.Fatal(err)
	}
	if err := sc.AddNode("far", far); err != nil {
		t.Fatal(err)
	}

	hit := Trace(sc, primitive.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1)))
	if hit == nil {
		t.Fatal("expected a hit; got a miss")
	}
	if !approxEq(hit.Distance, 4) {
		t.Fatalf("expected the near sphere at distance 4; got %v", hit.Distance)
	}
}

func TestTraceSkipsInactiveNodes(t *testing.T) {
	sc := singleSphereScene(t)
	sc.Nodes["sphere"].SetActive(false)

	if hit := Trace(sc, primitive.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1))); hit != nil {
		t.Fatalf("expected inactive nodes to be skipped; got hit at distance %v", hit.Distance)
	}
}

func TestShadeRayMissReturnsBackground(t *testing.T) {
	sc := singleSphereScene(t)

	colour := ShadeRay(sc, primitive.NewRay(types.XYZ(0, 5, -5), types.XYZ(0, 0, 1)))
	if colour != sc.Background() {
		t.Fatalf("expected the background colour %v; got %v", sc.Background(), colour)
	}
}

func TestShadeWithoutLightsIsBlack(t *testing.T) {
	sc := singleSphereScene(t)

	colour := ShadeRay(sc, primitive.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1)))
	if colour != (types.Vec3{}) {
		t.Fatalf("expected black for an unlit scene; got %v", colour)
	}
}

func TestShadeHeadOnLight(t *testing.T) {
	sc := singleSphereScene(t)
	// Zero falloff: attenuation reduces to 1/(1+0) = 1.
	sc.Lights["head-on"] = scene.NewLight(types.XYZ(0, 0, -5), types.XYZ(1, 1, 1), [3]float64{0, 0, 0})

	hit := Trace(sc, primitive.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1)))
	if hit == nil {
		t.Fatal("expected a hit; got a miss")
	}

	// n = l = h = (0,0,-1): diffuse dot and specular dot are both 1, so the
	// colour is kd + ks clamped per channel.
	exp := types.ClampVec3(hit.Material.Kd.Add(hit.Material.Ks), 0, 1)
	colour := Shade(sc, hit)
	if !approxEq(colour.X, exp.X) || !approxEq(colour.Y, exp.Y) || !approxEq(colour.Z, exp.Z) {
		t.Fatalf("expected colour %v; got %v", exp, colour)
	}
}

func TestShadeSkipsBackFacingLights(t *testing.T) {
	sc := singleSphereScene(t)
	sc.Lights["behind"] = scene.WhiteLight(types.XYZ(0, 0, 5))

	hit := Trace(sc, primitive.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1)))
	if hit == nil {
		t.Fatal("expected a hit; got a miss")
	}
	if colour := Shade(sc, hit); colour != (types.Vec3{}) {
		t.Fatalf("expected no contribution from a light behind the surface; got %v", colour)
	}
}

// With only the quadratic coefficient set, moving the light further away
// must never brighten the surface.
func TestShadeQuadraticFalloffMonotonic(t *testing.T) {
	sc := singleSphereScene(t)

	hit := Trace(sc, primitive.NewRay(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1)))
	if hit == nil {
		t.Fatal("expected a hit; got a miss")
	}

	prev := math.Inf(1)
	for _, dist := range []float64{1, 2, 5, 10, 50} {
		sc.Lights["probe"] = scene.NewLight(types.XYZ(0, 0, -1-dist), types.XYZ(1, 1, 1), [3]float64{0, 0, 1})
		colour := Shade(sc, hit)
		if colour.X >= prev {
			t.Fatalf("expected brightness to strictly decrease with distance; got %v after %v", colour.X, prev)
		}
		prev = colour.X
	}
}

func TestRenderSmallFrame(t *testing.T) {
	sc, err := scene.Builtin(1)
	if err != nil {
		t.Fatal(err)
	}

	frame, stats, err := Render(sc, sc.Cameras["main"], Options{FrameW: 16, FrameH: 16, Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	if got := frame.Bounds().Dx(); got != 16 {
		t.Fatalf("expected a 16 pixel wide frame; got %d", got)
	}

	var rows int
	for _, w := range stats.Workers {
		rows += w.Rows
	}
	if rows != 16 {
		t.Fatalf("expected workers to cover all 16 rows; got %d", rows)
	}

	// The top-left corner looks over every node into the void.
	bg := sc.Background()
	corner := frame.RGBAAt(0, 0)
	if corner.R != uint8(bg.X*255) || corner.G != uint8(bg.Y*255) || corner.B != uint8(bg.Z*255) {
		t.Fatalf("expected the corner pixel to show the background; got %v", corner)
	}
}

func TestRenderRejectsBadDimensions(t *testing.T) {
	sc, err := scene.Builtin(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := Render(sc, sc.Cameras["main"], Options{FrameW: 0, FrameH: 10}); err == nil {
		t.Fatal("expected an error for a zero width frame")
	}
}
