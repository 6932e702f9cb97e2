package tracer

import (
	"math"

	"github.com/SteveThePug/rust-raytracer-sub000/primitive"
	"github.com/SteveThePug/rust-raytracer-sub000/scene"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Shade evaluates the Blinn-Phong model at an intersection against every
// active light and returns the combined color with each channel clamped to
// [0, 1]. A scene with no lights shades to black. Shading never fails: it is
// a pure function of the intersection and the light collection.
func Shade(sc *scene.Scene, hit *primitive.Intersection) types.Vec3 {
	var colour types.Vec3
	mat := hit.Material

	for _, light := range sc.Lights {
		if !light.Active {
			continue
		}

		toLight := light.Position.Sub(hit.Point)
		dist := types.Norm(toLight)
		lightDir, ok := types.UnitOK(toLight)
		if !ok {
			// Light exactly on the surface point.
			continue
		}

		nDotL := hit.Normal.Dot(lightDir)
		if nDotL <= 0 {
			continue
		}
		contribution := mat.Kd.Scale(nDotL)

		// Blinn half-vector specular, only on the lit side.
		half := types.Unit(lightDir.Add(hit.Incidence))
		if nDotH := hit.Normal.Dot(half); nDotH > 0 {
			contribution = contribution.Add(mat.Ks.Scale(math.Pow(nDotH, mat.Shininess)))
		}

		attenuation := 1 / (1 + light.Falloff[0] + light.Falloff[1]*dist + light.Falloff[2]*dist*dist)
		colour = colour.Add(types.MulVec3(light.Colour, contribution.Scale(attenuation)))
	}

	return types.ClampVec3(colour, 0, 1)
}

// ShadeRay combines traversal and shading: the nearest hit is shaded, a miss
// yields the scene background color.
func ShadeRay(sc *scene.Scene, ray primitive.Ray) types.Vec3 {
	hit := Trace(sc, ray)
	if hit == nil {
		return sc.Background()
	}
	return Shade(sc, hit)
}
