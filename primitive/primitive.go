// Package primitive implements the closed catalogue of surfaces the tracer
// can intersect: analytic quadrics, an axis-aligned box, triangles and
// triangle meshes, a family of implicit quartic surfaces, and the gnomon
// composite. Every surface works in its own local space; placing it in the
// world is the scene node's job.
package primitive

import (
	"github.com/SteveThePug/rust-raytracer-sub000/material"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Epsilon is the minimum accepted hit parameter. Hits closer than this are
// discarded to avoid self-intersection when rays start on a surface.
const Epsilon = 1e-6

// Intersection describes a ray/surface hit. Values are produced fresh per
// intersect call and consumed immediately by the shader.
type Intersection struct {
	// Point is the hit position.
	Point types.Vec3
	// Normal is the unit surface normal at the hit.
	Normal types.Vec3
	// Incidence is the unit vector pointing back toward the ray origin.
	Incidence types.Vec3
	// Distance is the hit parameter t along the ray.
	Distance float64
	// Material is attached by the scene node owning the primitive; it is nil
	// for hits returned directly by a bare primitive.
	Material *material.Material
}

// Primitive is a surface supporting ray intersection and extent queries.
// Implementations are immutable after construction and safe for concurrent
// use by parallel ray evaluations.
type Primitive interface {
	// Intersect returns the nearest intersection with Distance >= Epsilon,
	// or nil when the ray misses. Degenerate configurations (parallel rays,
	// zero-length normals at singular points) are misses, never errors.
	Intersect(ray Ray) *Intersection
	// Bounds returns a finite axis-aligned box enclosing the surface.
	Bounds() AABB
}

// firstValidRoot picks the smallest root at or above Epsilon from an
// ascending root list. This is the hit selection policy shared by all
// quadric and quartic surfaces.
func firstValidRoot(ts []float64) (float64, bool) {
	for _, t := range ts {
		if t >= Epsilon {
			return t, true
		}
	}
	return 0, false
}

// nearest resolves a composite surface per the minimum-distance rule: nil
// candidates are excluded, ties keep the first encountered.
func nearest(candidates ...*Intersection) *Intersection {
	var best *Intersection
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if best == nil || c.Distance < best.Distance {
			best = c
		}
	}
	return best
}

// incidence computes the unit vector from a hit back toward the ray origin.
func incidence(ray Ray) types.Vec3 {
	return types.Unit(ray.Direction.Scale(-1))
}
