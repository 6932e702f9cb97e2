// Package tracer walks rays through a scene and turns intersections into
// colors. Trace and Shade are pure functions of their inputs: they perform
// no I/O, hold no locks, and are safe to call from any worker.
package tracer

import (
	"github.com/SteveThePug/rust-raytracer-sub000/primitive"
	"github.com/SteveThePug/rust-raytracer-sub000/scene"
)

// Trace returns the nearest intersection of the ray with the scene's active
// nodes, or nil when the ray misses everything. A node's world bounding box
// is checked before the full primitive test.
func Trace(sc *scene.Scene, ray primitive.Ray) *primitive.Intersection {
	var best *primitive.Intersection

	for _, node := range sc.Nodes {
		if !node.Active {
			continue
		}
		if !node.WorldBounds().Hit(ray) {
			continue
		}

		hit := node.Intersect(ray)
		if hit == nil {
			continue
		}
		if best == nil || hit.Distance < best.Distance {
			best = hit
		}
	}
	return best
}
