// Package scene assembles primitives, materials, lights and cameras into a
// world the tracer can query. Scenes are mutated while being built and frozen
// for the duration of a render pass.
package scene

import (
	"fmt"

	"github.com/SteveThePug/rust-raytracer-sub000/material"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// backgroundColour is returned for rays that miss every node.
var backgroundColour = types.XYZ(float64(0x22)/255, float64(0x22)/255, float64(0x11)/255)

// Scene is a collection of named nodes, materials, lights and cameras.
// Insertion order is irrelevant; labels are unique per map.
type Scene struct {
	Nodes     map[string]*Node
	Materials map[string]*material.Material
	Lights    map[string]*Light
	Cameras   map[string]*Camera
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		Nodes:     make(map[string]*Node),
		Materials: make(map[string]*material.Material),
		Lights:    make(map[string]*Light),
		Cameras:   make(map[string]*Camera),
	}
}

// AddNode registers a node under a unique label.
func (s *Scene) AddNode(label string, node *Node) error {
	if _, exists := s.Nodes[label]; exists {
		return fmt.Errorf("scene: node %q already defined", label)
	}
	s.Nodes[label] = node
	return nil
}

// AddMaterial registers a material under a unique label.
func (s *Scene) AddMaterial(label string, mat *material.Material) error {
	if _, exists := s.Materials[label]; exists {
		return fmt.Errorf("scene: material %q already defined", label)
	}
	s.Materials[label] = mat
	return nil
}

// AddLight registers a light under a unique label.
func (s *Scene) AddLight(label string, light *Light) error {
	if _, exists := s.Lights[label]; exists {
		return fmt.Errorf("scene: light %q already defined", label)
	}
	s.Lights[label] = light
	return nil
}

// AddCamera registers a camera under a unique label.
func (s *Scene) AddCamera(label string, camera *Camera) error {
	if _, exists := s.Cameras[label]; exists {
		return fmt.Errorf("scene: camera %q already defined", label)
	}
	s.Cameras[label] = camera
	return nil
}

// Background returns the colour shown where no node is hit.
func (s *Scene) Background() types.Vec3 {
	return backgroundColour
}
