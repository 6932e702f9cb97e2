package scene

import (
	"fmt"
	"math"

	"github.com/SteveThePug/rust-raytracer-sub000/material"
	"github.com/SteveThePug/rust-raytracer-sub000/primitive"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

// Node places a primitive in the world with a material and an affine
// transform. The primitive may be shared between nodes (a mesh loaded once
// and instanced several times); nodes never mutate it.
type Node struct {
	Primitive primitive.Primitive
	Material  *material.Material

	// Transform state. Rotation holds roll, pitch and yaw in radians.
	Translation [3]float64
	Rotation    [3]float64
	Scaling     [3]float64

	// Active nodes participate in traversal; inactive ones are skipped.
	Active bool

	model       types.Mat4
	invModel    types.Mat4
	invModelT   types.Mat4
	worldBounds primitive.AABB
}

// NewNode creates an active node with an identity transform.
func NewNode(prim primitive.Primitive, mat *material.Material) *Node {
	n := &Node{
		Primitive: prim,
		Material:  mat,
		Scaling:   [3]float64{1, 1, 1},
		Active:    true,
		model:     types.Ident4(),
		invModel:  types.Ident4(),
		invModelT: types.Ident4(),
	}
	n.worldBounds = prim.Bounds()
	return n
}

// SetActive toggles the node's participation in traversal.
func (n *Node) SetActive(active bool) {
	n.Active = active
}

// Translate adds to the node's translation and recomputes its matrices.
func (n *Node) Translate(x, y, z float64) error {
	n.Translation[0] += x
	n.Translation[1] += y
	n.Translation[2] += z
	return n.compute()
}

// Rotate adds roll, pitch and yaw given in degrees to the node's rotation
// and recomputes its matrices.
func (n *Node) Rotate(roll, pitch, yaw float64) error {
	n.Rotation[0] += roll * math.Pi / 180
	n.Rotation[1] += pitch * math.Pi / 180
	n.Rotation[2] += yaw * math.Pi / 180
	return n.compute()
}

// Scale adds to the node's per-axis scale factors and recomputes its
// matrices. Driving a factor to zero makes the transform singular, which is
// reported as an error and leaves the previous matrices in place.
func (n *Node) Scale(x, y, z float64) error {
	n.Scaling[0] += x
	n.Scaling[1] += y
	n.Scaling[2] += z
	return n.compute()
}

// compute recomposes model = T * R * S from the current transform state and
// refreshes the cached inverses. On error (singular model) the cached
// matrices keep their previous consistent values.
func (n *Node) compute() error {
	model := types.Translation(types.XYZ(n.Translation[0], n.Translation[1], n.Translation[2])).
		Mul(types.RotationEuler(n.Rotation[0], n.Rotation[1], n.Rotation[2])).
		Mul(types.Scaling(types.XYZ(n.Scaling[0], n.Scaling[1], n.Scaling[2])))

	invModel, err := model.Inverse()
	if err != nil {
		return fmt.Errorf("node: singular transform: %v", err)
	}

	n.model = model
	n.invModel = invModel
	n.invModelT = invModel.Transpose()
	n.worldBounds = n.Primitive.Bounds().Transform(model)
	return nil
}

// Model returns the current model matrix.
func (n *Node) Model() types.Mat4 {
	return n.model
}

// InvModel returns the current inverse model matrix.
func (n *Node) InvModel() types.Mat4 {
	return n.invModel
}

// WorldBounds returns the primitive's bounding box mapped to world space.
func (n *Node) WorldBounds() primitive.AABB {
	return n.worldBounds
}

// Intersect maps the ray into the node's local space, intersects the
// primitive there, and maps the hit back to world space. The ray parameter
// is preserved by the affine map, so the returned distance stays a parameter
// along the given world ray.
func (n *Node) Intersect(ray primitive.Ray) *primitive.Intersection {
	local := primitive.NewRay(
		n.invModel.MulPoint(ray.Origin),
		n.invModel.MulDir(ray.Direction),
	)

	hit := n.Primitive.Intersect(local)
	if hit == nil {
		return nil
	}

	hit.Point = n.model.MulPoint(hit.Point)
	// Normals transform with the inverse transpose so they stay
	// perpendicular under non-uniform scale.
	normal, ok := types.UnitOK(n.invModelT.MulDir(hit.Normal))
	if !ok {
		return nil
	}
	hit.Normal = normal
	hit.Incidence = types.Unit(ray.Direction.Scale(-1))
	hit.Material = n.Material
	return hit
}
