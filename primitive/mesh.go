package primitive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/SteveThePug/rust-raytracer-sub000/log"
	"github.com/SteveThePug/rust-raytracer-sub000/types"
)

var meshLogger = log.New("mesh")

// Mesh is an immutable collection of triangles forming one conceptual
// surface. A mesh may be shared by several nodes; none of them may mutate it.
type Mesh struct {
	triangles []*Triangle

	bvh    *BVH
	bounds AABB
}

// NewMesh creates a mesh from a triangle list and builds the acceleration
// hierarchy over it. A mesh with no triangles is valid: it never intersects
// and its bounds collapse to a point at the origin.
func NewMesh(triangles []*Triangle) *Mesh {
	m := &Mesh{triangles: triangles}

	if len(triangles) == 0 {
		m.bounds = NewAABB(types.Vec3{}, types.Vec3{})
		m.bvh = NewBVH(nil)
		return m
	}

	bounds := EmptyAABB()
	items := make([]Primitive, len(triangles))
	for i, tri := range triangles {
		items[i] = tri
		bounds = bounds.Union(tri.Bounds())
	}
	m.bounds = bounds
	m.bvh = NewBVH(items)
	return m
}

// Triangles returns the mesh's triangle list. Callers must treat it as
// read-only.
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles
}

// Intersect returns the minimum-distance hit over all member triangles. The
// hierarchy only skips triangles whose boxes the ray provably misses, so the
// result matches a brute-force scan.
func (m *Mesh) Intersect(ray Ray) *Intersection {
	return m.bvh.Intersect(ray)
}

// intersectLinear is the reference brute-force scan, kept for validating the
// hierarchy against in tests.
func (m *Mesh) intersectLinear(ray Ray) *Intersection {
	var best *Intersection
	for _, tri := range m.triangles {
		if hit := tri.Intersect(ray); hit != nil {
			if best == nil || hit.Distance < best.Distance {
				best = hit
			}
		}
	}
	return best
}

// Bounds returns the union of all triangle extents.
func (m *Mesh) Bounds() AABB {
	return m.bounds
}

// LoadMesh reads a mesh from a file in the vertex/face text format.
func LoadMesh(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: %v", err)
	}
	defer f.Close()

	mesh, err := ReadMesh(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: %s: %v", path, err)
	}
	meshLogger.Debugf("loaded %s: %d triangles", path, len(mesh.triangles))
	return mesh, nil
}

// ReadMesh parses the line-oriented vertex/face format:
//
//	v <x> <y> <z>   appends a vertex
//	f <i> <j> <k>   defines a triangle by 1-based vertex indices
//
// Any other line is ignored. Malformed numeric fields and out-of-range
// indices abort the load: a partially loaded mesh would silently corrupt the
// scene it is placed in. A file with no face lines yields an empty mesh.
func ReadMesh(r io.Reader) (*Mesh, error) {
	var (
		vertices  []types.Vec3
		triangles []*Triangle
		lineNum   int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates; got %d", lineNum, len(fields)-1)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				coord, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad vertex coordinate %q", lineNum, fields[i+1])
				}
				coords[i] = coord
			}
			vertices = append(vertices, types.XYZ(coords[0], coords[1], coords[2]))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs 3 vertex indices; got %d", lineNum, len(fields)-1)
			}
			var idx [3]int
			for i := 0; i < 3; i++ {
				n, err := strconv.Atoi(fields[i+1])
				if err != nil {
					return nil, fmt.Errorf("line %d: bad vertex index %q", lineNum, fields[i+1])
				}
				if n < 1 || n > len(vertices) {
					return nil, fmt.Errorf("line %d: vertex index %d out of range [1, %d]", lineNum, n, len(vertices))
				}
				idx[i] = n - 1
			}
			triangles = append(triangles, NewTriangle(vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %v", lineNum, err)
	}

	return NewMesh(triangles), nil
}
