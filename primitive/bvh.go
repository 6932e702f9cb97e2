package primitive

import "sort"

// minLeafItems is the item count at or below which the builder stops
// splitting and emits a leaf.
const minLeafItems = 2

// bvhNode is one node of the flattened hierarchy. Nodes are stored in
// depth-first order, so an interior node's left child is the next slot and
// only the right child index needs recording. Leaves reference a contiguous
// run of the reordered item list.
type bvhNode struct {
	bounds AABB
	right  int // index of the right child; unused for leaves
	first  int // first item index for leaves
	count  int // item count; 0 marks an interior node
}

// BVH is a bounding volume hierarchy over a fixed set of primitives. It is
// built once, immutable afterwards, and safe for concurrent queries. Queries
// return exactly the same nearest hit a brute-force scan over the items
// would: the hierarchy is purely a rejection accelerator.
type BVH struct {
	nodes []bvhNode
	items []Primitive
}

// NewBVH builds a hierarchy by recursive longest-axis median splits over the
// item centroids.
func NewBVH(items []Primitive) *BVH {
	b := &BVH{items: make([]Primitive, len(items))}
	copy(b.items, items)
	if len(b.items) > 0 {
		b.build(0, len(b.items))
	}
	return b
}

// build partitions items[first:first+count] and returns the node index.
func (b *BVH) build(first, count int) int {
	bounds := EmptyAABB()
	for _, item := range b.items[first : first+count] {
		bounds = bounds.Union(item.Bounds())
	}

	index := len(b.nodes)
	b.nodes = append(b.nodes, bvhNode{bounds: bounds, first: first, count: count})

	if count <= minLeafItems {
		return index
	}

	// Median split along the longest axis of the centroid extent.
	axis := bounds.LongestAxis()
	run := b.items[first : first+count]
	sort.Slice(run, func(i, j int) bool {
		return centroidAxis(run[i], axis) < centroidAxis(run[j], axis)
	})
	mid := count / 2

	b.build(first, mid) // left child lands at index+1
	right := b.build(first+mid, count-mid)

	// All items now live in the children; the parent only culls.
	b.nodes[index].right = right
	b.nodes[index].count = 0
	return index
}

func centroidAxis(p Primitive, axis int) float64 {
	c := p.Bounds().Center()
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// Intersect returns the nearest intersection over all items, or nil.
func (b *BVH) Intersect(ray Ray) *Intersection {
	if len(b.nodes) == 0 {
		return nil
	}

	var best *Intersection
	stack := make([]int, 0, 64)
	stack = append(stack, 0)

	for len(stack) > 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &b.nodes[index]
		if !node.bounds.Hit(ray) {
			continue
		}

		if node.count > 0 {
			for _, item := range b.items[node.first : node.first+node.count] {
				if hit := item.Intersect(ray); hit != nil {
					if best == nil || hit.Distance < best.Distance {
						best = hit
					}
				}
			}
			continue
		}

		stack = append(stack, index+1, node.right)
	}

	return best
}

// Bounds returns the bounds of the whole hierarchy.
func (b *BVH) Bounds() AABB {
	if len(b.nodes) == 0 {
		return EmptyAABB()
	}
	return b.nodes[0].bounds
}
