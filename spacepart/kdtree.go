// Package spacepart provides the spatial partitioning acceleration
// structures. Both structures index a borrowed, externally owned primitive
// list and implement geometry.Intersectable themselves, so a tracer can
// treat an accelerated scene exactly like a flat primitive list.
package spacepart

import (
	"math/rand"
	"time"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/log"
)

// Default maximum primitive count at which a kd-tree node becomes a leaf.
const DefaultKdLeafObjects = 32

// A binary tree where every branch divides space with an axis-aligned
// plane, cycling the split axis per level (x -> y -> z -> x ...).
//
// Nodes hold indices into the shared object list rather than the objects
// themselves. A primitive straddling a split plane is referenced by both
// children: the partition duplicates references instead of clipping, trading
// memory for never missing an intersection at a split boundary.
type KdTree struct {
	objects []geometry.Intersectable
	root    *kdNode
}

// A kd-tree node; a branch when left/right are set, a leaf when objectIdxs
// is set. A leaf references every object whose bounds overlap its box.
type kdNode struct {
	bbox       geometry.AABBox
	left       *kdNode
	right      *kdNode
	objectIdxs []int
}

type kdTreeStats struct {
	nodes    int
	leafs    int
	maxDepth int
}

type kdTreeBuilder struct {
	logger      log.Logger
	objects     []geometry.Intersectable
	minLeafObjs int
	stats       kdTreeStats
}

// Build a kd-tree over a borrowed object list. The list must stay immutable
// for the lifetime of the tree. Nodes stop subdividing once they hold fewer
// than minLeafObjs objects; DefaultKdLeafObjects is a reasonable choice.
// An empty list yields an empty tree that misses every ray.
func NewKdTree(objects []geometry.Intersectable, minLeafObjs int) *KdTree {
	if len(objects) == 0 {
		return &KdTree{}
	}

	builder := &kdTreeBuilder{
		logger:      log.New("kdtree"),
		objects:     objects,
		minLeafObjs: minLeafObjs,
	}

	objectIdxs := make([]int, len(objects))
	for i := range objectIdxs {
		objectIdxs[i] = i
	}

	start := time.Now()
	root := builder.buildNode(objectIdxs, 0, 0)
	builder.logger.Debugf(
		"kd-tree build time: %d ms, objects: %d, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		len(objects), builder.stats.maxDepth, builder.stats.nodes, builder.stats.leafs,
	)

	return &KdTree{
		objects: objects,
		root:    root,
	}
}

func (b *kdTreeBuilder) buildNode(objectIdxs []int, axis, depth int) *kdNode {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	bbox := b.objects[objectIdxs[0]].Bounds()
	for _, idx := range objectIdxs[1:] {
		bbox = bbox.Merge(b.objects[idx].Bounds())
	}

	if len(objectIdxs) < b.minLeafObjs {
		return b.createLeaf(bbox, objectIdxs)
	}

	median := b.splitMedian(objectIdxs, axis)

	leftIdxs := make([]int, 0, len(objectIdxs))
	rightIdxs := make([]int, 0, len(objectIdxs))
	for _, idx := range objectIdxs {
		bounds := b.objects[idx].Bounds()
		if bounds.Min[axis] <= median {
			leftIdxs = append(leftIdxs, idx)
		}
		if bounds.Max[axis] >= median {
			rightIdxs = append(rightIdxs, idx)
		}
	}

	// A split is degenerate when either child retains the full input set:
	// recursing on it would loop forever (cycling the axis does not help
	// when the objects are coincident, which any OBJ file can produce).
	// Emit a leaf instead.
	if len(leftIdxs) == len(objectIdxs) || len(rightIdxs) == len(objectIdxs) {
		return b.createLeaf(bbox, objectIdxs)
	}

	b.stats.nodes++
	return &kdNode{
		bbox:  bbox,
		left:  b.buildNode(leftIdxs, (axis+1)%3, depth+1),
		right: b.buildNode(rightIdxs, (axis+1)%3, depth+1),
	}
}

func (b *kdTreeBuilder) createLeaf(bbox geometry.AABBox, objectIdxs []int) *kdNode {
	b.stats.leafs++
	return &kdNode{
		bbox:       bbox,
		objectIdxs: append([]int(nil), objectIdxs...),
	}
}

// Median of the combined multiset of member min and max coordinates along
// the split axis, found by selection rather than a full sort.
func (b *kdTreeBuilder) splitMedian(objectIdxs []int, axis int) float64 {
	coords := make([]float64, 0, 2*len(objectIdxs))
	for _, idx := range objectIdxs {
		bounds := b.objects[idx].Bounds()
		coords = append(coords, bounds.Min[axis], bounds.Max[axis])
	}
	return selectNth(coords, len(coords)/2)
}

// Quickselect the value that would land at index n if coords were sorted.
// Mutates coords in place.
func selectNth(coords []float64, n int) float64 {
	lo, hi := 0, len(coords)-1
	for lo < hi {
		pivot := coords[(lo+hi)/2]
		i, j := lo, hi
		for i <= j {
			for coords[i] < pivot {
				i++
			}
			for coords[j] > pivot {
				j--
			}
			if i <= j {
				coords[i], coords[j] = coords[j], coords[i]
				i++
				j--
			}
		}
		if n <= j {
			hi = j
		} else if n >= i {
			lo = i
		} else {
			break
		}
	}
	return coords[n]
}

// Intersect implements geometry.Intersectable.
func (t *KdTree) Intersect(ray geometry.Ray, rng *rand.Rand) (geometry.Ray, bool) {
	if t.root == nil {
		return geometry.Ray{}, false
	}
	return t.root.intersect(ray, rng, t.objects)
}

// Bounds implements geometry.Intersectable.
func (t *KdTree) Bounds() geometry.AABBox {
	if t.root == nil {
		return geometry.AABBox{}
	}
	return t.root.bbox
}

func (n *kdNode) intersect(ray geometry.Ray, rng *rand.Rand, objects []geometry.Intersectable) (geometry.Ray, bool) {
	if _, ok := n.bbox.IntersectRay(ray); !ok {
		return geometry.Ray{}, false
	}

	if n.left == nil {
		// Leaf: nearest hit among the member objects.
		var nearest geometry.Ray
		nearestDist := 0.0
		found := false
		for _, idx := range n.objectIdxs {
			hit, ok := objects[idx].Intersect(ray, rng)
			if !ok {
				continue
			}
			dist := ray.Origin.DistSqr(hit.Origin)
			if !found || dist < nearestDist {
				nearest, nearestDist, found = hit, dist, true
			}
		}
		return nearest, found
	}

	leftHit, leftOk := n.left.intersect(ray, rng, objects)
	rightHit, rightOk := n.right.intersect(ray, rng, objects)

	switch {
	case leftOk && rightOk:
		if ray.Origin.DistSqr(leftHit.Origin) < ray.Origin.DistSqr(rightHit.Origin) {
			return leftHit, true
		}
		return rightHit, true
	case leftOk:
		return leftHit, true
	default:
		return rightHit, rightOk
	}
}
