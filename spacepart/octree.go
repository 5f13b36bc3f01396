package spacepart

import (
	"math/rand"
	"time"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/log"
)

// Default build limits for the octree.
const (
	DefaultOctreeMaxDepth    = 8
	DefaultOctreeLeafObjects = 32
)

// A tree of octants over a borrowed object list. Each octant covers one of
// the 8 center-split sub-boxes of its parent. Only leaf octants hold
// objects; an object whose bounds overlap several octants is referenced by
// each of them, same duplicate-reference policy as the kd-tree.
type Octree struct {
	root *Octant
}

// A single octree cell.
type Octant struct {
	bbox     geometry.AABBox
	children [8]*Octant
	objects  []geometry.Intersectable
}

// Build an octree over a borrowed object list. The root box is the bounding
// union of all member bounds. Subdivision stops at maxDepth levels (1-based)
// or once a cell holds at most maxLeafObjs objects. An empty list yields an
// empty tree that misses every ray.
func NewOctree(objects []geometry.Intersectable, maxDepth, maxLeafObjs int) *Octree {
	var bbox geometry.AABBox
	if len(objects) > 0 {
		bbox = objects[0].Bounds()
		for _, obj := range objects[1:] {
			bbox = bbox.Merge(obj.Bounds())
		}
	}
	return NewOctreeWithBounds(objects, maxDepth, maxLeafObjs, bbox)
}

// Build an octree over a borrowed object list using an explicit root box.
// Objects outside the box are never reached during traversal.
func NewOctreeWithBounds(objects []geometry.Intersectable, maxDepth, maxLeafObjs int, bbox geometry.AABBox) *Octree {
	logger := log.New("octree")

	start := time.Now()
	root := newOctant(bbox, objects, maxDepth, 1, maxLeafObjs)
	logger.Debugf(
		"octree build time: %d ms, objects: %d, maxDepth: %d",
		time.Since(start).Nanoseconds()/1e6, len(objects), maxDepth,
	)

	return &Octree{root: root}
}

func newOctant(bbox geometry.AABBox, objects []geometry.Intersectable, maxDepth, curDepth, maxLeafObjs int) *Octant {
	if curDepth == maxDepth || len(objects) <= maxLeafObjs {
		return &Octant{
			bbox:    bbox,
			objects: append([]geometry.Intersectable(nil), objects...),
		}
	}

	bboxes := bbox.Octants()
	var objectsInChild [8][]geometry.Intersectable
	for _, obj := range objects {
		bounds := obj.Bounds()
		for i := 0; i < 8; i++ {
			if bboxes[i].Overlaps(bounds) {
				objectsInChild[i] = append(objectsInChild[i], obj)
			}
		}
	}

	octant := &Octant{bbox: bbox}
	for i := 0; i < 8; i++ {
		if len(objectsInChild[i]) > 0 {
			octant.children[i] = newOctant(bboxes[i], objectsInChild[i], maxDepth, curDepth+1, maxLeafObjs)
		}
	}
	return octant
}

// Intersect implements geometry.Intersectable.
func (t *Octree) Intersect(ray geometry.Ray, rng *rand.Rand) (geometry.Ray, bool) {
	return t.root.Intersect(ray, rng)
}

// Bounds implements geometry.Intersectable.
func (t *Octree) Bounds() geometry.AABBox {
	return t.root.bbox
}

// Intersect implements geometry.Intersectable. Returns the nearest hit by
// squared distance among the non-empty children and any leaf-held objects.
func (o *Octant) Intersect(ray geometry.Ray, rng *rand.Rand) (geometry.Ray, bool) {
	if _, ok := o.bbox.IntersectRay(ray); !ok {
		return geometry.Ray{}, false
	}

	var nearest geometry.Ray
	nearestDist := 0.0
	found := false

	consider := func(hit geometry.Ray) {
		dist := ray.Origin.DistSqr(hit.Origin)
		if !found || dist < nearestDist {
			nearest, nearestDist, found = hit, dist, true
		}
	}

	for _, child := range o.children {
		if child == nil {
			continue
		}
		if hit, ok := child.Intersect(ray, rng); ok {
			consider(hit)
		}
	}
	for _, obj := range o.objects {
		if hit, ok := obj.Intersect(ray, rng); ok {
			consider(hit)
		}
	}

	return nearest, found
}

// Bounds implements geometry.Intersectable.
func (o *Octant) Bounds() geometry.AABBox {
	return o.bbox
}
