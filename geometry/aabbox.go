package geometry

import (
	"math"
	"math/rand"

	"github.com/graypath/graypath/types"
)

// An axis-aligned bounding box. Min <= Max holds per axis.
type AABBox struct {
	Min types.Vec3
	Max types.Vec3
}

// Create a box from two arbitrary corner points. The corners are normalized
// so that the per-axis min/max invariant holds.
func NewAABBox(a, b types.Vec3) AABBox {
	return AABBox{
		Min: types.MinVec3(a, b),
		Max: types.MaxVec3(a, b),
	}
}

// Get the bounding union of two boxes.
func (b AABBox) Merge(other AABBox) AABBox {
	return AABBox{
		Min: types.MinVec3(b.Min, other.Min),
		Max: types.MaxVec3(b.Max, other.Max),
	}
}

// Get the box center.
func (b AABBox) Center() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Split the box at its center into 8 half-extent sub-boxes. Octant i takes
// the low half of axis k when bit k of i is clear and the high half when it
// is set; consumers rely on this ordering being stable.
func (b AABBox) Octants() [8]AABBox {
	center := b.Center()

	var out [8]AABBox
	for i := 0; i < 8; i++ {
		lo, hi := b.Min, b.Max
		for axis := uint(0); axis < 3; axis++ {
			if i&(1<<axis) == 0 {
				hi[axis] = center[axis]
			} else {
				lo[axis] = center[axis]
			}
		}
		out[i] = AABBox{Min: lo, Max: hi}
	}
	return out
}

// Check whether two boxes overlap. The per-axis intervals are closed, so
// boxes that merely touch at a face count as overlapping.
func (b AABBox) Overlaps(other AABBox) bool {
	for axis := 0; axis < 3; axis++ {
		if other.Min[axis] > b.Max[axis] || b.Min[axis] > other.Max[axis] {
			return false
		}
	}
	return true
}

// Test the ray against the box using the slab method and return the
// parametric entry distance. Axes where the ray direction is zero are
// skipped: the ray is parallel to that slab pair, so the box degrades to an
// unbounded extent along that axis. That makes the test conservative for
// parallel rays outside the slab; callers must tolerate the false positive.
func (b AABBox) IntersectRay(ray Ray) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		if ray.Dir[axis] == 0 {
			continue
		}

		t1 := (b.Min[axis] - ray.Origin[axis]) * ray.InvDir[axis]
		t2 := (b.Max[axis] - ray.Origin[axis]) * ray.InvDir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	return tmin, tmax >= tmin
}

// Intersect implements Intersectable. The hit origin is the slab entry point
// (the ray origin when it starts inside the box) and the hit direction is
// the ray's own direction; boxes are pruning volumes and are never shaded.
func (b AABBox) Intersect(ray Ray, _ *rand.Rand) (Ray, bool) {
	tmin, hit := b.IntersectRay(ray)
	if !hit {
		return Ray{}, false
	}
	if tmin < 0 {
		tmin = 0
	}
	return NewRay(ray.At(tmin), ray.Dir), true
}

// Bounds implements Intersectable.
func (b AABBox) Bounds() AABBox {
	return b
}
