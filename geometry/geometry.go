package geometry

import "math/rand"

// Intersectable is implemented by anything a ray can be traced against:
// primitives, bounding boxes and the spatial partitions composed over them.
// Acceleration structures satisfy the same interface as the primitives they
// index, so callers never care which one they trace against.
type Intersectable interface {
	// Test the ray against the receiver. On a hit the returned ray carries
	// the contact point as its origin and the outward surface normal as its
	// direction. The rand source is owned by the calling worker and feeds
	// the diffuse normal jitter applied by primitives.
	Intersect(ray Ray, rng *rand.Rand) (Ray, bool)

	// Get the axis-aligned bounding box enclosing the receiver.
	Bounds() AABBox
}
