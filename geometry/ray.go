package geometry

import "github.com/graypath/graypath/types"

// A ray with a normalized direction. The per-axis direction reciprocals are
// computed once at construction and reused by the slab box test.
//
// Rays double as surface hits: an intersection returns a Ray whose origin is
// the contact point and whose direction is the outward surface normal, which
// lets a reflection be expressed directly against the hit.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3

	// Reciprocal of Dir per axis; zero where the direction component is zero.
	InvDir types.Vec3
}

// Create a ray from an origin and a direction. The direction is normalized.
func NewRay(origin, dir types.Vec3) Ray {
	r := Ray{
		Origin: origin,
		Dir:    dir.Normalize(),
	}
	for axis := 0; axis < 3; axis++ {
		if r.Dir[axis] != 0 {
			r.InvDir[axis] = 1.0 / r.Dir[axis]
		}
	}
	return r
}

// Create a ray passing from one point towards another.
func RayFromTo(from, to types.Vec3) Ray {
	return NewRay(from, to.Sub(from))
}

// Get the point at parametric distance t along the ray.
func (r Ray) At(t float64) types.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Reflect the ray off a surface hit. The reflected ray starts at the hit
// point and leaves along 2*(n . -d)*n + d, renormalized.
func (r Ray) Reflect(hit Ray) Ray {
	dir := hit.Dir.Mul(2 * hit.Dir.Dot(r.Dir.Neg())).Add(r.Dir)
	return NewRay(hit.Origin, dir)
}
