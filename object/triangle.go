package object

import (
	"math/rand"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/types"
)

// A triangle primitive with a precomputed unit face normal following the
// right-hand rule over the vertex order A -> B -> C. Only front faces (the
// side the normal points away from) register hits.
type Triangle struct {
	A types.Vec3
	B types.Vec3
	C types.Vec3

	Normal types.Vec3
}

// Create a triangle from its three vertices.
func NewTriangle(a, b, c types.Vec3) Triangle {
	return Triangle{
		A:      a,
		B:      b,
		C:      c,
		Normal: b.Sub(a).Cross(c.Sub(a)).Normalize(),
	}
}

// Intersect implements geometry.Intersectable.
func (t Triangle) Intersect(ray geometry.Ray, rng *rand.Rand) (geometry.Ray, bool) {
	// Rays travelling with the normal approach the back face; rays parallel
	// to the plane never cross it. Both are misses.
	nd := t.Normal.Dot(ray.Dir)
	if nd >= 0 {
		return geometry.Ray{}, false
	}

	dist := t.A.Sub(ray.Origin).Dot(t.Normal) / nd
	if dist <= 0 {
		return geometry.Ray{}, false
	}

	// Point-in-triangle via the three edge cross products; a point on an
	// edge counts as inside.
	p := ray.At(dist)
	if t.Normal.Dot(t.B.Sub(t.A).Cross(p.Sub(t.A))) < 0 ||
		t.Normal.Dot(t.C.Sub(t.B).Cross(p.Sub(t.B))) < 0 ||
		t.Normal.Dot(t.A.Sub(t.C).Cross(p.Sub(t.C))) < 0 {
		return geometry.Ray{}, false
	}

	return geometry.NewRay(
		p.Add(t.Normal.Mul(surfaceOffset)),
		t.Normal.Add(normalJitter(rng)),
	), true
}

// Bounds implements geometry.Intersectable.
func (t Triangle) Bounds() geometry.AABBox {
	return geometry.AABBox{
		Min: types.MinVec3(t.A, types.MinVec3(t.B, t.C)),
		Max: types.MaxVec3(t.A, types.MaxVec3(t.B, t.C)),
	}
}
