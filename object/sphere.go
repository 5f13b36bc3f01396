package object

import (
	"math"
	"math/rand"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/types"
)

// A sphere primitive. Spheres double as light sources: a light is a plain
// sphere whose hit the tracer consumes without recursive shading.
type Sphere struct {
	Center types.Vec3
	Radius float64
}

// Create a sphere.
func NewSphere(center types.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Intersect implements geometry.Intersectable.
//
// Solves t^2 - 2t(d . (o-c)) + |o-c|^2 - r^2 = 0 for the distance along the
// ray, with p = -2(d . (o-c)) and discriminant p^2 - 4q.
func (s Sphere) Intersect(ray geometry.Ray, rng *rand.Rand) (geometry.Ray, bool) {
	co := ray.Origin.Sub(s.Center)
	p := -2.0 * ray.Dir.Dot(co)
	delta := p*p - 4.0*(co.LenSqr()-s.Radius*s.Radius)

	// A tangent graze (delta == 0) counts as a miss.
	if delta <= 0 {
		return geometry.Ray{}, false
	}

	q := math.Sqrt(delta)
	d1 := (p + q) / 2.0
	d2 := (p - q) / 2.0

	// Both roots behind the origin: the sphere is behind the ray.
	if d1 < 0 && d2 < 0 {
		return geometry.Ray{}, false
	}

	var d float64
	switch {
	case d1 > 0 && d2 < 0:
		d = d1
	case d1 < 0 && d2 > 0:
		d = d2
	default:
		d = math.Min(d1, d2)
	}

	point := ray.At(d)
	normal := point.Sub(s.Center).Normalize()

	return geometry.NewRay(
		point.Add(normal.Mul(surfaceOffset)),
		normal.Add(normalJitter(rng)),
	), true
}

// Bounds implements geometry.Intersectable.
func (s Sphere) Bounds() geometry.AABBox {
	extent := types.XYZ(s.Radius, s.Radius, s.Radius)
	return geometry.AABBox{
		Min: s.Center.Sub(extent),
		Max: s.Center.Add(extent),
	}
}
