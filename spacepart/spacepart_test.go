package spacepart

import (
	"math/rand"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/object"
	"github.com/graypath/graypath/types"
)

// Deterministic cloud of spheres and triangles for differential tests.
func testObjects(n int) []geometry.Intersectable {
	rng := rand.New(rand.NewSource(42))

	objects := make([]geometry.Intersectable, 0, n)
	for i := 0; i < n; i++ {
		center := types.XYZ(
			rng.Float64()*20-10,
			rng.Float64()*20-10,
			rng.Float64()*20-10,
		)
		if i%3 == 0 {
			objects = append(objects, object.NewTriangle(
				center,
				center.Add(types.XYZ(rng.Float64()+0.5, 0, 0)),
				center.Add(types.XYZ(0, rng.Float64()+0.5, 0)),
			))
		} else {
			objects = append(objects, object.NewSphere(center, rng.Float64()*0.8+0.2))
		}
	}
	return objects
}

// Fan of rays from a point towards a grid of targets in the z=0 plane.
func testRays(origin types.Vec3) []geometry.Ray {
	var rays []geometry.Ray
	for i := -6; i <= 6; i++ {
		for j := -6; j <= 6; j++ {
			rays = append(rays, geometry.RayFromTo(origin, types.XYZ(float64(i)*2, float64(j)*2, 0)))
		}
	}
	return rays
}

// Nearest hit by brute force over the flat object list. Hit points are
// deterministic (jitter only perturbs the returned normal), so results are
// directly comparable with tree traversals even though the random streams
// diverge.
func bruteForceIntersect(ray geometry.Ray, objects []geometry.Intersectable, rng *rand.Rand) (geometry.Ray, bool) {
	var nearest geometry.Ray
	nearestDist := 0.0
	found := false

	for _, obj := range objects {
		hit, ok := obj.Intersect(ray, rng)
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
