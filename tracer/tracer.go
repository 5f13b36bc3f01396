// Package tracer implements the recursive light transport algorithm.
package tracer

import (
	"math/rand"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/object"
)

// Fraction of the recursive light contribution that survives each bounce.
const reflectionDecay = 0.98

// TraceRay returns the light intensity in [0, 1] reaching the ray's origin
// along its path through the scene.
//
// The ray is intersected against every scene object (any of which may be an
// acceleration structure) and every light sphere; the nearest hit by squared
// distance wins. A light hit contributes full intensity directly. An object
// hit reflects the ray off the hit normal and recurses while bounce budget
// remains, attenuating the recursive result by a fixed decay per bounce;
// an exhausted budget or an empty path contributes nothing.
//
// remainingSteps is the bounce budget including the initial cast; callers
// pass maxReflections+1. The rand source is owned by the calling worker.
func TraceRay(ray geometry.Ray, objects []geometry.Intersectable, lights []object.Sphere, remainingSteps int, rng *rand.Rand) float64 {
	var nearest geometry.Ray
	nearestDist := 0.0
	nearestIsLight := false
	found := false

	consider := func(hit geometry.Ray, isLight bool) {
		dist := ray.Origin.DistSqr(hit.Origin)
		if !found || dist < nearestDist {
			nearest, nearestDist, nearestIsLight, found = hit, dist, isLight, true
		}
	}

	for _, obj := range objects {
		if hit, ok := obj.Intersect(ray, rng); ok {
			consider(hit, false)
		}
	}
	for _, light := range lights {
		if hit, ok := light.Intersect(ray, rng); ok {
			consider(hit, true)
		}
	}

	switch {
	case !found:
		return 0.0
	case nearestIsLight:
		return 1.0
	case remainingSteps > 1:
		return reflectionDecay * TraceRay(ray.Reflect(nearest), objects, lights, remainingSteps-1, rng)
	default:
		return 0.0
	}
}
