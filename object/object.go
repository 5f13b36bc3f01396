// Package object provides the intersectable scene primitives.
package object

import (
	"math/rand"

	"github.com/graypath/graypath/types"
)

const (
	// Distance a hit point is pushed out along the surface normal so the
	// reflected ray does not immediately re-intersect its own surface.
	surfaceOffset = 1e-3

	// Scale applied to the random normal perturbation that models diffuse
	// scattering. This is the only place randomness enters the material
	// response.
	jitterScale = 1.0 / 16.0
)

// Uniform random vector in the [-0.5, 0.5) cube, scaled by jitterScale.
func normalJitter(rng *rand.Rand) types.Vec3 {
	return types.Vec3{
		rng.Float64() - 0.5,
		rng.Float64() - 0.5,
		rng.Float64() - 0.5,
	}.Mul(jitterScale)
}
