package tracer

import (
	"math/rand"
	"testing"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/object"
	"github.com/graypath/graypath/types"
	"github.com/stretchr/testify/require"
)

func TestLightDirectlyAhead(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lights := []object.Sphere{object.NewSphere(types.XYZ(0, 0, 3), 0.5)}

	ray := geometry.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	require.Equal(t, 1.0, TraceRay(ray, nil, lights, 3, rng))
}

func TestNothingAhead(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lights := []object.Sphere{object.NewSphere(types.XYZ(0, 10, 0), 0.5)}

	ray := geometry.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	require.Equal(t, 0.0, TraceRay(ray, nil, lights, 3, rng))
}

func TestSingleBounceAttenuation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// An object sphere ahead of the ray; reflection sends the ray back
	// towards a light large enough to catch every jittered bounce.
	objects := []geometry.Intersectable{object.NewSphere(types.XYZ(0, 0, 0), 1)}
	lights := []object.Sphere{object.NewSphere(types.XYZ(0, 0, -40), 25)}

	ray := geometry.NewRay(types.XYZ(0, 0, -10), types.XYZ(0, 0, 1))
	require.Equal(t, 0.98, TraceRay(ray, objects, lights, 3, rng))
}

func TestBounceBudgetExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	objects := []geometry.Intersectable{object.NewSphere(types.XYZ(0, 0, 0), 1)}
	lights := []object.Sphere{object.NewSphere(types.XYZ(0, 0, -40), 25)}

	// An object hit with no bounces left contributes nothing.
	ray := geometry.NewRay(types.XYZ(0, 0, -10), types.XYZ(0, 0, 1))
	require.Equal(t, 0.0, TraceRay(ray, objects, lights, 1, rng))
}

func TestNearestHitWins(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Object in front of the light along the same ray: the object wins and
	// the exhausted budget turns the path dark.
	objects := []geometry.Intersectable{object.NewSphere(types.XYZ(0, 0, 3), 0.5)}
	lights := []object.Sphere{object.NewSphere(types.XYZ(0, 0, 8), 0.5)}
	ray := geometry.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	require.Equal(t, 0.0, TraceRay(ray, objects, lights, 1, rng))

	// Light in front of the object: full intensity, no recursion.
	objects = []geometry.Intersectable{object.NewSphere(types.XYZ(0, 0, 8), 0.5)}
	lights = []object.Sphere{object.NewSphere(types.XYZ(0, 0, 3), 0.5)}
	require.Equal(t, 1.0, TraceRay(ray, objects, lights, 1, rng))
}

func TestBounceOffTriangle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Floor triangle bouncing the ray up into a light large enough to catch
	// every jittered reflection: exactly one application of the decay.
	objects := []geometry.Intersectable{object.NewTriangle(
		types.XYZ(-50, 0, 50),
		types.XYZ(50, 0, 50),
		types.XYZ(0, 0, -100),
	)}
	lights := []object.Sphere{object.NewSphere(types.XYZ(0, 60, 0), 45)}

	ray := geometry.RayFromTo(types.XYZ(0, 10, 0), types.XYZ(2, 0, 0))
	require.Equal(t, 0.98, TraceRay(ray, objects, lights, 5, rng))
}
