package object

import (
	"math/rand"
	"testing"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/types"
	"github.com/stretchr/testify/require"
)

var _ geometry.Intersectable = Sphere{}

func TestSphereIntersect(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sphere := NewSphere(types.XYZ(0, 0, 3), 0.5)

	// Aimed at the center: always a hit.
	_, ok := sphere.Intersect(geometry.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1)), rng)
	require.True(t, ok)

	// Offset beyond the radius misses, a slightly smaller offset hits.
	_, ok = sphere.Intersect(geometry.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0.51, 3)), rng)
	require.False(t, ok)
	_, ok = sphere.Intersect(geometry.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0.49, 3)), rng)
	require.True(t, ok)
}

func TestSphereBehindRay(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sphere := NewSphere(types.XYZ(0, 0, -3), 0.5)

	_, ok := sphere.Intersect(geometry.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1)), rng)
	require.False(t, ok)
}

func TestSphereRayInside(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sphere := NewSphere(types.XYZ(0, 0, 0), 1)

	// One root ahead, one behind: the positive root wins.
	hit, ok := sphere.Intersect(geometry.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1)), rng)
	require.True(t, ok)
	require.InDelta(t, 1.001, hit.Origin[2], 1e-9)
}

func TestSphereHitGeometry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sphere := NewSphere(types.XYZ(0, 0, 3), 0.5)

	hit, ok := sphere.Intersect(geometry.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1)), rng)
	require.True(t, ok)

	// The hit point is the near intersection pushed slightly towards the ray
	// origin along the normal; the point itself is deterministic.
	require.InDelta(t, 0.0, hit.Origin[0], 1e-9)
	require.InDelta(t, 0.0, hit.Origin[1], 1e-9)
	require.InDelta(t, 2.499, hit.Origin[2], 1e-9)

	// The returned normal carries random jitter but stays near the outward
	// unit normal and stays normalized.
	require.InDelta(t, 1.0, hit.Dir.Len(), 1e-12)
	require.True(t, hit.Dir.Dot(types.XYZ(0, 0, -1)) > 0.99)
}

func TestSphereBounds(t *testing.T) {
	sphere := NewSphere(types.XYZ(1, 2, 3), 0.5)
	bounds := sphere.Bounds()
	require.Equal(t, types.XYZ(0.5, 1.5, 2.5), bounds.Min)
	require.Equal(t, types.XYZ(1.5, 2.5, 3.5), bounds.Max)
}
