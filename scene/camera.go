package scene

import (
	"math"
	"math/rand"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/types"
)

// The camera converts pixel coordinates into world-space rays. It
// precomputes a film plane at SensorDistance along the view direction; per
// sample, pixel coordinates are jittered by [-0.5, 0.5) pixel widths on both
// film axes before mapping to a direction, which is the anti-aliasing
// mechanism. Two samples of the same pixel yield independent rays.
type Camera struct {
	Origin types.Vec3
	Dir    types.Vec3
	Up     types.Vec3

	// Horizontal and vertical field of view in radians.
	XFov float64
	YFov float64

	// Distance from the origin to the film plane.
	SensorDistance float64

	pixelLowerLeft types.Vec3
	xVec           types.Vec3
	yVec           types.Vec3
}

// Create a camera. dir and up are expected to be normalized.
func NewCamera(origin, dir, up types.Vec3, xFov, yFov, sensorDistance float64) *Camera {
	c := &Camera{
		Origin:         origin,
		Dir:            dir,
		Up:             up,
		XFov:           xFov,
		YFov:           yFov,
		SensorDistance: sensorDistance,
	}
	c.Recalc()
	return c
}

// Recalculate the film plane after mutating the public fields. The frame
// loop calls this between frames when animating the camera; it must never
// run while render workers are active.
func (c *Camera) Recalc() {
	yVec := c.Up.Normalize().Mul(math.Tan(c.YFov / 2))
	xVec := c.Up.Cross(c.Dir).Normalize().Mul(math.Tan(c.XFov / 2))

	c.pixelLowerLeft = c.Origin.Add(c.Dir.Mul(c.SensorDistance)).Sub(xVec).Sub(yVec)
	c.xVec = xVec.Mul(2)
	c.yVec = yVec.Mul(2)
}

// Generate a jittered ray through pixel (x, y) of an xRes by yRes frame.
// The rand source is owned by the calling worker.
func (c *Camera) Ray(x, y, xRes, yRes int, rng *rand.Rand) geometry.Ray {
	dx := (float64(x) + rng.Float64() - 0.5) / float64(xRes)
	dy := (float64(y) + rng.Float64() - 0.5) / float64(yRes)

	dir := c.pixelLowerLeft.Add(c.xVec.Mul(dx)).Add(c.yVec.Mul(dy)).Sub(c.Origin)
	return geometry.NewRay(c.Origin, dir)
}
