// Package scene defines the renderable scene model and the built-in scenes.
package scene

import (
	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/object"
)

// A renderable scene: an intersectable object set, the light spheres and a
// camera. Objects may be raw primitives or acceleration structures wrapping
// them; the tracer does not distinguish. Everything except the camera is
// immutable once rendering starts; the camera may be mutated between frames.
type Scene struct {
	Objects []geometry.Intersectable
	Lights  []object.Sphere
	Camera  *Camera
}

// A scene plus an animation schedule. FrameFn, when set, mutates the scene
// (typically the camera) before each frame is rendered.
type Movie struct {
	Scene     *Scene
	NumFrames int
	FrameFn   func(*Scene, int)
}

// Apply the per-frame mutation for the given frame, if any is configured.
func (m *Movie) CalcFrame(frame int) {
	if m.FrameFn != nil {
		m.FrameFn(m.Scene, frame)
	}
}
