package scene

import (
	"math"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/object"
	"github.com/graypath/graypath/scene/reader"
	"github.com/graypath/graypath/types"
)

// Built-in scene constructors selectable by name from the cli.
var builtins = map[string]func() *Movie{
	"spheres":              Spheres,
	"icosahedron":          Icosahedron,
	"spinning-icosahedron": SpinningIcosahedron,
}

// Get a built-in scene by name.
func Builtin(name string) (*Movie, bool) {
	fn, exists := builtins[name]
	if !exists {
		return nil, false
	}
	return fn(), true
}

// List the built-in scene names.
func BuiltinNames() []string {
	return []string{"spheres", "icosahedron", "spinning-icosahedron"}
}

// A handful of spheres over a floor triangle, lit by a single large light.
func Spheres() *Movie {
	camOrigin := types.XYZ(0, 0, 8)

	return &Movie{
		Scene: &Scene{
			Objects: []geometry.Intersectable{
				object.NewSphere(types.XYZ(0, 0, 0), 2),
				object.NewSphere(types.XYZ(5, 0, -3), 2),
				object.NewSphere(types.XYZ(-2.5, 0, 2), 2),
				object.NewSphere(types.XYZ(0.5, -1.5, 2), 1),
				object.NewSphere(types.XYZ(2.1, 2.1, 2), 0.6),
				object.NewTriangle(
					types.XYZ(-100, -10, 100),
					types.XYZ(100, -10, 100),
					types.XYZ(0, -10, -200),
				),
			},
			Lights: []object.Sphere{
				object.NewSphere(types.XYZ(20, 30, 20), 10),
			},
			Camera: NewCamera(
				camOrigin,
				types.XYZ(0, 0, 0).Sub(camOrigin).Normalize(),
				types.XYZ(0, -1, 0),
				90*math.Pi/180,
				90*math.Pi/180,
				2,
			),
		},
		NumFrames: 1,
	}
}

// A static frame of the spinning icosahedron scene.
func Icosahedron() *Movie {
	m := SpinningIcosahedron()
	m.NumFrames = 1
	m.FrameFn = nil
	return m
}

// An icosahedron over a floor triangle with the camera orbiting the origin
// over 64 frames.
func SpinningIcosahedron() *Movie {
	p := []types.Vec3{
		types.XYZ(0.000000, -1.000000, 0.000000).Mul(2),
		types.XYZ(0.000000, -1.000000, 0.000000).Mul(2),
		types.XYZ(0.723600, -0.447215, 0.525720).Mul(2),
		types.XYZ(-0.276385, -0.447215, 0.850640).Mul(2),
		types.XYZ(-0.894425, -0.447215, 0.000000).Mul(2),
		types.XYZ(-0.276385, -0.447215, -0.850640).Mul(2),
		types.XYZ(0.723600, -0.447215, -0.525720).Mul(2),
		types.XYZ(0.276385, 0.447215, 0.850640).Mul(2),
		types.XYZ(-0.723600, 0.447215, 0.525720).Mul(2),
		types.XYZ(-0.723600, 0.447215, -0.525720).Mul(2),
		types.XYZ(0.276385, 0.447215, -0.850640).Mul(2),
		types.XYZ(0.894425, 0.447215, 0.000000).Mul(2),
		types.XYZ(0.000000, 1.000000, 0.000000).Mul(2),
	}

	faces := [][3]int{
		{1, 2, 3}, {2, 1, 6}, {1, 3, 4}, {1, 4, 5}, {1, 5, 6},
		{2, 6, 11}, {3, 2, 7}, {4, 3, 8}, {5, 4, 9}, {6, 5, 10},
		{2, 11, 7}, {3, 7, 8}, {4, 8, 9}, {5, 9, 10}, {6, 10, 11},
		{7, 11, 12}, {8, 7, 12}, {9, 8, 12}, {10, 9, 12}, {11, 10, 12},
	}

	objects := make([]geometry.Intersectable, 0, len(faces)+1)
	for _, f := range faces {
		objects = append(objects, object.NewTriangle(p[f[0]], p[f[1]], p[f[2]]))
	}
	objects = append(objects, object.NewTriangle(
		types.XYZ(-100, -5, 100),
		types.XYZ(100, -5, 100),
		types.XYZ(0, -5, -200),
	))

	camOrigin := types.XYZ(0, 0, 8)
	fov := 90 * math.Pi / 180
	numFrames := 64

	return &Movie{
		Scene: &Scene{
			Objects: objects,
			Lights: []object.Sphere{
				object.NewSphere(types.XYZ(40, 30, 0), 15),
			},
			Camera: NewCamera(
				camOrigin,
				types.XYZ(0, 0, 0).Sub(camOrigin).Normalize(),
				types.XYZ(0, -1, 0),
				fov,
				fov,
				2,
			),
		},
		NumFrames: numFrames,
		FrameFn: func(sc *Scene, frame int) {
			angle := float64(frame) / float64(numFrames) * 2 * math.Pi
			sc.Camera.Origin[2] = 8 * math.Cos(angle)
			sc.Camera.Origin[0] = 8 * math.Sin(angle)
			sc.Camera.Dir = sc.Camera.Origin.Neg().Normalize()
			sc.Camera.Recalc()
		},
	}
}

// Load a scene from a wavefront obj file, adding a floor triangle and the
// default light/camera setup.
func FromObjFile(path string) (*Movie, error) {
	objects, err := reader.ReadTriangles(path)
	if err != nil {
		return nil, err
	}

	objects = append(objects, object.NewTriangle(
		types.XYZ(-100, -75, 100),
		types.XYZ(100, -75, 100),
		types.XYZ(0, -75, -200),
	))

	camOrigin := types.XYZ(0, 2, 2)
	fov := 90 * math.Pi / 180

	return &Movie{
		Scene: &Scene{
			Objects: objects,
			Lights: []object.Sphere{
				object.NewSphere(types.XYZ(40, 30, 0), 15),
			},
			Camera: NewCamera(
				camOrigin,
				types.XYZ(0, -0.5, 0).Sub(camOrigin).Normalize(),
				types.XYZ(0, -1, 0),
				fov,
				fov,
				1,
			),
		},
		NumFrames: 1,
	}, nil
}
