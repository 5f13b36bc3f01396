package cmd

import (
	"errors"
	"strings"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/scene"
	"github.com/graypath/graypath/spacepart"
	"github.com/urfave/cli"
)

// Load the scene named by the first cli argument: either a built-in scene
// name or a path to a wavefront obj file.
func loadScene(ctx *cli.Context) (*scene.Movie, error) {
	if ctx.NArg() != 1 {
		return nil, errors.New("missing scene argument; expected a built-in scene name or an .obj file path")
	}

	name := ctx.Args().First()
	if strings.HasSuffix(name, ".obj") {
		return scene.FromObjFile(name)
	}

	movie, exists := scene.Builtin(name)
	if !exists {
		return nil, errors.New("unknown scene '" + name + "'; available: " + strings.Join(scene.BuiltinNames(), ", "))
	}
	return movie, nil
}

// Wrap the scene's objects into the acceleration structure selected by the
// accel flag. The structures implement the same interface as the primitives
// they index, so the swap is invisible to the tracer.
func applyAccel(ctx *cli.Context, sc *scene.Scene) error {
	if len(sc.Objects) == 0 {
		return nil
	}

	switch accel := ctx.String("accel"); accel {
	case "none":
	case "kdtree":
		sc.Objects = []geometry.Intersectable{
			spacepart.NewKdTree(sc.Objects, spacepart.DefaultKdLeafObjects),
		}
	case "octree":
		sc.Objects = []geometry.Intersectable{
			spacepart.NewOctree(sc.Objects, spacepart.DefaultOctreeMaxDepth, spacepart.DefaultOctreeLeafObjects),
		}
	default:
		return errors.New("unknown acceleration structure '" + accel + "'; expected none, kdtree or octree")
	}
	return nil
}

// ListScenes prints the available built-in scenes.
func ListScenes(_ *cli.Context) error {
	for _, name := range scene.BuiltinNames() {
		logger.Noticef("%s", name)
	}
	return nil
}
