package main

import (
	"fmt"
	"os"

	"github.com/graypath/graypath/cmd"
	"github.com/urfave/cli"
)

func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 1024,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 1024,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 16,
			Usage: "number of render workers",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: 128,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "reflections",
			Value: 10,
			Usage: "max reflection bounces per ray",
		},
		cli.Float64Flag{
			Name:  "gamma",
			Value: 0.5,
			Usage: "gamma exponent for 8-bit output mapping",
		},
		cli.StringFlag{
			Name:  "accel",
			Value: "kdtree",
			Usage: "acceleration structure: none, kdtree or octree",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the per-worker random sources; 0 uses the clock",
		},
	}
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "graypath"
	app.Usage = "render grayscale scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene",
			Subcommands: []cli.Command{
				{
					Name:  "frame",
					Usage: "render a single frame",
					Description: `
Render one frame of a scene. The scene argument is either a built-in scene
name (see the scenes command) or a path to a triangulated wavefront obj file.`,
					ArgsUsage: "scene",
					Flags: append(renderFlags(), cli.StringFlag{
						Name:  "out, o",
						Value: "frame.png",
						Usage: "image filename for the rendered frame",
					}),
					Action: cmd.RenderFrame,
				},
				{
					Name:  "movie",
					Usage: "render a scene's full animation",
					Description: `
Render every frame of a scene's animation schedule, applying the scene's
per-frame camera motion between frames.`,
					ArgsUsage: "scene",
					Flags: append(renderFlags(), cli.StringFlag{
						Name:  "out-prefix",
						Value: "output-",
						Usage: "filename prefix for the rendered frames",
					}),
					Action: cmd.RenderMovie,
				},
			},
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
