package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/graypath/graypath/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func optionsFromContext(ctx *cli.Context) renderer.Options {
	return renderer.Options{
		FrameW:          ctx.Int("width"),
		FrameH:          ctx.Int("height"),
		NumWorkers:      ctx.Int("workers"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxReflections:  ctx.Int("reflections"),
		Gamma:           ctx.Float64("gamma"),
		Seed:            ctx.Int64("seed"),
	}
}

// RenderFrame renders a single frame of a scene and saves it as a png.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	movie, err := loadScene(ctx)
	if err != nil {
		return err
	}
	if err = applyAccel(ctx, movie.Scene); err != nil {
		return err
	}

	opts := optionsFromContext(ctx)
	r, err := renderer.NewRenderer(movie.Scene, opts)
	if err != nil {
		return err
	}

	out := ctx.String("out")

	logger.Noticef("rendering %dx%d frame with %d workers", opts.FrameW, opts.FrameH, opts.NumWorkers)
	frame := r.Render()
	if err = renderer.SaveFrame(out, frame, opts.FrameW, opts.FrameH, opts.Gamma); err != nil {
		return err
	}
	logger.Noticef("saved frame to %s", out)

	displayFrameStats(r.Stats())
	return nil
}

// RenderMovie renders every frame of a scene's animation schedule, applying
// the per-frame camera mutation between frames, and saves each frame as
// out-prefix%04d.png.
func RenderMovie(ctx *cli.Context) error {
	setupLogging(ctx)

	movie, err := loadScene(ctx)
	if err != nil {
		return err
	}
	if err = applyAccel(ctx, movie.Scene); err != nil {
		return err
	}

	opts := optionsFromContext(ctx)
	r, err := renderer.NewRenderer(movie.Scene, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	for frame := 0; frame < movie.NumFrames; frame++ {
		movie.CalcFrame(frame)

		buf := r.Render()
		out := fmt.Sprintf("%s%04d.png", ctx.String("out-prefix"), frame)
		if err = renderer.SaveFrame(out, buf, opts.FrameW, opts.FrameH, opts.Gamma); err != nil {
			return err
		}
		logger.Noticef("frame %d/%d completed: %s", frame+1, movie.NumFrames, out)
	}
	logger.Noticef("rendered %d frames in %s", movie.NumFrames, time.Since(start))

	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Row start", "Rows", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Worker),
			fmt.Sprintf("%d", stat.RowStart),
			fmt.Sprintf("%d", stat.RowCount),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
