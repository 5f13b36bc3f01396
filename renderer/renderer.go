// Package renderer drives the parallel per-frame render loop.
package renderer

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/graypath/graypath/log"
	"github.com/graypath/graypath/scene"
	"github.com/graypath/graypath/tracer"
)

// Renderer renders frames of a scene into a row-major grayscale float
// buffer. The frame is split into one contiguous row band per worker; bands
// are balanced so uneven divisions never drop rows. Each worker owns its
// band exclusively and has its own seeded random source, so the only shared
// mutable state during a render is the advisory progress counter.
type Renderer struct {
	logger log.Logger
	opts   Options
	sc     *scene.Scene
	stats  FrameStats
}

// A contiguous band of frame rows assigned to one worker.
type rowBand struct {
	start int
	count int
}

// Create a renderer for a scene.
func NewRenderer(sc *scene.Scene, opts Options) (*Renderer, error) {
	switch {
	case sc == nil:
		return nil, ErrSceneNotDefined
	case sc.Camera == nil:
		return nil, ErrCameraNotDefined
	case opts.FrameW <= 0 || opts.FrameH <= 0:
		return nil, ErrInvalidFrameDims
	case opts.NumWorkers <= 0:
		return nil, ErrInvalidWorkers
	case opts.SamplesPerPixel <= 0:
		return nil, ErrInvalidSamples
	}

	return &Renderer{
		logger: log.New("renderer"),
		opts:   opts,
		sc:     sc,
	}, nil
}

// Render a frame and return its row-major grayscale buffer. Workers are
// spawned per frame and joined before the buffer is returned; the scene is
// shared read-only across them for the duration of the call.
func (r *Renderer) Render() []float64 {
	opts := r.opts
	frame := make([]float64, opts.FrameW*opts.FrameH)
	bands := splitRows(opts.FrameH, opts.NumWorkers)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	totalPixels := opts.FrameW * opts.FrameH
	var pixelsRendered atomic.Int64

	r.stats = FrameStats{Workers: make([]WorkerStats, len(bands))}
	start := time.Now()

	var wg sync.WaitGroup
	for workerNum, band := range bands {
		wg.Add(1)
		go func(workerNum int, band rowBand) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed + int64(workerNum)))
			bandStart := time.Now()

			for y := band.start; y < band.start+band.count; y++ {
				row := frame[y*opts.FrameW : (y+1)*opts.FrameW]
				for x := 0; x < opts.FrameW; x++ {
					for s := 0; s < opts.SamplesPerPixel; s++ {
						ray := r.sc.Camera.Ray(x, y, opts.FrameW, opts.FrameH, rng)
						row[x] += tracer.TraceRay(ray, r.sc.Objects, r.sc.Lights, opts.MaxReflections+1, rng) /
							float64(opts.SamplesPerPixel)
					}
					pixelsRendered.Add(1)
				}

				curr := pixelsRendered.Load()
				r.logger.Infof(
					"%d/%d pixels rendered, %.1f %%",
					curr, totalPixels, float64(curr)/float64(totalPixels)*100,
				)
			}

			r.stats.Workers[workerNum] = WorkerStats{
				Worker:     workerNum,
				RowStart:   band.start,
				RowCount:   band.count,
				RenderTime: time.Since(bandStart),
			}
		}(workerNum, band)
	}
	wg.Wait()

	r.stats.RenderTime = time.Since(start)
	return frame
}

// Get statistics for the last rendered frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Split height rows into numWorkers contiguous bands. The first height %
// numWorkers bands carry one extra row so every row is assigned exactly
// once.
func splitRows(height, numWorkers int) []rowBand {
	if numWorkers > height {
		numWorkers = height
	}

	bands := make([]rowBand, numWorkers)
	base := height / numWorkers
	extra := height % numWorkers

	start := 0
	for i := range bands {
		count := base
		if i < extra {
			count++
		}
		bands[i] = rowBand{start: start, count: count}
		start += count
	}
	return bands
}
