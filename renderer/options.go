package renderer

type Options struct {
	// Frame dims.
	FrameW int
	FrameH int

	// Number of render workers. Each worker owns a contiguous row band.
	NumWorkers int

	// Number of jittered camera rays per pixel.
	SamplesPerPixel int

	// Maximum number of reflection bounces per ray.
	MaxReflections int

	// Gamma exponent applied when mapping radiance to 8-bit output.
	Gamma float64

	// Seed for the per-worker random sources. Zero selects a time-based seed.
	Seed int64
}
