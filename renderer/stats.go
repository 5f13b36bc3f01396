package renderer

import "time"

// Per-worker statistics for a rendered frame.
type WorkerStats struct {
	// Worker index.
	Worker int

	// First row and row count of the worker's band.
	RowStart int
	RowCount int

	// Wall time the worker spent tracing its band.
	RenderTime time.Duration
}

// Frame render statistics.
type FrameStats struct {
	Workers []WorkerStats

	// Total wall time for the frame.
	RenderTime time.Duration
}
