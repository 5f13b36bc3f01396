package renderer

import (
	"math"
	"testing"

	"github.com/graypath/graypath/object"
	"github.com/graypath/graypath/scene"
	"github.com/graypath/graypath/types"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		FrameW:          8,
		FrameH:          6,
		NumWorkers:      4,
		SamplesPerPixel: 4,
		MaxReflections:  2,
		Gamma:           0.5,
		Seed:            1,
	}
}

func testScene() *scene.Scene {
	return &scene.Scene{
		Lights: []object.Sphere{object.NewSphere(types.XYZ(0, 0, 10), 8)},
		Camera: scene.NewCamera(
			types.XYZ(0, 0, 0),
			types.XYZ(0, 0, 1),
			types.XYZ(0, 1, 0),
			20*math.Pi/180,
			20*math.Pi/180,
			1,
		),
	}
}

func TestNewRendererValidation(t *testing.T) {
	sc := testScene()

	_, err := NewRenderer(nil, testOptions())
	require.Equal(t, ErrSceneNotDefined, err)

	_, err = NewRenderer(&scene.Scene{}, testOptions())
	require.Equal(t, ErrCameraNotDefined, err)

	opts := testOptions()
	opts.FrameW = 0
	_, err = NewRenderer(sc, opts)
	require.Equal(t, ErrInvalidFrameDims, err)

	opts = testOptions()
	opts.NumWorkers = 0
	_, err = NewRenderer(sc, opts)
	require.Equal(t, ErrInvalidWorkers, err)

	opts = testOptions()
	opts.SamplesPerPixel = 0
	_, err = NewRenderer(sc, opts)
	require.Equal(t, ErrInvalidSamples, err)
}

// A narrow-fov camera staring into a huge light: every sample of every
// pixel reaches the light directly, so the mean radiance is 1 everywhere.
func TestRenderFullyLitFrame(t *testing.T) {
	r, err := NewRenderer(testScene(), testOptions())
	require.NoError(t, err)

	frame := r.Render()
	require.Len(t, frame, 8*6)
	for _, sample := range frame {
		require.InDelta(t, 1.0, sample, 1e-9)
	}

	stats := r.Stats()
	require.Len(t, stats.Workers, 4)

	// 6 rows over 4 workers: the first two bands carry the remainder.
	rows := 0
	for i, ws := range stats.Workers {
		require.Equal(t, i, ws.Worker)
		require.Equal(t, rows, ws.RowStart)
		rows += ws.RowCount
	}
	require.Equal(t, 6, rows)
}

func TestRenderEmptyScene(t *testing.T) {
	sc := testScene()
	sc.Lights = nil

	r, err := NewRenderer(sc, testOptions())
	require.NoError(t, err)

	for _, sample := range r.Render() {
		require.Equal(t, 0.0, sample)
	}
}

func TestSplitRows(t *testing.T) {
	cases := []struct {
		height, workers int
		expCounts       []int
	}{
		{10, 3, []int{4, 3, 3}},
		{8, 4, []int{2, 2, 2, 2}},
		{7, 4, []int{2, 2, 2, 1}},
		{1, 1, []int{1}},
		// More workers than rows: clamp to one row per worker.
		{3, 8, []int{1, 1, 1}},
	}

	for caseIndex, tc := range cases {
		bands := splitRows(tc.height, tc.workers)
		require.Len(t, bands, len(tc.expCounts), "case %d", caseIndex)

		next := 0
		for i, band := range bands {
			require.Equal(t, tc.expCounts[i], band.count, "case %d band %d", caseIndex, i)
			require.Equal(t, next, band.start, "case %d band %d", caseIndex, i)
			next += band.count
		}
		require.Equal(t, tc.height, next, "case %d", caseIndex)
	}
}
