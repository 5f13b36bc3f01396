package renderer

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveFrame(t *testing.T) {
	frame := []float64{0.0, 0.25, 1.0, 2.0, -0.5, 0.01}
	path := filepath.Join(t.TempDir(), "frame.png")

	require.NoError(t, SaveFrame(path, frame, 3, 2, 0.5))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)

	gray, isGray := decoded.(*image.Gray)
	require.True(t, isGray)
	require.Equal(t, image.Rect(0, 0, 3, 2), gray.Bounds())

	// clamp(255 * v^0.5, 0, 255) per sample.
	require.Equal(t, uint8(0), gray.Pix[0])
	require.Equal(t, uint8(127), gray.Pix[1])
	require.Equal(t, uint8(255), gray.Pix[2])
	require.Equal(t, uint8(255), gray.Pix[3])
	require.Equal(t, uint8(0), gray.Pix[4])
	require.Equal(t, uint8(25), gray.Pix[5])
}

func TestSaveFrameDimsMismatch(t *testing.T) {
	err := SaveFrame(filepath.Join(t.TempDir(), "frame.png"), make([]float64, 5), 3, 2, 0.5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not match")
}
