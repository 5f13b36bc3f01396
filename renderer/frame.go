package renderer

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// SaveFrame writes a row-major grayscale float buffer as an 8-bit grayscale
// png, mapping each sample through clamp(255 * value^gamma, 0, 255).
func SaveFrame(path string, frame []float64, frameW, frameH int, gamma float64) error {
	if len(frame) != frameW*frameH {
		return fmt.Errorf("renderer: frame buffer length %d does not match %dx%d", len(frame), frameW, frameH)
	}

	img := image.NewGray(image.Rect(0, 0, frameW, frameH))
	for i, sample := range frame {
		if sample < 0 {
			sample = 0
		}
		v := 255 * math.Pow(sample, gamma)
		if v > 255 {
			v = 255
		}
		img.Pix[i] = uint8(v)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
