package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInvalidFrameDims = errors.New("renderer: frame dimensions must be positive")
	ErrInvalidWorkers   = errors.New("renderer: worker count must be positive")
	ErrInvalidSamples   = errors.New("renderer: samples per pixel must be positive")
)
