package raster

import "errors"

var (
	// ErrInvalidDimensions reports a non-positive size or two images whose
	// sizes were required to match but do not.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")
	// ErrOutOfBounds reports a pixel coordinate outside the image.
	ErrOutOfBounds = errors.New("raster: coordinate out of bounds")
	// ErrInvalidParameter reports an operation argument outside its domain
	// (split percentage, levels points, target size, threshold).
	ErrInvalidParameter = errors.New("raster: invalid parameter")
)
