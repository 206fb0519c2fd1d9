package maps

import "errors"

var (
	ErrInvalidExtent  = errors.New("map width and height must be positive")
	ErrLayerCount     = errors.New("a sampler needs 2 to 4 layers")
	ErrMissingLayer   = errors.New("required layer missing")
	ErrDuplicateLayer = errors.New("layer configured twice")
	ErrLayerMismatch  = errors.New("layers disagree on dimensions")
	ErrInvalidScale   = errors.New("layer scale must be a non-zero finite number")
)
