package noise

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a field is configured with fewer than one axis.
	ErrInvalidDimensions = errors.New("dimensions must be at least 1")
	// ErrInvalidSize is returned when a table size is not positive.
	ErrInvalidSize = errors.New("table size must be positive")
	// ErrUnknownEngine is returned for an engine name NewSampler does not know.
	ErrUnknownEngine = errors.New("unknown noise engine")
)

// ConfigError reports a rejected construction parameter.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("noise config: %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
