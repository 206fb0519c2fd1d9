// Package config holds the map generator's settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"biomegen/internal/noise"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the generator configuration.
type Config struct {
	Seed        *int64  `json:"seed,omitempty"` // nil = time-seeded
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Dimensions  int     `json:"dimensions"`
	TableSize   int     `json:"table_size"`
	Engine      string  `json:"engine"` // "gradient", "opensimplex" or "perlin"
	Scale       float64 `json:"scale"`
	Slice       float64 `json:"slice"` // third coordinate for fields of 3+ dimensions
	Octaves     int     `json:"octaves"`
	Lacunarity  float64 `json:"lacunarity"`
	Persistence float64 `json:"persistence"`
	Temperature bool    `json:"temperature"`
	Detail      bool    `json:"detail"`
	Workers     int     `json:"workers"`
	Wildlife    int     `json:"wildlife"`
	Render      string  `json:"render"` // "truecolor", "ansi", "plain" or "blocks"
	CellSize    int     `json:"cell_size"`
	Output      string  `json:"output"` // PNG path; empty writes text to stdout
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:       100,
		Height:      100,
		Dimensions:  3,
		TableSize:   256,
		Engine:      "gradient",
		Scale:       0.08,
		Octaves:     1,
		Lacunarity:  2,
		Persistence: 0.5,
		Temperature: true,
		Workers:     1,
		Render:      "truecolor",
		CellSize:    4,
	}
}

// Load reads a JSON config file over the defaults. Keys absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["size"] {
		cfg.Width = fromFile.Width
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["dims"] {
		cfg.Dimensions = fromFile.Dimensions
	}
	if !explicitFlags["table-size"] {
		cfg.TableSize = fromFile.TableSize
	}
	if !explicitFlags["engine"] {
		cfg.Engine = fromFile.Engine
	}
	if !explicitFlags["scale"] {
		cfg.Scale = fromFile.Scale
	}
	if !explicitFlags["slice"] {
		cfg.Slice = fromFile.Slice
	}
	if !explicitFlags["octaves"] {
		cfg.Octaves = fromFile.Octaves
	}
	if !explicitFlags["lacunarity"] {
		cfg.Lacunarity = fromFile.Lacunarity
	}
	if !explicitFlags["persistence"] {
		cfg.Persistence = fromFile.Persistence
	}
	if !explicitFlags["temperature"] {
		cfg.Temperature = fromFile.Temperature
	}
	if !explicitFlags["detail"] {
		cfg.Detail = fromFile.Detail
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["wildlife"] {
		cfg.Wildlife = fromFile.Wildlife
	}
	if !explicitFlags["render"] {
		cfg.Render = fromFile.Render
	}
	if !explicitFlags["cell"] {
		cfg.CellSize = fromFile.CellSize
	}
	if !explicitFlags["out"] {
		cfg.Output = fromFile.Output
	}
}

// Validate checks ranges that do not depend on the noise engine. Engine
// names and per-engine dimension limits are checked when the sampler is built.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	check(c.Width >= 1 && c.Height >= 1, "size %dx%d (minimum 1x1)", c.Width, c.Height)
	check(c.Dimensions >= 2 && c.Dimensions <= noise.MaxDimensions,
		"dimensions %d (2 to %d)", c.Dimensions, noise.MaxDimensions)
	check(c.TableSize >= 1, "table_size %d", c.TableSize)
	check(c.Scale != 0 && !math.IsNaN(c.Scale) && !math.IsInf(c.Scale, 0), "scale %v", c.Scale)
	check(c.Octaves >= 1, "octaves %d (minimum 1)", c.Octaves)
	check(c.Workers >= 1, "workers %d (minimum 1)", c.Workers)
	check(c.Wildlife >= 0, "wildlife %d", c.Wildlife)
	check(c.CellSize >= 1, "cell_size %d (minimum 1)", c.CellSize)
	return errors.Join(errs...)
}

// Size formats the extent as WxH.
func (c *Config) Size() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// ParseSize parses a "WxH" extent.
func ParseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width %q (minimum 1)", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height %q (minimum 1)", parts[1])
	}
	return w, h, nil
}
