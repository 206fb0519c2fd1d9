package maps

import (
	"fmt"
	"math"

	"biomegen/internal/biome"
	"biomegen/internal/noise"
)

// Readings for layers a sampler was built without.
const (
	neutralTemperature = 0.5
	absentDetail       = 0
)

// LayerConfig describes one noise layer feeding a biome feature.
type LayerConfig struct {
	Feature     biome.Feature
	Scale       float64 // world units per grid cell
	Octaves     int     // <= 1 samples a single octave
	Lacunarity  float64
	Persistence float64
	SeedOffset  int64 // added to the base seed so layers are independent
}

// DefaultLayers returns elevation, temperature and moisture at one scale.
func DefaultLayers(scale float64) []LayerConfig {
	return []LayerConfig{
		{Feature: biome.Elevation, Scale: scale, Octaves: 1, Lacunarity: 2, Persistence: 0.5, SeedOffset: 0},
		{Feature: biome.Temperature, Scale: scale, Octaves: 1, Lacunarity: 2, Persistence: 0.5, SeedOffset: 1},
		{Feature: biome.Moisture, Scale: scale, Octaves: 1, Lacunarity: 2, Persistence: 0.5, SeedOffset: 2},
	}
}

// DetailLayer is an optional fourth, higher-frequency layer.
func DetailLayer(scale float64) LayerConfig {
	return LayerConfig{Feature: biome.Detail, Scale: scale, Octaves: 2, Lacunarity: 2, Persistence: 0.5, SeedOffset: 3}
}

// SamplerOptions configures NewLayeredSampler.
type SamplerOptions struct {
	Engine     noise.Engine
	Dimensions int
	Size       int
	Seed       *int64  // nil gives every layer its own entropy
	Slice      float64 // coordinate on the third axis, before scaling
	Layers     []LayerConfig
}

// BoundLayer pairs a layer with an already built sampler.
type BoundLayer struct {
	LayerConfig
	Sampler noise.Sampler
}

// LayeredSampler turns grid coordinates into biome features. It holds only
// immutable fields and is safe for concurrent use.
type LayeredSampler struct {
	layers [biome.Detail + 1]*BoundLayer
	dims   int
	slice  float64
}

// NewLayeredSampler builds one noise field per layer. All tables are
// complete before the sampler is returned.
func NewLayeredSampler(opts SamplerOptions) (*LayeredSampler, error) {
	if err := checkLayers(opts.Layers); err != nil {
		return nil, err
	}

	bound := make([]BoundLayer, 0, len(opts.Layers))
	for _, lc := range opts.Layers {
		cfg := noise.Config{Dimensions: opts.Dimensions, Size: opts.Size}
		if opts.Seed != nil {
			cfg.Seed = noise.Seed(*opts.Seed + lc.SeedOffset)
		}
		s, err := noise.NewSampler(opts.Engine, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s layer: %w", lc.Feature, err)
		}
		bound = append(bound, BoundLayer{LayerConfig: lc, Sampler: s})
	}
	return NewLayeredSamplerFrom(opts.Slice, bound...)
}

// NewLayeredSamplerFrom assembles a sampler from prebuilt layers.
func NewLayeredSamplerFrom(slice float64, layers ...BoundLayer) (*LayeredSampler, error) {
	cfgs := make([]LayerConfig, len(layers))
	for i, l := range layers {
		cfgs[i] = l.LayerConfig
	}
	if err := checkLayers(cfgs); err != nil {
		return nil, err
	}

	ls := &LayeredSampler{slice: slice}
	for i := range layers {
		l := layers[i]
		if l.Sampler == nil {
			return nil, fmt.Errorf("%s layer: no sampler", l.Feature)
		}
		d := l.Sampler.Dimensions()
		if d < 2 {
			return nil, fmt.Errorf("%s layer: %w: grid sampling needs 2 axes, got %d", l.Feature, ErrLayerMismatch, d)
		}
		if ls.dims == 0 {
			ls.dims = d
		} else if d != ls.dims {
			return nil, fmt.Errorf("%s layer: %w: %d vs %d", l.Feature, ErrLayerMismatch, d, ls.dims)
		}
		ls.layers[l.Feature] = &l
	}
	return ls, nil
}

func checkLayers(layers []LayerConfig) error {
	if len(layers) < 2 || len(layers) > 4 {
		return fmt.Errorf("%w: got %d", ErrLayerCount, len(layers))
	}
	var seen [biome.Detail + 1]bool
	for _, l := range layers {
		if l.Feature > biome.Detail {
			return fmt.Errorf("unknown %s", l.Feature)
		}
		if seen[l.Feature] {
			return fmt.Errorf("%w: %s", ErrDuplicateLayer, l.Feature)
		}
		seen[l.Feature] = true
		if l.Scale == 0 || math.IsNaN(l.Scale) || math.IsInf(l.Scale, 0) {
			return fmt.Errorf("%s layer: %w: %v", l.Feature, ErrInvalidScale, l.Scale)
		}
	}
	for _, f := range []biome.Feature{biome.Elevation, biome.Moisture} {
		if !seen[f] {
			return fmt.Errorf("%w: %s", ErrMissingLayer, f)
		}
	}
	return nil
}

// Dimensions returns the dimensionality shared by every layer.
func (ls *LayeredSampler) Dimensions() int { return ls.dims }

// Has reports whether the sampler carries a layer for f.
func (ls *LayeredSampler) Has(f biome.Feature) bool {
	return f <= biome.Detail && ls.layers[f] != nil
}

// Raw returns the un-normalised reading of layer f at grid cell x, y.
func (ls *LayeredSampler) Raw(f biome.Feature, x, y int) (float64, bool) {
	if !ls.Has(f) {
		return 0, false
	}
	l := ls.layers[f]
	s := l.Scale
	return noise.Fractal(l.Sampler, l.Octaves, l.Lacunarity, l.Persistence,
		float64(x)*s, float64(y)*s, ls.slice*s), true
}

// Features samples every layer at grid cell x, y and normalises from [-1, 1].
func (ls *LayeredSampler) Features(x, y int) biome.Features {
	fs := biome.Features{Temperature: neutralTemperature, Detail: absentDetail}
	for f := biome.Elevation; f <= biome.Detail; f++ {
		v, ok := ls.Raw(f, x, y)
		if !ok {
			continue
		}
		n := biome.Normalize(v, -1, 1)
		switch f {
		case biome.Elevation:
			fs.Elevation = n
		case biome.Temperature:
			fs.Temperature = n
		case biome.Moisture:
			fs.Moisture = n
		case biome.Detail:
			fs.Detail = n
		}
	}
	return fs
}
