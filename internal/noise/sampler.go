package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Sampler is anything that maps N coordinates to a value nominally in [-1, 1].
type Sampler interface {
	Dimensions() int
	Sample(coords ...float64) float64
}

// Engine names a Sampler implementation.
type Engine string

const (
	EngineGradient    Engine = "gradient"
	EngineOpenSimplex Engine = "opensimplex"
	EnginePerlin      Engine = "perlin"
)

// Engines lists every engine NewSampler accepts.
func Engines() []Engine {
	return []Engine{EngineGradient, EngineOpenSimplex, EnginePerlin}
}

// ParseEngine resolves a case-insensitive engine name; empty means gradient.
func ParseEngine(s string) (Engine, error) {
	if s == "" {
		return EngineGradient, nil
	}
	for _, e := range Engines() {
		if strings.EqualFold(s, string(e)) {
			return e, nil
		}
	}
	return "", &ConfigError{Field: "engine", Value: s, Err: ErrUnknownEngine}
}

// NewSampler builds a Sampler of the given engine. Only the gradient engine
// honours cfg.Size; the library engines carry their own tables.
func NewSampler(engine Engine, cfg Config) (Sampler, error) {
	switch engine {
	case EngineGradient, "":
		return New(cfg)
	case EngineOpenSimplex:
		return newSimplex(cfg)
	case EnginePerlin:
		return newPerlin(cfg)
	}
	return nil, &ConfigError{Field: "engine", Value: engine, Err: ErrUnknownEngine}
}

// seedFor returns the configured seed or draws one from the entropy source.
func seedFor(cfg Config) int64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return int64(NewEntropySource().Float64() * lehmerModulus)
}

func checkDims(engine Engine, dims, lo, hi int) error {
	if dims < lo || dims > hi {
		return &ConfigError{
			Field: "dimensions",
			Value: dims,
			Err:   fmt.Errorf("%w: %s supports %d-%d", ErrInvalidDimensions, engine, lo, hi),
		}
	}
	return nil
}

// simplex adapts OpenSimplex noise to Sampler.
type simplex struct {
	dims  int
	noise opensimplex.Noise
}

func newSimplex(cfg Config) (*simplex, error) {
	if err := checkDims(EngineOpenSimplex, cfg.Dimensions, 2, 4); err != nil {
		return nil, err
	}
	return &simplex{dims: cfg.Dimensions, noise: opensimplex.New(seedFor(cfg))}, nil
}

func (s *simplex) Dimensions() int { return s.dims }

func (s *simplex) Sample(coords ...float64) float64 {
	var c [4]float64
	copy(c[:s.dims], coords)
	switch s.dims {
	case 2:
		return s.noise.Eval2(c[0], c[1])
	case 3:
		return s.noise.Eval3(c[0], c[1], c[2])
	default:
		return s.noise.Eval4(c[0], c[1], c[2], c[3])
	}
}

// Parameters shared by every classic Perlin sampler.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 1
)

// classic adapts go-perlin to Sampler.
type classic struct {
	dims  int
	noise *perlin.Perlin
}

func newPerlin(cfg Config) (*classic, error) {
	if err := checkDims(EnginePerlin, cfg.Dimensions, 1, 3); err != nil {
		return nil, err
	}
	return &classic{
		dims:  cfg.Dimensions,
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seedFor(cfg)),
	}, nil
}

func (p *classic) Dimensions() int { return p.dims }

func (p *classic) Sample(coords ...float64) float64 {
	var c [3]float64
	copy(c[:p.dims], coords)
	switch p.dims {
	case 1:
		return p.noise.Noise1D(c[0])
	case 2:
		return p.noise.Noise2D(c[0], c[1])
	default:
		return p.noise.Noise3D(c[0], c[1], c[2])
	}
}
