package noise

import "math"

// DefaultSize is the table resolution used when Config.Size is zero.
const DefaultSize = 256

// Fields up to this many axes sample from stack buffers.
const maxStackDims = 4

// MaxDimensions bounds a field's axes. Sample visits 2^d corners.
const MaxDimensions = 16

// Config describes a gradient noise field.
type Config struct {
	Dimensions int
	Size       int    // 0 means DefaultSize
	Seed       *int64 // nil means a non-reproducible field
}

func (c Config) source() Source {
	if c.Seed == nil {
		return NewEntropySource()
	}
	return NewSeededSource(*c.Seed)
}

func (c Config) validate() (Config, error) {
	if c.Dimensions <= 0 || c.Dimensions > MaxDimensions {
		return c, &ConfigError{Field: "dimensions", Value: c.Dimensions, Err: ErrInvalidDimensions}
	}
	if c.Size < 0 {
		return c, &ConfigError{Field: "size", Value: c.Size, Err: ErrInvalidSize}
	}
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	return c, nil
}

// Field is an N-dimensional gradient noise field. It never changes after New
// and may be sampled from any number of goroutines.
type Field struct {
	dims int
	size int
	perm PermutationTable
	grad *GradientTable
}

// New builds the permutation and gradient tables for cfg, in that order,
// from a single random source.
func New(cfg Config) (*Field, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	src := cfg.source()
	perm, err := BuildPermutationTable(cfg.Size, src)
	if err != nil {
		return nil, err
	}
	grad, err := BuildGradientTable(cfg.Size, cfg.Dimensions, src)
	if err != nil {
		return nil, err
	}

	return &Field{dims: cfg.Dimensions, size: cfg.Size, perm: perm, grad: grad}, nil
}

// Dimensions returns the number of axes the field is defined over.
func (f *Field) Dimensions() int { return f.dims }

// Size returns the table resolution.
func (f *Field) Size() int { return f.size }

// Permutation returns a copy of the field's permutation table.
func (f *Field) Permutation() PermutationTable {
	return append(PermutationTable(nil), f.perm...)
}

// Gradients returns the field's gradient table.
func (f *Field) Gradients() *GradientTable { return f.grad }

// Sample evaluates the field at coords, nominally in [-1, 1]. Missing
// trailing coordinates read as 0 and surplus ones are ignored. Integer
// lattice points always evaluate to exactly 0.
func (f *Field) Sample(coords ...float64) float64 {
	d := f.dims

	var (
		floorBuf  [maxStackDims]int
		fracBuf   [maxStackDims]float64
		weightBuf [maxStackDims]float64
		cornerBuf [1 << maxStackDims]float64
	)
	floors, fracs, weights, corners := floorBuf[:], fracBuf[:], weightBuf[:], cornerBuf[:]
	if d > maxStackDims {
		floors = make([]int, d)
		fracs = make([]float64, d)
		weights = make([]float64, d)
		corners = make([]float64, 1<<d)
	}

	for a := 0; a < d; a++ {
		var c float64
		if a < len(coords) {
			c = coords[a]
		}
		fl := math.Floor(c)
		floors[a] = int(fl)
		fracs[a] = c - fl
		weights[a] = fade(fracs[a])
	}

	n := 1 << d
	for corner := 0; corner < n; corner++ {
		// Chain every axis through the permutation table before picking a
		// gradient so the hash depends on all axes jointly.
		h := 0
		for a := 0; a < d; a++ {
			h += f.perm.At(floors[a] + (corner>>a)&1)
		}
		g := f.grad.Vector(f.perm.At(h))

		dot := 0.0
		for a := 0; a < d; a++ {
			dot += g[a] * (fracs[a] - float64((corner>>a)&1))
		}
		corners[corner] = dot
	}

	// Collapse one axis per pass: pairs (2i, 2i+1) differ only along axis a.
	for a := 0; a < d; a++ {
		n >>= 1
		for i := 0; i < n; i++ {
			corners[i] = lerp(corners[2*i], corners[2*i+1], weights[a])
		}
	}
	return corners[0]
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3, flat in its first and second
// derivatives at 0 and 1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
