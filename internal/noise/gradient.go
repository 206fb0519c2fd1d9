package noise

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Draws shorter than this are re-drawn instead of normalised.
const gradientEpsilon = 1e-9

// GradientTable holds size unit vectors of a fixed dimensionality in one
// flat slice. Slot i occupies [i*dims, (i+1)*dims).
type GradientTable struct {
	dims int
	data []float64
}

// BuildGradientTable draws size random directions from src.
func BuildGradientTable(size, dims int, src Source) (*GradientTable, error) {
	if size <= 0 {
		return nil, &ConfigError{Field: "size", Value: size, Err: ErrInvalidSize}
	}
	if dims <= 0 {
		return nil, &ConfigError{Field: "dimensions", Value: dims, Err: ErrInvalidDimensions}
	}

	g := &GradientTable{dims: dims, data: make([]float64, size*dims)}
	for i := 0; i < size; i++ {
		drawUnit(g.data[i*dims:(i+1)*dims], src)
	}
	return g, nil
}

// drawUnit fills v with a random direction of length 1.
func drawUnit(v []float64, src Source) {
	for {
		for k := range v {
			v[k] = src.Float64()*2 - 1
		}
		norm := mgl64.NewVecNFromData(v).Len()
		if norm < gradientEpsilon {
			continue
		}
		for k := range v {
			v[k] /= norm
		}
		return
	}
}

// Vector returns slot i. The slice aliases the table and must not be modified.
func (g *GradientTable) Vector(i int) []float64 {
	return g.data[i*g.dims : (i+1)*g.dims : (i+1)*g.dims]
}

// Len returns the number of slots.
func (g *GradientTable) Len() int {
	return len(g.data) / g.dims
}

// Dimensions returns the length of every vector.
func (g *GradientTable) Dimensions() int {
	return g.dims
}
