// Package maps builds biome grids from layered noise.
package maps

import (
	"fmt"

	"biomegen/internal/biome"
)

// Map is a generated biome grid. It is not modified after Generate returns.
type Map struct {
	Name   string
	Width  int
	Height int
	cells  []biome.Kind // row-major, [y*Width + x]
}

// NewMap wraps a row-major cell slice. len(cells) must equal width*height.
func NewMap(name string, width, height int, cells []biome.Kind) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidExtent, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("cell count %d != %dx%d", len(cells), width, height)
	}
	for i, k := range cells {
		if !k.Valid() {
			return nil, fmt.Errorf("cell (%d,%d): invalid biome %d", i%width, i/width, k)
		}
	}
	return &Map{Name: name, Width: width, Height: height, cells: append([]biome.Kind(nil), cells...)}, nil
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// KindAt returns the biome kind at x, y and whether the cell exists.
func (m *Map) KindAt(x, y int) (biome.Kind, bool) {
	if !m.inBounds(x, y) {
		return 0, false
	}
	return m.cells[y*m.Width+x], true
}

// At returns the biome at x, y. ok is false for out-of-bounds coordinates.
func (m *Map) At(x, y int) (b biome.Biome, ok bool) {
	k, ok := m.KindAt(x, y)
	if !ok {
		return biome.Biome{}, false
	}
	return biome.Lookup(k), true
}

// Row returns a copy of row y, or nil when y is out of range.
func (m *Map) Row(y int) []biome.Kind {
	if y < 0 || y >= m.Height {
		return nil
	}
	return append([]biome.Kind(nil), m.cells[y*m.Width:(y+1)*m.Width]...)
}

// IsWater reports whether the cell at x, y is water. Out of bounds counts as water.
func (m *Map) IsWater(x, y int) bool {
	b, ok := m.At(x, y)
	return !ok || b.Water
}

// Equal reports whether two maps have the same extent and cells.
func (m *Map) Equal(o *Map) bool {
	if o == nil {
		return false
	}
	if m.Width != o.Width || m.Height != o.Height {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Landfall searches outward from the centre in square rings for the nearest
// land cell. ok is false when the whole map is water.
func (m *Map) Landfall() (x, y int, ok bool) {
	cx, cy := m.Width/2, m.Height/2
	maxR := max(m.Width, m.Height)
	for r := 0; r <= maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if abs(dx) != r && abs(dy) != r {
					continue // ring perimeter only
				}
				x, y := cx+dx, cy+dy
				if m.inBounds(x, y) && !m.IsWater(x, y) {
					return x, y, true
				}
			}
		}
	}
	return cx, cy, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
