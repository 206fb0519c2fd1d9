package maps

import (
	"slices"

	"biomegen/internal/biome"
)

// Share is one biome's portion of a map.
type Share struct {
	Biome   biome.Biome
	Count   int
	Percent float64
}

// Counts returns the number of cells per biome kind.
func (m *Map) Counts() [biome.NumKinds]int {
	var counts [biome.NumKinds]int
	for _, k := range m.cells {
		counts[k]++
	}
	return counts
}

// Distribution lists the biomes present on the map, most common first.
// Ties keep catalogue order.
func (m *Map) Distribution() []Share {
	counts := m.Counts()
	total := float64(len(m.cells))

	var shares []Share
	for k, c := range counts {
		if c == 0 {
			continue
		}
		shares = append(shares, Share{
			Biome:   biome.Lookup(biome.Kind(k)),
			Count:   c,
			Percent: float64(c) / total * 100,
		})
	}
	slices.SortStableFunc(shares, func(a, b Share) int {
		return b.Count - a.Count
	})
	return shares
}

// WaterRatio returns the fraction of cells that are water.
func (m *Map) WaterRatio() float64 {
	water := 0
	for _, k := range m.cells {
		if biome.Lookup(k).Water {
			water++
		}
	}
	return float64(water) / float64(len(m.cells))
}
