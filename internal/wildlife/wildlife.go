// Package wildlife scatters animals over the land cells of a generated map.
package wildlife

import (
	"math/rand"

	"biomegen/internal/maps"
)

// Species is a kind of animal.
type Species uint8

const (
	Rabbit Species = iota
	Deer
	Bear
	Wolf

	numSpecies
)

var species = [numSpecies]struct {
	name  string
	glyph rune
}{
	Rabbit: {"Rabbit", 'r'},
	Deer:   {"Deer", 'd'},
	Bear:   {"Bear", 'B'},
	Wolf:   {"Wolf", 'W'},
}

// All returns every species in catalogue order.
func All() []Species {
	out := make([]Species, numSpecies)
	for i := range out {
		out[i] = Species(i)
	}
	return out
}

func (s Species) String() string {
	if s >= numSpecies {
		return "Species(?)"
	}
	return species[s].name
}

// Glyph is the character drawn for the species on a text map.
func (s Species) Glyph() rune {
	if s >= numSpecies {
		return '?'
	}
	return species[s].glyph
}

// Animal is one placed animal.
type Animal struct {
	X, Y    int
	Species Species
}

// attemptsPerAnimal bounds the random probing for free land cells.
const attemptsPerAnimal = 32

// Place puts up to count animals on distinct land cells of m. The same map,
// count and seed always give the same animals. Fewer than count are returned
// when free land runs out or probing gives up.
func Place(m *maps.Map, count int, seed int64) []Animal {
	if count <= 0 {
		return nil
	}

	land := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.IsWater(x, y) {
				land++
			}
		}
	}
	if land == 0 {
		return nil
	}
	count = min(count, land)

	rng := rand.New(rand.NewSource(seed + 100))
	taken := make(map[[2]int]bool, count)
	animals := make([]Animal, 0, count)

	for attempts := count * attemptsPerAnimal; attempts > 0 && len(animals) < count; attempts-- {
		x, y := rng.Intn(m.Width), rng.Intn(m.Height)
		if m.IsWater(x, y) || taken[[2]int{x, y}] {
			continue
		}
		taken[[2]int{x, y}] = true
		animals = append(animals, Animal{X: x, Y: y, Species: Species(rng.Intn(int(numSpecies)))})
	}
	return animals
}

// Index maps cell positions to animals for overlay lookups.
func Index(animals []Animal) map[[2]int]Species {
	idx := make(map[[2]int]Species, len(animals))
	for _, a := range animals {
		idx[[2]int{a.X, a.Y}] = a.Species
	}
	return idx
}
