// Package biome defines the fixed set of terrain classes and the ordered
// threshold rules that pick one from a cell's noise features.
package biome

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Kind identifies a biome. The set is closed; NumKinds bounds it.
type Kind uint8

const (
	Ocean Kind = iota
	Beach
	Grassland
	Forest
	Mountain
	Snow
	Desert
	Swamp
	Jungle
	Plains

	NumKinds int = iota
)

// Biome is an immutable terrain class with its display glyph and colour.
type Biome struct {
	Kind  Kind
	Name  string
	Glyph rune
	Color color.RGBA
	Water bool
}

// catalog is indexed by Kind and never written after init.
var catalog = [NumKinds]Biome{
	Ocean:     {Kind: Ocean, Name: "Ocean", Glyph: '~', Color: colornames.Blue, Water: true},
	Beach:     {Kind: Beach, Name: "Beach", Glyph: '.', Color: colornames.Yellow},
	Grassland: {Kind: Grassland, Name: "Grassland", Glyph: ',', Color: colornames.Green},
	Forest:    {Kind: Forest, Name: "Forest", Glyph: 'T', Color: colornames.Lime},
	Mountain:  {Kind: Mountain, Name: "Mountain", Glyph: '^', Color: colornames.Gray},
	Snow:      {Kind: Snow, Name: "Snow", Glyph: '*', Color: colornames.White},
	Desert:    {Kind: Desert, Name: "Desert", Glyph: '.', Color: colornames.Tan},
	Swamp:     {Kind: Swamp, Name: "Swamp", Glyph: '&', Color: colornames.Darkolivegreen},
	Jungle:    {Kind: Jungle, Name: "Jungle", Glyph: 'J', Color: colornames.Forestgreen},
	Plains:    {Kind: Plains, Name: "Plains", Glyph: 'O', Color: colornames.Wheat},
}

// Lookup returns the biome for k. It panics on a Kind outside the catalog.
func Lookup(k Kind) Biome {
	return catalog[k]
}

// All returns every biome in Kind order.
func All() []Biome {
	out := make([]Biome, NumKinds)
	copy(out, catalog[:])
	return out
}

// Valid reports whether k names a catalogued biome.
func (k Kind) Valid() bool {
	return int(k) < NumKinds
}

// Biome returns the catalogue entry for k.
func (k Kind) Biome() Biome {
	return Lookup(k)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return catalog[k].Name
}

// ParseKind resolves a biome name, case-sensitively.
func ParseKind(name string) (Kind, error) {
	for _, b := range catalog {
		if b.Name == name {
			return b.Kind, nil
		}
	}
	return 0, fmt.Errorf("unknown biome %q", name)
}
