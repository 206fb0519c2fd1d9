// Package render turns biome maps into terminal text and images.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"biomegen/internal/biome"
	"biomegen/internal/wildlife"
)

// Mode selects how colour is written to a terminal.
type Mode int

const (
	ModeTrueColor Mode = iota // 24-bit SGR 38;2
	ModeANSI                  // nearest of the 16 basic colours
	ModePlain                 // glyphs only
	ModeBlocks                // two map rows per line as half blocks
)

var modeNames = map[Mode]string{
	ModeTrueColor: "truecolor",
	ModeANSI:      "ansi",
	ModePlain:     "plain",
	ModeBlocks:    "blocks",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

// Token is what a renderer draws for one map cell.
type Token struct {
	Glyph rune
	Color color.RGBA
}

// Styler picks the token for a biome.
type Styler interface {
	Token(b biome.Biome) Token
}

// BiomeStyler draws each biome with its catalogue glyph and colour.
type BiomeStyler struct{}

func (BiomeStyler) Token(b biome.Biome) Token {
	return Token{Glyph: b.Glyph, Color: b.Color}
}

// animalColor is the foreground used for wildlife glyphs.
var animalColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func animalCell(s wildlife.Species, under Token) Cell {
	return Cell{Ch: s.Glyph(), Fg: animalColor, Bg: under.Color, Bold: true}
}
