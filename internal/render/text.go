package render

import (
	"io"
	"strings"

	"biomegen/internal/biome"
	"biomegen/internal/maps"
	"biomegen/internal/wildlife"
)

// TextOptions controls Text output.
type TextOptions struct {
	Mode    Mode
	Styler  Styler    // nil means BiomeStyler
	View    *Viewport // nil means the whole map
	Animals []wildlife.Animal
}

// Text writes the map, one line per row (two rows per line in ModeBlocks).
// Animals inside the view are drawn over their cell.
func Text(w io.Writer, m *maps.Map, opts TextOptions) error {
	styler := opts.Styler
	if styler == nil {
		styler = BiomeStyler{}
	}
	vp := Full(m.Width, m.Height)
	if opts.View != nil {
		vp = *opts.View
	}

	buf := frame(m, vp, styler)
	for _, a := range opts.Animals {
		sx, sy := vp.WorldToScreen(a.X, a.Y)
		if sx < 0 {
			continue
		}
		b, _ := m.At(a.X, a.Y)
		buf[sy-1][sx-1] = animalCell(a.Species, styler.Token(b))
	}

	var sb strings.Builder
	sb.Grow(vp.ViewW * vp.ViewH * 4)
	if opts.Mode == ModeBlocks {
		writeBlocks(&sb, buf)
	} else {
		for _, row := range buf {
			for _, c := range row {
				WriteCellSGR(&sb, c, opts.Mode)
			}
			if opts.Mode != ModePlain {
				sb.WriteString(Reset)
			}
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// frame lays out the viewport's cells. Cells outside the map are left blank.
func frame(m *maps.Map, vp Viewport, styler Styler) [][]Cell {
	buf := make([][]Cell, vp.ViewH)
	for y := range buf {
		buf[y] = make([]Cell, vp.ViewW)
		for x := range buf[y] {
			b, ok := m.At(vp.CamX+x, vp.CamY+y)
			if !ok {
				buf[y][x] = Cell{Ch: ' '}
				continue
			}
			tok := styler.Token(b)
			buf[y][x] = Cell{Ch: tok.Glyph, Fg: tok.Color}
		}
	}
	return buf
}

// writeBlocks packs two rows into each line: the upper cell colours the
// foreground of a half block and the lower one its background.
func writeBlocks(sb *strings.Builder, buf [][]Cell) {
	for y := 0; y < len(buf); y += 2 {
		for x, upper := range buf[y] {
			c := Cell{Ch: '▀', Fg: upper.Fg}
			if y+1 < len(buf) {
				c.Bg = buf[y+1][x].Fg
			}
			WriteCellSGR(sb, c, ModeTrueColor)
		}
		sb.WriteString(Reset)
		sb.WriteByte('\n')
	}
}

// Legend writes one line per biome and species: its token and name.
func Legend(w io.Writer, mode Mode) error {
	if mode == ModeBlocks {
		mode = ModeTrueColor
	}
	var sb strings.Builder
	styler := BiomeStyler{}
	for _, b := range biome.All() {
		tok := styler.Token(b)
		WriteCellSGR(&sb, Cell{Ch: tok.Glyph, Fg: tok.Color}, mode)
		if mode != ModePlain {
			sb.WriteString(Reset)
		}
		sb.WriteString(" " + b.Name + "\n")
	}
	for _, s := range wildlife.All() {
		WriteCellSGR(&sb, Cell{Ch: s.Glyph(), Fg: animalColor, Bold: true}, mode)
		if mode != ModePlain {
			sb.WriteString(Reset)
		}
		sb.WriteString(" " + s.String() + "\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
