package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"biomegen/internal/maps"
)

// Image paints one pixel per map cell.
func Image(m *maps.Map, styler Styler) *image.RGBA {
	if styler == nil {
		styler = BiomeStyler{}
	}
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			b, _ := m.At(x, y)
			img.SetRGBA(x, y, styler.Token(b).Color)
		}
	}
	return img
}

// PNG encodes the map with each cell drawn as a cell x cell block.
func PNG(w io.Writer, m *maps.Map, cell int) error {
	if cell < 1 {
		return fmt.Errorf("png cell size %d: must be at least 1", cell)
	}
	src := Image(m, nil)
	if cell == 1 {
		return png.Encode(w, src)
	}
	dst := image.NewRGBA(image.Rect(0, 0, m.Width*cell, m.Height*cell))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}
