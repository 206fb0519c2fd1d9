package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"biomegen/internal/biome"
	"biomegen/internal/maps"
	"biomegen/internal/wildlife"
)

func testMap(t *testing.T) *maps.Map {
	t.Helper()
	m, err := maps.NewMap("t", 3, 2, []biome.Kind{
		biome.Ocean, biome.Forest, biome.Snow,
		biome.Desert, biome.Mountain, biome.Ocean,
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"truecolor", ModeTrueColor, false},
		{"ANSI", ModeANSI, false},
		{"plain", ModePlain, false},
		{"Blocks", ModeBlocks, false},
		{"sixel", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, testMap(t), TextOptions{Mode: ModePlain}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "~T*\n.^~\n"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestTextTrueColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, testMap(t), TextOptions{Mode: ModeTrueColor}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[0;38;2;0;0;255m~") {
		t.Errorf("first cell = %q", out[:min(len(out), 24)])
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("%d lines, want 2", n)
	}
	if n := strings.Count(out, Reset+"\n"); n != 2 {
		t.Errorf("%d lines end in a reset, want 2", n)
	}
}

func TestTextANSI(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, testMap(t), TextOptions{Mode: ModeANSI}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\x1b[0;34m~") {
		t.Errorf("first cell = %q", buf.String()[:10])
	}
}

func TestTextBlocks(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, testMap(t), TextOptions{Mode: ModeBlocks}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("%d lines, want 1 for two rows", n)
	}
	if n := strings.Count(out, "▀"); n != 3 {
		t.Errorf("%d half blocks, want 3", n)
	}
	// Ocean over desert (tan).
	if !strings.HasPrefix(out, "\x1b[0;38;2;0;0;255;48;2;210;180;140m▀") {
		t.Errorf("first block = %q", out[:40])
	}
}

func TestTextViewportAndAnimals(t *testing.T) {
	vp := NewViewport(2, 1, 2, 1, 3, 2)
	var buf bytes.Buffer
	err := Text(&buf, testMap(t), TextOptions{
		Mode: ModePlain,
		View: &vp,
		Animals: []wildlife.Animal{
			{X: 2, Y: 1, Species: wildlife.Bear},
			{X: 0, Y: 0, Species: wildlife.Wolf}, // outside the view
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "^B\n"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestNewViewport(t *testing.T) {
	tests := []struct {
		name                 string
		cx, cy, vw, vh, w, h int
		want                 Viewport
	}{
		{"centred", 50, 50, 10, 6, 100, 100, Viewport{45, 47, 10, 6}},
		{"clamped top-left", 1, 1, 10, 6, 100, 100, Viewport{0, 0, 10, 6}},
		{"clamped bottom-right", 99, 99, 10, 6, 100, 100, Viewport{90, 94, 10, 6}},
		{"larger than map", 5, 5, 40, 40, 20, 10, Viewport{0, 0, 20, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewViewport(tt.cx, tt.cy, tt.vw, tt.vh, tt.w, tt.h)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWorldToScreen(t *testing.T) {
	vp := Viewport{CamX: 10, CamY: 5, ViewW: 4, ViewH: 3}
	if x, y := vp.WorldToScreen(10, 5); x != 1 || y != 1 {
		t.Errorf("top-left = %d,%d", x, y)
	}
	if x, y := vp.WorldToScreen(14, 5); x != -1 || y != -1 {
		t.Errorf("outside = %d,%d", x, y)
	}
}

func TestNearest16(t *testing.T) {
	tests := []struct {
		c    color.RGBA
		want int
	}{
		{color.RGBA{0, 0, 0, 255}, 30},
		{color.RGBA{255, 255, 255, 255}, 97},
		{color.RGBA{0, 0, 255, 255}, 34},
		{color.RGBA{90, 255, 90, 255}, 92},
		{color.RGBA{180, 10, 10, 255}, 31},
	}
	for _, tt := range tests {
		if got := Nearest16(tt.c); got != tt.want {
			t.Errorf("Nearest16(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestLegend(t *testing.T) {
	var buf bytes.Buffer
	if err := Legend(&buf, ModePlain); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != biome.NumKinds+len(wildlife.All()) {
		t.Fatalf("%d legend lines", len(lines))
	}
	if lines[0] != "~ Ocean" || lines[biome.NumKinds] != "r Rabbit" {
		t.Errorf("legend starts %q, species start %q", lines[0], lines[biome.NumKinds])
	}
}

func TestPNG(t *testing.T) {
	m := testMap(t)
	var buf bytes.Buffer
	if err := PNG(&buf, m, 4); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("bounds %v, want 12x8", b)
	}
	// Cell (1,0) is forest: every pixel of its block has the forest colour.
	want := biome.Lookup(biome.Forest).Color
	for y := 0; y < 4; y++ {
		for x := 4; x < 8; x++ {
			if got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if err := PNG(&buf, m, 0); err == nil {
		t.Error("cell size 0 accepted")
	}
}
