package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"biomegen/internal/biome"
	"biomegen/internal/config"
)

func runCapture(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunPlainReproducible(t *testing.T) {
	args := []string{"-seed", "42", "-size", "30x12", "-render", "plain", "-stats=false"}
	a, _, err := runCapture(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	b, _, _ := runCapture(t, args...)
	if a != b {
		t.Fatal("same seed produced different output")
	}

	lines := strings.Split(strings.TrimSuffix(a, "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("%d lines, want 12", len(lines))
	}
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != 30 {
			t.Errorf("line %d has %d cells, want 30", i, n)
		}
	}
}

func TestRunStatsAndLegend(t *testing.T) {
	out, errOut, err := runCapture(t, "-seed", "7", "-size", "20x20", "-render", "plain", "-legend", "-wildlife", "5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "Biome distribution:") || !strings.Contains(errOut, "seed=7") {
		t.Errorf("stderr missing summary or seed:\n%s", errOut)
	}
	if !strings.Contains(out, "~ Ocean") || !strings.Contains(out, "W Wolf") {
		t.Errorf("legend missing:\n%s", out)
	}
}

func TestRunView(t *testing.T) {
	out, _, err := runCapture(t, "-seed", "3", "-size", "40x40", "-render", "plain", "-stats=false", "-view", "8x4")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("%d lines, want 4", got)
	}
}

func TestRunPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	if _, _, err := runCapture(t, "-seed", "1", "-size", "10x6", "-cell", "3", "-out", path, "-stats=false"); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 30 || cfg.Height != 18 {
		t.Errorf("image %dx%d, want 30x18", cfg.Width, cfg.Height)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad size", []string{"-size", "big"}},
		{"unknown engine", []string{"-engine", "worley"}},
		{"unknown render", []string{"-render", "sixel"}},
		{"perlin too many dims", []string{"-engine", "perlin", "-dims", "4"}},
		{"zero scale", []string{"-scale", "0"}},
		{"too many dimensions", []string{"-dims", "64"}},
		{"missing config", []string{"-config", "/nonexistent/mapgen.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCapture(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, _, err := runCapture(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h: err = %v, want flag.ErrHelp", err)
	}
}

func TestParseFlagsConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapgen.json")
	body := `{"seed": 5, "width": 64, "height": 32, "engine": "opensimplex", "workers": 4}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := parseFlags([]string{"-config", path, "-engine", "perlin"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine != "perlin" {
		t.Errorf("explicit -engine lost: %s", cfg.Engine)
	}
	if cfg.Seed == nil || *cfg.Seed != 5 || cfg.Size() != "64x32" || cfg.Workers != 4 {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestLayers(t *testing.T) {
	cfg := config.DefaultConfig()
	if got := len(layers(cfg)); got != 3 {
		t.Errorf("default layers = %d, want 3", got)
	}

	cfg.Temperature = false
	cfg.Detail = true
	cfg.Octaves = 3
	ls := layers(cfg)
	if len(ls) != 3 {
		t.Fatalf("layers = %d, want 3", len(ls))
	}
	for _, lc := range ls {
		if lc.Feature == biome.Temperature {
			t.Error("temperature layer present")
		}
		if lc.Feature != biome.Detail && lc.Octaves != 3 {
			t.Errorf("%s octaves = %d", lc.Feature, lc.Octaves)
		}
	}
}
