package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/xlab/closer"

	"biomegen/internal/biome"
	"biomegen/internal/config"
	"biomegen/internal/maps"
	"biomegen/internal/noise"
	"biomegen/internal/render"
	"biomegen/internal/wildlife"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)
	defer closer.Close()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Exit(1)
	}
}

// options are the flags that are not part of config.Config.
type options struct {
	configPath string
	name       string
	view       string
	legend     bool
	stats      bool
	verbose    bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	engine, err := noise.ParseEngine(cfg.Engine)
	if err != nil {
		return err
	}
	mode, err := render.ParseMode(cfg.Render)
	if err != nil {
		return err
	}

	// Draw the seed here rather than in the noise package so it can be
	// reported and reused for wildlife.
	if cfg.Seed == nil {
		seed := time.Now().UnixNano()
		cfg.Seed = &seed
	}

	sampler, err := maps.NewLayeredSampler(maps.SamplerOptions{
		Engine:     engine,
		Dimensions: cfg.Dimensions,
		Size:       cfg.TableSize,
		Seed:       cfg.Seed,
		Slice:      cfg.Slice,
		Layers:     layers(cfg),
	})
	if err != nil {
		return err
	}

	log.Info("generating map",
		"name", opts.name,
		"size", cfg.Size(),
		"seed", *cfg.Seed,
		"engine", engine,
		"dims", cfg.Dimensions,
		"workers", cfg.Workers)

	m, err := maps.NewGenerator(sampler, nil, cfg.Workers, log).Generate(ctx, opts.name, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	animals := wildlife.Place(m, cfg.Wildlife, *cfg.Seed)
	if cfg.Wildlife > 0 {
		log.Info("wildlife placed", "requested", cfg.Wildlife, "placed", len(animals))
	}

	landX, landY, ok := m.Landfall()
	if ok {
		log.Info("landfall", "x", landX, "y", landY)
	} else {
		log.Warn("map has no land")
	}

	if cfg.Output != "" {
		if err := writePNG(cfg.Output, m, cfg.CellSize); err != nil {
			return err
		}
		log.Info("wrote image", "path", cfg.Output)
	} else {
		textOpts := render.TextOptions{Mode: mode, Animals: animals}
		if opts.view != "" {
			vw, vh, err := config.ParseSize(opts.view)
			if err != nil {
				return fmt.Errorf("view: %w", err)
			}
			vp := render.NewViewport(landX, landY, vw, vh, m.Width, m.Height)
			textOpts.View = &vp
		}
		if err := writeText(stdout, m, textOpts); err != nil {
			return err
		}
	}

	if opts.legend {
		if err := render.Legend(stdout, mode); err != nil {
			return err
		}
	}
	if opts.stats {
		printDistribution(stderr, m, len(animals))
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*config.Config, options, error) {
	def := config.DefaultConfig()
	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "JSON config file; explicit flags override it")
	fs.StringVar(&opts.name, "name", "World", "map name")
	fs.StringVar(&opts.view, "view", "", "crop text output to a WxH window around landfall")
	fs.BoolVar(&opts.legend, "legend", false, "print the biome and wildlife legend")
	fs.BoolVar(&opts.stats, "stats", true, "print the biome distribution to stderr")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")

	seed := fs.Int64("seed", 0, "random seed (default: time-based)")
	size := fs.String("size", def.Size(), "map size as WxH")
	dims := fs.Int("dims", def.Dimensions, "noise field dimensions")
	tableSize := fs.Int("table-size", def.TableSize, "permutation and gradient table size")
	engine := fs.String("engine", def.Engine, "noise engine: gradient, opensimplex or perlin")
	scale := fs.Float64("scale", def.Scale, "noise units per cell")
	slice := fs.Float64("slice", def.Slice, "third-axis coordinate for fields of 3+ dimensions")
	octaves := fs.Int("octaves", def.Octaves, "fractal octaves per layer")
	lacunarity := fs.Float64("lacunarity", def.Lacunarity, "frequency gain per octave")
	persistence := fs.Float64("persistence", def.Persistence, "amplitude gain per octave")
	temperature := fs.Bool("temperature", def.Temperature, "sample a temperature layer")
	detail := fs.Bool("detail", def.Detail, "sample a high-frequency detail layer")
	workers := fs.Int("workers", def.Workers, "rows generated in parallel")
	animals := fs.Int("wildlife", def.Wildlife, "animals to place on land")
	mode := fs.String("render", def.Render, "text output: truecolor, ansi, plain or blocks")
	cell := fs.Int("cell", def.CellSize, "PNG pixels per map cell")
	out := fs.String("out", def.Output, "write a PNG here instead of text to stdout")

	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	w, h, err := config.ParseSize(*size)
	if err != nil {
		return nil, opts, err
	}
	cfg := &config.Config{
		Width:       w,
		Height:      h,
		Dimensions:  *dims,
		TableSize:   *tableSize,
		Engine:      *engine,
		Scale:       *scale,
		Slice:       *slice,
		Octaves:     *octaves,
		Lacunarity:  *lacunarity,
		Persistence: *persistence,
		Temperature: *temperature,
		Detail:      *detail,
		Workers:     *workers,
		Wildlife:    *animals,
		Render:      *mode,
		CellSize:    *cell,
		Output:      *out,
	}
	if explicit["seed"] {
		cfg.Seed = seed
	}

	if opts.configPath != "" {
		fromFile, err := config.Load(opts.configPath)
		if err != nil {
			return nil, opts, err
		}
		config.Merge(cfg, fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}

// layers turns the config into the sampler's layer stack.
func layers(cfg *config.Config) []maps.LayerConfig {
	var out []maps.LayerConfig
	for _, lc := range maps.DefaultLayers(cfg.Scale) {
		if lc.Feature == biome.Temperature && !cfg.Temperature {
			continue
		}
		lc.Octaves = cfg.Octaves
		lc.Lacunarity = cfg.Lacunarity
		lc.Persistence = cfg.Persistence
		out = append(out, lc)
	}
	if cfg.Detail {
		out = append(out, maps.DetailLayer(cfg.Scale*4))
	}
	return out
}

func writeText(w io.Writer, m *maps.Map, opts render.TextOptions) error {
	if opts.Mode == render.ModePlain {
		return render.Text(w, m, opts)
	}
	// Restore the terminal if we are interrupted mid-draw.
	closer.Bind(func() {
		io.WriteString(w, render.Reset+render.ShowCursor())
	})
	io.WriteString(w, render.HideCursor())
	defer io.WriteString(w, render.ShowCursor())
	return render.Text(w, m, opts)
}

func writePNG(path string, m *maps.Map, cell int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := render.PNG(f, m, cell); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func printDistribution(w io.Writer, m *maps.Map, animals int) {
	fmt.Fprintf(w, "\nBiome distribution:\n")
	for _, s := range m.Distribution() {
		bar := strings.Repeat("█", int(s.Percent/2))
		fmt.Fprintf(w, "  %-10s %5d (%5.1f%%) %s\n", s.Biome.Name, s.Count, s.Percent, bar)
	}
	fmt.Fprintf(w, "\nWater:    %.1f%%\n", m.WaterRatio()*100)
	fmt.Fprintf(w, "Wildlife: %d\n", animals)
}
