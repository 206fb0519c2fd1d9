package maps

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"biomegen/internal/biome"
)

// Generator classifies every cell of a grid. The result does not depend on
// the number of workers.
type Generator struct {
	sampler    *LayeredSampler
	classifier *biome.Classifier
	workers    int
	log        *slog.Logger
}

// NewGenerator creates a generator. A nil classifier uses the default rules,
// workers below 1 means 1, and a nil logger means slog.Default().
func NewGenerator(sampler *LayeredSampler, classifier *biome.Classifier, workers int, log *slog.Logger) *Generator {
	if classifier == nil {
		classifier = biome.DefaultClassifier()
	}
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Generator{sampler: sampler, classifier: classifier, workers: workers, log: log}
}

// Cell returns the features and biome of a single grid cell.
func (g *Generator) Cell(x, y int) (biome.Features, biome.Biome) {
	fs := g.sampler.Features(x, y)
	return fs, g.classifier.Classify(fs)
}

// Generate builds a width x height map. Rows are independent, so with more
// than one worker they are spread over an errgroup; each row writes only its
// own slice of the grid.
func (g *Generator) Generate(ctx context.Context, name string, width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidExtent, width, height)
	}

	start := time.Now()
	cells := make([]biome.Kind, width*height)

	fillRow := func(y int) {
		row := cells[y*width : (y+1)*width]
		for x := range row {
			row[x] = g.classifier.ClassifyKind(g.sampler.Features(x, y))
		}
	}

	if g.workers == 1 {
		for y := 0; y < height; y++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("generate %q: %w", name, err)
			}
			fillRow(y)
		}
	} else {
		eg, ctx := errgroup.WithContext(ctx)
		eg.SetLimit(g.workers)
		for y := 0; y < height; y++ {
			y := y
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				fillRow(y)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, fmt.Errorf("generate %q: %w", name, err)
		}
	}

	g.log.Debug("map generated",
		"name", name,
		"width", width,
		"height", height,
		"workers", g.workers,
		"elapsed", time.Since(start))

	return &Map{Name: name, Width: width, Height: height, cells: cells}, nil
}
