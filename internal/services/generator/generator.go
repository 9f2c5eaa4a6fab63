package generator

import (
	"log/slog"
	"slices"

	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/model"
)

// Options holds optional grid size hints; zero means derive from the words
type Options struct {
	Width  int
	Height int
}

// Result is a completed word search grid
type Result struct {
	Width      int
	Height     int
	Rows       []string
	Placements []model.Placement
}

// Generator runs the size, shuffle, place, fill pipeline
type Generator struct {
	logger *slog.Logger
}

// New creates a new Generator
func New(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate builds a word search containing every word exactly once.
//
// Words must already be normalized to A-Z. The run is a single pass: the
// first word that cannot be placed fails the whole run and no grid is
// returned. Callers wanting another try should call Generate again with a
// fresh random source.
func (g *Generator) Generate(words []string, rnd random.Random, opts Options) (*Result, error) {
	width, height, err := Dimensions(words, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	shuffled := slices.Clone(words)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	grid := model.NewGrid(width, height)
	engine := NewEngine(grid, rnd)

	for _, word := range shuffled {
		placement, err := engine.Place(word)
		if err != nil {
			g.logger.Debug("word placement failed",
				slog.String("word", word),
				slog.Int("width", width),
				slog.Int("height", height),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		g.logger.Debug("word placed",
			slog.String("word", word),
			slog.Int("row", placement.Start.Row),
			slog.Int("col", placement.Start.Col),
			slog.String("direction", placement.Direction.String()),
		)
	}

	Fill(grid, rnd)

	g.logger.Info("grid generated",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("word_count", len(words)),
	)

	return &Result{
		Width:      width,
		Height:     height,
		Rows:       grid.Rows(),
		Placements: engine.Placements(),
	}, nil
}
