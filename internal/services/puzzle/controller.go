package puzzle

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wordsearch-go/internal/dependencies/clock"
	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/generator"
	"github.com/mcoot/wordsearch-go/internal/services/render"
	"github.com/mcoot/wordsearch-go/internal/services/wordlist"
	"github.com/mcoot/wordsearch-go/internal/storage"
)

const (
	// DefaultAttempts is the number of generation runs when a request does not say
	DefaultAttempts = 1
	// MaxAttempts caps the generation runs for a single request
	MaxAttempts = 10

	// DefaultImageWidth and DefaultImageHeight size rendered puzzles
	DefaultImageWidth  = 768
	DefaultImageHeight = 1024

	idLength   = 10
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CreateRequest describes a puzzle to generate.
// Words takes precedence over WordList when both are set.
type CreateRequest struct {
	Words    []string
	WordList string
	Width    int
	Height   int
	Seed     *uint64
	Attempts int
}

// Controller creates, stores and renders puzzles
type Controller struct {
	storage   storage.Storage
	generator *generator.Generator
	wordLists *wordlist.Service
	renderer  *render.Renderer
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
}

// NewController creates a new PuzzleController
func NewController(
	storage storage.Storage,
	generator *generator.Generator,
	wordLists *wordlist.Service,
	renderer *render.Renderer,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		generator: generator,
		wordLists: wordLists,
		renderer:  renderer,
		clock:     clock,
		random:    random,
		logger:    logger,
	}
}

// Create generates a puzzle and saves it.
//
// Only placement exhaustion is retried; any other error ends the request.
// A seeded request uses seed+n for attempt n, and the puzzle records the seed
// that produced it.
func (c *Controller) Create(ctx context.Context, req CreateRequest) (*model.Puzzle, error) {
	words, err := c.resolveWords(ctx, req)
	if err != nil {
		return nil, err
	}

	attempts := req.Attempts
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	attempts = min(attempts, MaxAttempts)

	opts := generator.Options{Width: req.Width, Height: req.Height}

	var (
		result   *generator.Result
		usedSeed *uint64
	)
	for attempt := 0; attempt < attempts; attempt++ {
		rnd := c.random
		if req.Seed != nil {
			seed := *req.Seed + uint64(attempt)
			rnd = random.NewSeeded(seed)
			usedSeed = &seed
		}

		result, err = c.generator.Generate(words, rnd, opts)
		if err == nil {
			break
		}
		if !errors.Is(err, model.ErrPlacementExhausted) {
			return nil, err
		}
		c.logger.Debug("generation attempt failed",
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", attempts),
			slog.String("error", err.Error()),
		)
	}
	if err != nil {
		c.logger.Warn("puzzle generation failed",
			slog.Int("word_count", len(words)),
			slog.Int("attempts", attempts),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	puzzle := &model.Puzzle{
		ID:         model.PuzzleID(c.random.String(idLength, idAlphabet)),
		Words:      words,
		Width:      result.Width,
		Height:     result.Height,
		Rows:       result.Rows,
		Placements: result.Placements,
		Seed:       usedSeed,
		CreatedAt:  c.clock.Now(),
	}

	if err := c.storage.SavePuzzle(ctx, puzzle); err != nil {
		c.logger.Error("failed to save puzzle",
			slog.String("puzzle_id", string(puzzle.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("puzzle created",
		slog.String("puzzle_id", string(puzzle.ID)),
		slog.Int("width", puzzle.Width),
		slog.Int("height", puzzle.Height),
		slog.Int("word_count", len(words)),
	)

	return puzzle, nil
}

func (c *Controller) resolveWords(ctx context.Context, req CreateRequest) ([]string, error) {
	var words []string
	switch {
	case len(req.Words) > 0:
		words = wordlist.NormalizeAll(req.Words)
	case req.WordList != "":
		stored, err := c.wordLists.Get(ctx, req.WordList)
		if err != nil {
			return nil, err
		}
		words = stored
	}
	if len(words) == 0 {
		return nil, model.ErrEmptyWordList
	}
	return words, nil
}

// Get retrieves a puzzle by ID
func (c *Controller) Get(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	return c.storage.GetPuzzle(ctx, id)
}

// List returns the IDs of all stored puzzles
func (c *Controller) List(ctx context.Context) ([]model.PuzzleID, error) {
	return c.storage.ListPuzzleIDs(ctx)
}

// Delete removes a puzzle
func (c *Controller) Delete(ctx context.Context, id model.PuzzleID) error {
	if err := c.storage.DeletePuzzle(ctx, id); err != nil {
		return err
	}
	c.logger.Info("puzzle deleted", slog.String("puzzle_id", string(id)))
	return nil
}

// RenderPNG draws the puzzle at width x height and writes it to w as a PNG.
// Non-positive sizes fall back to the defaults.
func (c *Controller) RenderPNG(ctx context.Context, id model.PuzzleID, width, height int, w io.Writer) error {
	puzzle, err := c.storage.GetPuzzle(ctx, id)
	if err != nil {
		return err
	}

	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}

	img, err := c.renderer.Render(puzzle.Rows, puzzle.Words, width, height)
	if err != nil {
		return err
	}
	return render.EncodePNG(w, img)
}
