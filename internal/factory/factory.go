package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wordsearch-go/internal/dependencies/clock"
	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/services/generator"
	"github.com/mcoot/wordsearch-go/internal/services/puzzle"
	"github.com/mcoot/wordsearch-go/internal/services/render"
	"github.com/mcoot/wordsearch-go/internal/services/wordlist"
	"github.com/mcoot/wordsearch-go/internal/storage"
	"github.com/mcoot/wordsearch-go/internal/storage/memory"
	redisstorage "github.com/mcoot/wordsearch-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Generator        *generator.Generator
	Renderer         *render.Renderer
	WordListService  *wordlist.Service
	PuzzleController *puzzle.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// WordListFiles maps word list names to files imported at startup (optional)
	WordListFiles map[string]string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app, err := newWithDependencies(store, clock.New(), random.New(), logger)
	if err != nil {
		return nil, err
	}

	return app, app.importWordLists(cfg.WordListFiles)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	gen := generator.New(logger)
	wordListService := wordlist.New(store, logger)
	puzzleController := puzzle.NewController(store, gen, wordListService, renderer, clk, rnd, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		Generator:        gen,
		Renderer:         renderer,
		WordListService:  wordListService,
		PuzzleController: puzzleController,
	}, nil
}
