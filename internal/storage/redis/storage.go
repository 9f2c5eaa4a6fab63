package redis

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	data, err := json.Marshal(puzzle)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, puzzleKey(puzzle.ID), data, s.cfg.PuzzleTTL)
	pipe.SAdd(ctx, puzzleIndexKey(), string(puzzle.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	data, err := s.client.Get(ctx, puzzleKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPuzzleNotFound
		}
		return nil, err
	}

	var puzzle model.Puzzle
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return nil, err
	}
	return &puzzle, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, puzzleKey(id))
	pipe.SRem(ctx, puzzleIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPuzzleIDs(ctx context.Context) ([]model.PuzzleID, error) {
	members, err := s.client.SMembers(ctx, puzzleIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []model.PuzzleID{}, nil
	}

	// Drop IDs whose puzzle has expired
	pipe := s.client.Pipeline()
	exists := make([]*redis.IntCmd, len(members))
	for i, id := range members {
		exists[i] = pipe.Exists(ctx, puzzleKey(model.PuzzleID(id)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	ids := make([]model.PuzzleID, 0, len(members))
	var stale []any
	for i, id := range members {
		if exists[i].Val() > 0 {
			ids = append(ids, model.PuzzleID(id))
		} else {
			stale = append(stale, id)
		}
	}
	if len(stale) > 0 {
		if err := s.client.SRem(ctx, puzzleIndexKey(), stale...).Err(); err != nil {
			return nil, err
		}
	}

	slices.Sort(ids)
	return ids, nil
}

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, name string, words []string) error {
	key := wordListKey(name)

	// Replace the list atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		// Convert []string to []interface{} for RPush
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.RPush(ctx, key, members...)
		if s.cfg.WordListTTL > 0 {
			pipe.Expire(ctx, key, s.cfg.WordListTTL)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetWordList(ctx context.Context, name string) ([]string, error) {
	words, err := s.client.LRange(ctx, wordListKey(name), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	// An empty list is never stored, so no entries means no list
	if len(words) == 0 {
		return nil, model.ErrWordListNotFound
	}
	return words, nil
}
