package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	puzzles   map[model.PuzzleID]*model.Puzzle
	wordLists map[string][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		puzzles:   make(map[model.PuzzleID]*model.Puzzle),
		wordLists: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[puzzle.ID] = puzzle.Clone()
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzle, ok := s.puzzles[id]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return puzzle.Clone(), nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.puzzles, id)
	return nil
}

func (s *Storage) ListPuzzleIDs(ctx context.Context) ([]model.PuzzleID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.PuzzleID, 0, len(s.puzzles))
	for id := range s.puzzles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, name string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordLists[name] = slices.Clone(words)
	return nil
}

func (s *Storage) GetWordList(ctx context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.wordLists[name]
	if !ok {
		return nil, model.ErrWordListNotFound
	}
	return slices.Clone(words), nil
}
