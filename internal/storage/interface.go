package storage

import (
	"context"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Puzzle operations
	SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)
	DeletePuzzle(ctx context.Context, id model.PuzzleID) error
	ListPuzzleIDs(ctx context.Context) ([]model.PuzzleID, error)

	// Word list operations
	SaveWordList(ctx context.Context, name string, words []string) error
	GetWordList(ctx context.Context, name string) ([]string, error)
}
