package testutil

import (
	"time"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// FixedTime is the creation time stamped on fixture puzzles
var FixedTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// Puzzle returns a small seeded 4x4 puzzle hiding CAT and DOG.
// Every call returns a fresh copy.
func Puzzle(id model.PuzzleID) *model.Puzzle {
	seed := uint64(42)
	return &model.Puzzle{
		ID:     id,
		Words:  []string{"CAT", "DOG"},
		Width:  4,
		Height: 4,
		Rows:   []string{"CATX", "DOGX", "XXXX", "XXXX"},
		Placements: []model.Placement{
			{Word: "CAT", Start: model.Position{Row: 0, Col: 0}, Direction: model.East},
			{Word: "DOG", Start: model.Position{Row: 1, Col: 0}, Direction: model.East},
		},
		Seed:      &seed,
		CreatedAt: FixedTime,
	}
}
