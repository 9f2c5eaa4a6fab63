package response

import (
	"time"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}

// Placement records where a word sits in the grid
type Placement struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
	EndRow    int    `json:"end_row"`
	EndCol    int    `json:"end_col"`
}

// PlacementFromModel converts a model.Placement
func PlacementFromModel(p model.Placement) Placement {
	return Placement{
		Word:      p.Word,
		Row:       p.Start.Row,
		Col:       p.Start.Col,
		Direction: p.Direction.String(),
		EndRow:    p.End().Row,
		EndCol:    p.End().Col,
	}
}

// Puzzle represents a generated puzzle
type Puzzle struct {
	ID         string      `json:"id"`
	Words      []string    `json:"words"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Rows       []string    `json:"rows"`
	Placements []Placement `json:"placements"`
	Seed       *uint64     `json:"seed,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// PuzzleFromModel converts a model.Puzzle to a response Puzzle
func PuzzleFromModel(p *model.Puzzle) Puzzle {
	placements := make([]Placement, len(p.Placements))
	for i, pl := range p.Placements {
		placements[i] = PlacementFromModel(pl)
	}
	return Puzzle{
		ID:         string(p.ID),
		Words:      p.Words,
		Width:      p.Width,
		Height:     p.Height,
		Rows:       p.Rows,
		Placements: placements,
		Seed:       p.Seed,
		CreatedAt:  p.CreatedAt,
	}
}

// PuzzleList lists stored puzzle IDs
type PuzzleList struct {
	IDs []string `json:"ids"`
}

// PuzzleListFromModel converts a slice of puzzle IDs
func PuzzleListFromModel(ids []model.PuzzleID) PuzzleList {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = string(id)
	}
	return PuzzleList{IDs: result}
}

// WordList is a named, normalized word list
type WordList struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}
