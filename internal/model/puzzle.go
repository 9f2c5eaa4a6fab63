package model

import (
	"slices"
	"time"
)

// PuzzleID uniquely identifies a stored puzzle
type PuzzleID string

// Puzzle is a finished word search together with the words hidden in it
type Puzzle struct {
	ID     PuzzleID
	Words  []string // In the order supplied, used for the legend
	Width  int
	Height int
	Rows   []string // Height rows of Width letters

	// Placements records where each word ended up (for answer keys)
	Placements []Placement

	// Seed is set when the puzzle was generated from a fixed seed
	Seed *uint64

	CreatedAt time.Time
}

// Letter returns the letter at the given position, or 0 if out of bounds
func (p *Puzzle) Letter(pos Position) rune {
	if pos.Row < 0 || pos.Row >= len(p.Rows) || pos.Col < 0 || pos.Col >= len(p.Rows[pos.Row]) {
		return 0
	}
	return rune(p.Rows[pos.Row][pos.Col])
}

// Clone returns a deep copy of the puzzle
func (p *Puzzle) Clone() *Puzzle {
	c := *p
	c.Words = slices.Clone(p.Words)
	c.Rows = slices.Clone(p.Rows)
	c.Placements = slices.Clone(p.Placements)
	if p.Seed != nil {
		seed := *p.Seed
		c.Seed = &seed
	}
	return &c
}
