package model

import "strings"

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Grid is a height x width array of letters being filled in
type Grid struct {
	Width  int
	Height int
	Cells  [][]rune // Row-major: Cells[row][col], 0 means empty
}

// NewGrid creates an empty grid of the given size
func NewGrid(width, height int) *Grid {
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = make([]rune, width)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// Get returns the letter at the given position, or 0 if empty
func (g *Grid) Get(pos Position) rune {
	if !g.IsValidPosition(pos) {
		return 0
	}
	return g.Cells[pos.Row][pos.Col]
}

// Set places a letter at the given position
func (g *Grid) Set(pos Position, letter rune) {
	if g.IsValidPosition(pos) {
		g.Cells[pos.Row][pos.Col] = letter
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (g *Grid) IsEmpty(pos Position) bool {
	return g.Get(pos) == 0
}

// IsValidPosition returns true if the position is within bounds
func (g *Grid) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Height && pos.Col >= 0 && pos.Col < g.Width
}

// IsFull returns true if all cells are filled
func (g *Grid) IsFull() bool {
	return g.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (g *Grid) EmptyCount() int {
	count := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell == 0 {
				count++
			}
		}
	}
	return count
}

// Rows renders each row as a string, with '.' for empty cells
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for i, row := range g.Cells {
		var sb strings.Builder
		sb.Grow(g.Width)
		for _, cell := range row {
			if cell == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(cell)
			}
		}
		rows[i] = sb.String()
	}
	return rows
}

// Placement records where a word was written into a grid
type Placement struct {
	Word      string
	Start     Position
	Direction Direction
}

// End returns the position of the last letter
func (p Placement) End() Position {
	return p.Direction.Advance(p.Start, len(p.Word)-1)
}

// Cells returns every position the placement covers, in word order
func (p Placement) Cells() []Position {
	cells := make([]Position, len(p.Word))
	for i := range cells {
		cells[i] = p.Direction.Advance(p.Start, i)
	}
	return cells
}

// ReadRun reads length letters from rows starting at start along dir.
// Returns false if the run leaves the grid.
func ReadRun(rows []string, start Position, dir Direction, length int) (string, bool) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		pos := dir.Advance(start, i)
		if pos.Row < 0 || pos.Row >= len(rows) || pos.Col < 0 || pos.Col >= len(rows[pos.Row]) {
			return "", false
		}
		sb.WriteByte(rows[pos.Row][pos.Col])
	}
	return sb.String(), true
}

// FindWord searches rows for word in any of the eight directions and returns
// the first placement found, scanning row by row.
func FindWord(rows []string, word string) (Placement, bool) {
	if word == "" {
		return Placement{}, false
	}
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			if row[c] != word[0] {
				continue
			}
			start := Position{Row: r, Col: c}
			for _, dir := range Directions {
				if got, ok := ReadRun(rows, start, dir, len(word)); ok && got == word {
					return Placement{Word: word, Start: start, Direction: dir}, true
				}
			}
		}
	}
	return Placement{}, false
}
