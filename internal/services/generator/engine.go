package generator

import (
	"errors"

	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/model"
)

// Engine places words one at a time into a single grid buffer.
//
// Each word gets as many random (direction, start) attempts as there are empty
// cells when it is placed. An attempt is validated along the whole run before
// any cell is written, so a rejected attempt leaves the grid untouched.
// Earlier placements are never undone.
type Engine struct {
	grid       *model.Grid
	random     random.Random
	placements []model.Placement
}

// NewEngine creates an engine writing into grid
func NewEngine(grid *model.Grid, random random.Random) *Engine {
	return &Engine{
		grid:   grid,
		random: random,
	}
}

// Grid returns the grid being filled
func (e *Engine) Grid() *model.Grid {
	return e.grid
}

// Placements returns the committed placements in placement order
func (e *Engine) Placements() []model.Placement {
	return e.placements
}

// Place finds a random compatible slot for word and writes it.
// Returns a *model.PlacementExhaustedError if no attempt within the budget fits.
func (e *Engine) Place(word string) (model.Placement, error) {
	letters, err := wordLetters(word)
	if err != nil {
		return model.Placement{}, err
	}

	// The length guard covers both axes, so it fails the same way for every
	// direction and no draw could succeed
	if err := model.CheckLength(len(letters), e.grid.Width, e.grid.Height); err != nil {
		var dimErr *model.InvalidDimensionError
		if errors.As(err, &dimErr) {
			dimErr.Word = word
		}
		return model.Placement{}, &model.PlacementExhaustedError{Word: word, Cause: err}
	}

	limit := e.grid.EmptyCount()
	for attempt := 0; attempt < limit; attempt++ {
		dir := model.Directions[e.random.Intn(len(model.Directions))]

		cols, rows, err := dir.StartRange(len(letters), e.grid.Width, e.grid.Height)
		if err != nil {
			return model.Placement{}, err
		}

		col := cols.Min + e.random.Intn(cols.Len())
		row := rows.Min + e.random.Intn(rows.Len())
		start := model.Position{Row: row, Col: col}

		if !e.fits(letters, dir, start) {
			continue
		}

		return e.commit(word, letters, dir, start), nil
	}

	return model.Placement{}, &model.PlacementExhaustedError{
		Word:     word,
		Attempts: limit,
	}
}

// TryPlace writes word at start along dir if every cell on the run is empty
// or already holds the matching letter. Reports whether the word was written.
func (e *Engine) TryPlace(word string, dir model.Direction, start model.Position) (bool, error) {
	letters, err := wordLetters(word)
	if err != nil {
		return false, err
	}
	if _, _, err := dir.StartRange(len(letters), e.grid.Width, e.grid.Height); err != nil {
		return false, err
	}
	if !e.fits(letters, dir, start) {
		return false, nil
	}
	e.commit(word, letters, dir, start)
	return true, nil
}

// fits checks the whole run without writing anything
func (e *Engine) fits(letters []rune, dir model.Direction, start model.Position) bool {
	for i, letter := range letters {
		pos := dir.Advance(start, i)
		if !e.grid.IsValidPosition(pos) {
			return false
		}
		if cell := e.grid.Get(pos); cell != 0 && cell != letter {
			return false
		}
	}
	return true
}

func (e *Engine) commit(word string, letters []rune, dir model.Direction, start model.Position) model.Placement {
	for i, letter := range letters {
		e.grid.Set(dir.Advance(start, i), letter)
	}
	p := model.Placement{Word: word, Start: start, Direction: dir}
	e.placements = append(e.placements, p)
	return p
}

func wordLetters(word string) ([]rune, error) {
	letters := []rune(word)
	if len(letters) == 0 {
		return nil, model.ErrInvalidWord
	}
	for _, l := range letters {
		if l < 'A' || l > 'Z' {
			return nil, model.ErrInvalidWord
		}
	}
	return letters, nil
}
