package pages

import (
	"strconv"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/generator"
	"github.com/mcoot/wordsearch-go/internal/web/templates/layout"
)

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
	PuzzleIDs []model.PuzzleID
}

// PuzzleData is the data for the puzzle page
type PuzzleData struct {
	layout.PageData
	Puzzle      *model.Puzzle
	ShowAnswers bool
}

var maxGridSize = strconv.Itoa(generator.MaxGridSize)

// answerCells returns every cell covered by a placed word, or nil when
// answers are hidden
func answerCells(data PuzzleData) map[model.Position]bool {
	if !data.ShowAnswers {
		return nil
	}
	cells := make(map[model.Position]bool)
	for _, placement := range data.Puzzle.Placements {
		for _, pos := range placement.Cells() {
			cells[pos] = true
		}
	}
	return cells
}

func puzzlePath(id model.PuzzleID) string {
	return "/puzzles/" + string(id)
}
