package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/wordsearch-go/internal/dependencies/mocks"
	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/model"
)

func TestFillOnlyTouchesEmptyCells(t *testing.T) {
	grid := model.NewGrid(3, 1)
	grid.Set(model.Position{Row: 0, Col: 1}, 'Q')

	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(1, 25)
	Fill(grid, rnd)

	assert.Equal(t, []string{"BQZ"}, grid.Rows())
	assert.Equal(t, 0, rnd.IntnRemaining())
}

func TestFillLeavesNoGaps(t *testing.T) {
	grid := model.NewGrid(9, 7)
	Fill(grid, random.NewSeeded(3))

	assert.True(t, grid.IsFull())
	for _, row := range grid.Rows() {
		for _, c := range row {
			assert.True(t, c >= 'A' && c <= 'Z', "unexpected cell %q", c)
		}
	}
}
