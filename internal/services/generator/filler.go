package generator

import (
	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/model"
)

// Alphabet is the set of letters words and filler are drawn from
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Fill assigns an independent uniformly drawn letter to every empty cell
func Fill(grid *model.Grid, rnd random.Random) {
	for _, row := range grid.Cells {
		for col, cell := range row {
			if cell == 0 {
				row[col] = rune(Alphabet[rnd.Intn(len(Alphabet))])
			}
		}
	}
}
