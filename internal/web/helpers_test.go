package web_test

import (
	"strings"

	"github.com/mcoot/wordsearch-go/internal/model"
)

func modelID(path string) model.PuzzleID {
	return model.PuzzleID(strings.TrimPrefix(path, "/puzzles/"))
}
