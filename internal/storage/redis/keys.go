package redis

import (
	"fmt"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// Key prefix for all word search data
const keyPrefix = "wsgame"

// puzzleKey returns the Redis key for a Puzzle
func puzzleKey(id model.PuzzleID) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, id)
}

// puzzleIndexKey returns the Redis key for the SET of puzzle IDs
func puzzleIndexKey() string {
	return fmt.Sprintf("%s:idx:puzzles", keyPrefix)
}

// wordListKey returns the Redis key for a named word LIST
func wordListKey(name string) string {
	return fmt.Sprintf("%s:wordlist:%s", keyPrefix, name)
}
