package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Generation errors
	ErrEmptyWordList      = errors.New("word list is empty")
	ErrInvalidWord        = errors.New("word must contain only letters A-Z")
	ErrPlacementExhausted = errors.New("placement attempts exhausted")
	ErrInvalidDimension   = errors.New("word does not fit grid dimensions")

	// Puzzle errors
	ErrPuzzleNotFound = errors.New("puzzle not found")

	// Word list errors
	ErrWordListNotFound = errors.New("word list not found")
)

// PlacementExhaustedError is returned when a word could not be placed within
// its retry budget. Generation stops at the first such word.
type PlacementExhaustedError struct {
	Word     string
	Attempts int
	// Cause is the dimension error when the word can never fit, if any
	Cause error
}

func (e *PlacementExhaustedError) Error() string {
	return fmt.Sprintf("failed to place %s after %d attempts", e.Word, e.Attempts)
}

// Is matches ErrPlacementExhausted
func (e *PlacementExhaustedError) Is(target error) bool {
	return target == ErrPlacementExhausted
}

func (e *PlacementExhaustedError) Unwrap() error {
	return e.Cause
}

// InvalidDimensionError reports a word longer than a grid axis, or a grid
// axis larger than Limit when Limit is set
type InvalidDimensionError struct {
	Word   string
	Length int
	Axis   string
	Size   int
	Limit  int
}

func (e *InvalidDimensionError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("grid %s %d exceeds the maximum of %d", e.Axis, e.Size, e.Limit)
	}
	if e.Word != "" {
		return fmt.Sprintf("word %s of length %d does not fit grid %s %d", e.Word, e.Length, e.Axis, e.Size)
	}
	return fmt.Sprintf("word length %d does not fit grid %s %d", e.Length, e.Axis, e.Size)
}

// Is matches ErrInvalidDimension
func (e *InvalidDimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}
