package generator

import (
	"math"
	"unicode/utf8"

	"github.com/mcoot/wordsearch-go/internal/model"
)

// MaxGridSize is the largest width or height a grid may have
const MaxGridSize = 200

// CheckSizeHints rejects width or height hints above MaxGridSize.
// Hints of zero or less mean "derive from the words" and always pass.
func CheckSizeHints(width, height int) error {
	if width > MaxGridSize {
		return &model.InvalidDimensionError{Axis: model.AxisWidth, Size: width, Limit: MaxGridSize}
	}
	if height > MaxGridSize {
		return &model.InvalidDimensionError{Axis: model.AxisHeight, Size: height, Limit: MaxGridSize}
	}
	return nil
}

// Dimensions derives the grid width and height for a word list.
//
// Without hints both axes default to ceil(sqrt(2 * total letters)). Hints of
// zero or less count as absent. Either way, neither axis is smaller than the
// longest word, so every direction admits at least one start for every word.
// Hints or results above MaxGridSize fail with *model.InvalidDimensionError.
func Dimensions(words []string, widthHint, heightHint int) (width, height int, err error) {
	if len(words) == 0 {
		return 0, 0, model.ErrEmptyWordList
	}
	if err := CheckSizeHints(widthHint, heightHint); err != nil {
		return 0, 0, err
	}

	longest, total := 0, 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		total += n
		longest = max(longest, n)
	}

	// 2 * mean length * count == 2 * total letters
	defaultSize := int(math.Ceil(math.Sqrt(float64(2 * total))))

	width, height = defaultSize, defaultSize
	if widthHint > 0 {
		width = widthHint
	}
	if heightHint > 0 {
		height = heightHint
	}
	width, height = max(longest, width), max(longest, height)

	// Long words or very long lists can still push past the limit
	if err := CheckSizeHints(width, height); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}
