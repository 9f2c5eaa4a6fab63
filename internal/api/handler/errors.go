package handler

import (
	"net/http"

	"github.com/mcoot/wordsearch-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeEmptyWordList      = apierr.CodeEmptyWordList
	CodeInvalidWord        = apierr.CodeInvalidWord
	CodePlacementExhausted = apierr.CodePlacementExhausted
	CodeInvalidDimension   = apierr.CodeInvalidDimension
	CodeImageTooSmall      = apierr.CodeImageTooSmall
	CodePuzzleNotFound     = apierr.CodePuzzleNotFound
	CodeWordListNotFound   = apierr.CodeWordListNotFound
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
