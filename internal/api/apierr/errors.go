package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/render"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeEmptyWordList      = "EMPTY_WORD_LIST"
	CodeInvalidWord        = "INVALID_WORD"
	CodePlacementExhausted = "PLACEMENT_EXHAUSTED"
	CodeInvalidDimension   = "INVALID_DIMENSION"
	CodeImageTooSmall      = "IMAGE_TOO_SMALL"
	CodeImageTooLarge      = "IMAGE_TOO_LARGE"
	CodePuzzleNotFound     = "PUZZLE_NOT_FOUND"
	CodeWordListNotFound   = "WORDLIST_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusCode returns the HTTP status an error maps to
func StatusCode(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Exhaustion may wrap a dimension error, so it is matched first
	switch {
	case errors.Is(err, model.ErrPlacementExhausted):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodePlacementExhausted, err.Error()}}
	case errors.Is(err, model.ErrInvalidDimension):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidDimension, err.Error()}}
	case errors.Is(err, model.ErrEmptyWordList):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyWordList, "Word list has no usable words"}}
	case errors.Is(err, model.ErrInvalidWord):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWord, "Words must only contain letters A-Z"}}
	case errors.Is(err, model.ErrPuzzleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePuzzleNotFound, "Puzzle not found"}}
	case errors.Is(err, model.ErrWordListNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWordListNotFound, "Word list not found"}}
	case errors.Is(err, render.ErrNoFontSize), errors.Is(err, render.ErrInvalidImageSize):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeImageTooSmall, "Image is too small for this puzzle"}}
	case errors.Is(err, render.ErrImageTooLarge):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeImageTooLarge, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
