package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordsearch-go/internal/api/request"
	"github.com/mcoot/wordsearch-go/internal/api/response"
	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/generator"
	"github.com/mcoot/wordsearch-go/internal/services/puzzle"
	"github.com/mcoot/wordsearch-go/internal/services/render"
)

// PuzzleHandler handles puzzle endpoints
type PuzzleHandler struct {
	controller *puzzle.Controller
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(controller *puzzle.Controller) *PuzzleHandler {
	return &PuzzleHandler{controller: controller}
}

// Create handles POST /api/v1/puzzles
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	if req.Width < 0 || req.Height < 0 {
		WriteError(w, NewInvalidRequestError("width and height must not be negative"))
		return
	}
	if err := generator.CheckSizeHints(req.Width, req.Height); err != nil {
		WriteError(w, err)
		return
	}
	if req.Attempts < 0 || req.Attempts > puzzle.MaxAttempts {
		WriteError(w, NewInvalidRequestError("attempts must be between 1 and "+strconv.Itoa(puzzle.MaxAttempts)))
		return
	}

	p, err := h.controller.Create(r.Context(), puzzle.CreateRequest{
		Words:    req.Words,
		WordList: req.WordList,
		Width:    req.Width,
		Height:   req.Height,
		Seed:     req.Seed,
		Attempts: req.Attempts,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PuzzleFromModel(p))
}

// List handles GET /api/v1/puzzles
func (h *PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.controller.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleListFromModel(ids))
}

// Get handles GET /api/v1/puzzles/{id}
func (h *PuzzleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	p, err := h.controller.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(p))
}

// Delete handles DELETE /api/v1/puzzles/{id}
func (h *PuzzleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	if err := h.controller.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Image handles GET /api/v1/puzzles/{id}/image.png
func (h *PuzzleHandler) Image(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	width, err := queryInt(r, "width")
	if err != nil {
		WriteError(w, NewInvalidRequestError("width must be a positive integer"))
		return
	}
	height, err := queryInt(r, "height")
	if err != nil {
		WriteError(w, NewInvalidRequestError("height must be a positive integer"))
		return
	}
	if width > render.MaxImageSide || height > render.MaxImageSide {
		WriteError(w, render.ErrImageTooLarge)
		return
	}

	// Encode fully before writing so failures still get a JSON error
	var buf bytes.Buffer
	if err := h.controller.RenderPNG(r.Context(), id, width, height, &buf); err != nil {
		WriteError(w, err)
		return
	}

	response.PNG(w, buf.Bytes())
}

// queryInt reads an optional positive integer query parameter; 0 means absent
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
