package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/generator"
	"github.com/mcoot/wordsearch-go/internal/services/puzzle"
	"github.com/mcoot/wordsearch-go/internal/services/wordlist"
	"github.com/mcoot/wordsearch-go/internal/web/middleware"
	"github.com/mcoot/wordsearch-go/internal/web/templates/layout"
	"github.com/mcoot/wordsearch-go/internal/web/templates/pages"
)

// Retry budget for puzzles generated from the web form
const formAttempts = 5

// PuzzleHandler handles puzzle pages and actions
type PuzzleHandler struct {
	controller *puzzle.Controller
}

// NewPuzzleHandler creates a new PuzzleHandler
func NewPuzzleHandler(controller *puzzle.Controller) *PuzzleHandler {
	return &PuzzleHandler{controller: controller}
}

// Create generates a puzzle from the home page form
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "/", middleware.FlashError, "Invalid form data")
		return
	}

	words, err := wordlist.Parse(strings.NewReader(r.FormValue("words")))
	if err != nil {
		redirectWithFlash(w, r, "/", middleware.FlashError, "Enter at least one word")
		return
	}

	width, err := formInt(r, "width")
	if err != nil {
		redirectWithFlash(w, r, "/", middleware.FlashError, "Columns must be a whole number")
		return
	}
	height, err := formInt(r, "height")
	if err != nil {
		redirectWithFlash(w, r, "/", middleware.FlashError, "Rows must be a whole number")
		return
	}
	if generator.CheckSizeHints(width, height) != nil {
		redirectWithFlash(w, r, "/", middleware.FlashError,
			"Columns and rows must be at most "+strconv.Itoa(generator.MaxGridSize))
		return
	}

	req := puzzle.CreateRequest{
		Words:    words,
		Width:    width,
		Height:   height,
		Seed:     formSeed(r),
		Attempts: formAttempts,
	}

	p, err := h.controller.Create(r.Context(), req)
	if err != nil {
		redirectWithFlash(w, r, "/", middleware.FlashError, "Could not generate puzzle: "+err.Error())
		return
	}

	redirectWithFlash(w, r, "/puzzles/"+string(p.ID), middleware.FlashSuccess, "Puzzle created")
}

// View renders a puzzle, optionally with the answers highlighted
func (h *PuzzleHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	p, err := h.controller.Get(r.Context(), id)
	if errors.Is(err, model.ErrPuzzleNotFound) {
		renderNotFound(w, r, "Puzzle "+string(id)+" does not exist")
		return
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.PuzzleData{
		PageData: layout.PageData{
			Title: "Puzzle " + string(p.ID),
			Flash: middleware.GetFlash(r.Context()),
		},
		Puzzle:      p,
		ShowAnswers: r.URL.Query().Get("answers") != "",
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Puzzle(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Delete removes a puzzle and returns home
func (h *PuzzleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	if err := h.controller.Delete(r.Context(), id); err != nil {
		redirectWithFlash(w, r, "/", middleware.FlashError, "Could not delete puzzle")
		return
	}

	redirectWithFlash(w, r, "/", middleware.FlashSuccess, "Puzzle deleted")
}

// NotFound renders the 404 page for unknown routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	renderNotFound(w, r, "Page not found")
}

func renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = pages.NotFound(layout.PageData{Title: message}).Render(r.Context(), w)
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, location, flashType, message string) {
	middleware.SetFlash(w, flashType, message)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func formInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// formSeed accepts a number or any phrase; blank means unseeded
func formSeed(r *http.Request) *uint64 {
	raw := strings.TrimSpace(r.FormValue("seed"))
	if raw == "" {
		return nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		seed = random.SeedFromPhrase(raw)
	}
	return &seed
}
