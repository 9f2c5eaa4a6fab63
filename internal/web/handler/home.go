package handler

import (
	"net/http"

	"github.com/mcoot/wordsearch-go/internal/services/puzzle"
	"github.com/mcoot/wordsearch-go/internal/web/middleware"
	"github.com/mcoot/wordsearch-go/internal/web/templates/layout"
	"github.com/mcoot/wordsearch-go/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	controller *puzzle.Controller
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(controller *puzzle.Controller) *HomeHandler {
	return &HomeHandler{controller: controller}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ids, err := h.controller.List(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Home",
			Flash: middleware.GetFlash(r.Context()),
		},
		PuzzleIDs: ids,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
