package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordsearch-go/internal/api/handler"
	"github.com/mcoot/wordsearch-go/internal/api/middleware"
	"github.com/mcoot/wordsearch-go/internal/api/response"
	"github.com/mcoot/wordsearch-go/internal/services/puzzle"
	"github.com/mcoot/wordsearch-go/internal/services/wordlist"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	PuzzleController *puzzle.Controller
	WordListService  *wordlist.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}

// RegisterRoutes mounts the API under /api/v1 on an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleController)
	wordListHandler := handler.NewWordListHandler(cfg.WordListService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Puzzle routes
	api.HandleFunc("/puzzles", puzzleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/puzzles", puzzleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/puzzles/{id}/image.png", puzzleHandler.Image).Methods(http.MethodGet)

	// Word list routes
	api.HandleFunc("/wordlists/{name}", wordListHandler.Put).Methods(http.MethodPut)
	api.HandleFunc("/wordlists/{name}", wordListHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
