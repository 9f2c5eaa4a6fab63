package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordsearch-go/internal/services/puzzle"
	"github.com/mcoot/wordsearch-go/internal/web/handler"
	"github.com/mcoot/wordsearch-go/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger           *slog.Logger
	PuzzleController *puzzle.Controller
	StaticDir        string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}

// RegisterRoutes mounts the web pages on an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	homeHandler := handler.NewHomeHandler(cfg.PuzzleController)
	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleController)

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Recovery(cfg.Logger))
	pages.Use(middleware.Logging(cfg.Logger))
	pages.Use(middleware.Flash())

	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/puzzles", puzzleHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/puzzles/{id}", puzzleHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/puzzles/{id}/delete", puzzleHandler.Delete).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
}
