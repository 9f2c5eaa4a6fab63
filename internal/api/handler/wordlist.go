package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordsearch-go/internal/api/request"
	"github.com/mcoot/wordsearch-go/internal/api/response"
	"github.com/mcoot/wordsearch-go/internal/services/wordlist"
)

// WordListHandler handles word list endpoints
type WordListHandler struct {
	service *wordlist.Service
}

// NewWordListHandler creates a new word list handler
func NewWordListHandler(service *wordlist.Service) *WordListHandler {
	return &WordListHandler{service: service}
}

// Put handles PUT /api/v1/wordlists/{name}
func (h *WordListHandler) Put(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req request.PutWordListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	words, err := h.service.Save(r.Context(), name, req.Words)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordList{Name: name, Words: words})
}

// Get handles GET /api/v1/wordlists/{name}
func (h *WordListHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	words, err := h.service.Get(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordList{Name: name, Words: words})
}
