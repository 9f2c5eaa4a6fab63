package api_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordsearch-go/internal/api"
	"github.com/mcoot/wordsearch-go/internal/api/apierr"
	"github.com/mcoot/wordsearch-go/internal/api/response"
	"github.com/mcoot/wordsearch-go/internal/factory"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	return api.NewRouter(api.RouterConfig{
		Logger:           logger,
		PuzzleController: app.PuzzleController,
		WordListService:  app.WordListService,
	})
}

func request(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func createPuzzle(t *testing.T, h http.Handler, body map[string]any) response.Puzzle {
	t.Helper()
	rr := request(h, http.MethodPost, "/api/v1/puzzles", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var p response.Puzzle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	return p
}

func TestHealthCheck(t *testing.T) {
	h := newTestServer(t)

	rr := request(h, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateAndGetPuzzle(t *testing.T) {
	h := newTestServer(t)

	p := createPuzzle(t, h, map[string]any{
		"words":    []string{"cat", "dog", "bird"},
		"seed":     5,
		"attempts": 10,
	})
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, []string{"CAT", "DOG", "BIRD"}, p.Words)
	assert.Len(t, p.Rows, p.Height)
	assert.Len(t, p.Placements, 3)
	require.NotNil(t, p.Seed)

	// Start and end cells hold the first and last letters
	for _, pl := range p.Placements {
		assert.Equal(t, pl.Word[0], p.Rows[pl.Row][pl.Col], pl.Word)
		assert.Equal(t, pl.Word[len(pl.Word)-1], p.Rows[pl.EndRow][pl.EndCol], pl.Word)
	}

	rr := request(h, http.MethodGet, "/api/v1/puzzles/"+p.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var fetched response.Puzzle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, p.Rows, fetched.Rows)
	assert.Equal(t, p.Placements, fetched.Placements)
}

func TestCreatePuzzleSeededIsReproducible(t *testing.T) {
	h := newTestServer(t)
	body := map[string]any{"words": []string{"alpha", "beta", "gamma"}, "seed": 99, "attempts": 10}

	first := createPuzzle(t, h, body)
	second := createPuzzle(t, h, body)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Rows, second.Rows)
}

func TestCreatePuzzleErrors(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"empty words", map[string]any{"words": []string{"123"}}, http.StatusBadRequest, apierr.CodeEmptyWordList},
		{"no source", map[string]any{}, http.StatusBadRequest, apierr.CodeEmptyWordList},
		{"missing word list", map[string]any{"wordlist": "nope"}, http.StatusNotFound, apierr.CodeWordListNotFound},
		{"negative width", map[string]any{"words": []string{"cat"}, "width": -1}, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"too many attempts", map[string]any{"words": []string{"cat"}, "attempts": 11}, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"huge grid", map[string]any{"words": []string{"cat", "dog"}, "width": 50000, "height": 50000}, http.StatusUnprocessableEntity, apierr.CodeInvalidDimension},
		{"overflowing width", map[string]any{"words": []string{"cat", "dog"}, "width": int64(1) << 62}, http.StatusUnprocessableEntity, apierr.CodeInvalidDimension},
		{"wordlist with huge height", map[string]any{"wordlist": "nope", "height": 201}, http.StatusUnprocessableEntity, apierr.CodeInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := request(h, http.MethodPost, "/api/v1/puzzles", tt.body)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, decodeError(t, rr).Code)
		})
	}
}

func TestCreatePuzzleInvalidJSON(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/puzzles", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestGetPuzzleNotFound(t *testing.T) {
	h := newTestServer(t)

	rr := request(h, http.MethodGet, "/api/v1/puzzles/MISSING", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePuzzleNotFound, decodeError(t, rr).Code)
}

func TestListAndDeletePuzzles(t *testing.T) {
	h := newTestServer(t)

	p := createPuzzle(t, h, map[string]any{"words": []string{"cat"}, "seed": 1})

	rr := request(h, http.MethodGet, "/api/v1/puzzles", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	var list response.PuzzleList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, []string{p.ID}, list.IDs)

	rr = request(h, http.MethodDelete, "/api/v1/puzzles/"+p.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = request(h, http.MethodGet, "/api/v1/puzzles/"+p.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPuzzleImage(t *testing.T) {
	h := newTestServer(t)
	p := createPuzzle(t, h, map[string]any{"words": []string{"cat", "dog"}, "seed": 2, "attempts": 10})

	rr := request(h, http.MethodGet, "/api/v1/puzzles/"+p.ID+"/image.png?width=240&height=320", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))

	img, err := png.Decode(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 320, img.Bounds().Dy())
}

func TestPuzzleImageErrors(t *testing.T) {
	h := newTestServer(t)
	p := createPuzzle(t, h, map[string]any{"words": []string{"cat", "dog"}, "seed": 2, "attempts": 10})

	rr := request(h, http.MethodGet, "/api/v1/puzzles/"+p.ID+"/image.png?width=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = request(h, http.MethodGet, "/api/v1/puzzles/"+p.ID+"/image.png?width=0", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = request(h, http.MethodGet, "/api/v1/puzzles/"+p.ID+"/image.png?width=100000&height=100000", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, apierr.CodeImageTooLarge, decodeError(t, rr).Code)

	rr = request(h, http.MethodGet, "/api/v1/puzzles/"+p.ID+"/image.png?height=4097", nil)
	assert.Equal(t, apierr.CodeImageTooLarge, decodeError(t, rr).Code)

	rr = request(h, http.MethodGet, "/api/v1/puzzles/MISSING/image.png", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestWordLists(t *testing.T) {
	h := newTestServer(t)

	rr := request(h, http.MethodPut, "/api/v1/wordlists/animals", map[string]any{"words": []string{"cat", "Dog", "e-m-u", "42"}})
	require.Equal(t, http.StatusOK, rr.Code)

	var wl response.WordList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &wl))
	assert.Equal(t, "animals", wl.Name)
	assert.Equal(t, []string{"CAT", "DOG", "EMU"}, wl.Words)

	rr = request(h, http.MethodGet, "/api/v1/wordlists/animals", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &wl))
	assert.Equal(t, []string{"CAT", "DOG", "EMU"}, wl.Words)

	p := createPuzzle(t, h, map[string]any{"wordlist": "animals", "seed": 3, "attempts": 10})
	assert.Equal(t, []string{"CAT", "DOG", "EMU"}, p.Words)
}

func TestWordListErrors(t *testing.T) {
	h := newTestServer(t)

	rr := request(h, http.MethodGet, "/api/v1/wordlists/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeWordListNotFound, decodeError(t, rr).Code)

	rr = request(h, http.MethodPut, "/api/v1/wordlists/empty", map[string]any{"words": []string{"1", "2"}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeEmptyWordList, decodeError(t, rr).Code)
}
