package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordsearch-go/internal/testutil"
	"github.com/mcoot/wordsearch-go/internal/web/templates/layout"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestPuzzlePageRendersGrid(t *testing.T) {
	doc := render(t, Puzzle(PuzzleData{
		PageData: layout.PageData{Title: "Puzzle P1"},
		Puzzle:   testutil.Puzzle("P1"),
	}))

	assert.Equal(t, "Puzzle P1 | Word Search", doc.Find("title").Text())
	assert.Equal(t, "4", doc.Find("table.grid").AttrOr("data-width", ""))
	assert.Equal(t, 4, doc.Find("table.grid tr").Length())
	assert.Equal(t, "CATX", doc.Find("table.grid tr").First().Text())
	assert.Zero(t, doc.Find("td.answer").Length())
	assert.Equal(t, "/puzzles/P1?answers=1", doc.Find("a.toggle-answers").AttrOr("href", ""))
	assert.Equal(t, "/api/v1/puzzles/P1/image.png", doc.Find("a.image").AttrOr("href", ""))
	assert.Equal(t, "/puzzles/P1/delete", doc.Find("form").AttrOr("action", ""))
}

func TestPuzzlePageHighlightsAnswers(t *testing.T) {
	doc := render(t, Puzzle(PuzzleData{
		PageData:    layout.PageData{Title: "Puzzle P1"},
		Puzzle:      testutil.Puzzle("P1"),
		ShowAnswers: true,
	}))

	assert.Equal(t, 6, doc.Find("td.answer").Length())
	assert.Equal(t, "/puzzles/P1", doc.Find("a.toggle-answers").AttrOr("href", ""))
}

func TestHomeEscapesAndShowsFlash(t *testing.T) {
	doc := render(t, Home(HomeData{
		PageData: layout.PageData{
			Title: "Home",
			Flash: &layout.FlashMessage{Type: "error", Message: "<b>bad</b>"},
		},
		PuzzleIDs: nil,
	}))

	assert.Equal(t, "<b>bad</b>", doc.Find(".flash-error").Text())
	assert.Zero(t, doc.Find(".flash b").Length())
	assert.Equal(t, "200", doc.Find(`input[name="width"]`).AttrOr("max", ""))
	assert.Equal(t, 1, doc.Find("p.empty").Length())
}

func TestNotFoundShowsMessage(t *testing.T) {
	doc := render(t, NotFound(layout.PageData{Title: "Puzzle not found"}))
	assert.Equal(t, "Not found", doc.Find("h1").Text())
	assert.Contains(t, doc.Find("main").Text(), "Puzzle not found")
}
