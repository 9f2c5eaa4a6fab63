package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordsearch-go/internal/testutil"
)

func TestRecoveryRendersErrorPage(t *testing.T) {
	handler := Recovery(testutil.NopLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/puzzles/X", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Internal Server Error", doc.Find("h1").Text())
	assert.Equal(t, 1, doc.Find(`header a[href="/"]`).Length())
}

func TestFlashRoundTrip(t *testing.T) {
	set := httptest.NewRecorder()
	SetFlash(set, FlashError, "Could not place CAT: 12 attempts; try again")
	cookies := set.Result().Cookies()
	require.Len(t, cookies, 1)

	var got *struct{ Type, Message string }
	handler := Flash()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if flash := GetFlash(r.Context()); flash != nil {
			got = &struct{ Type, Message string }{flash.Type, flash.Message}
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotNil(t, got)
	assert.Equal(t, FlashError, got.Type)
	assert.Equal(t, "Could not place CAT: 12 attempts; try again", got.Message)

	// The cookie is cleared once read
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestFlashWithoutType(t *testing.T) {
	flash := parseFlash("just a message")
	assert.Equal(t, FlashInfo, flash.Type)
	assert.Equal(t, "just a message", flash.Message)
}
