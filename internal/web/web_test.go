package web_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordsearch-go/internal/factory"
	"github.com/mcoot/wordsearch-go/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.App
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := web.NewRouter(web.RouterConfig{
		Logger:           logger,
		PuzzleController: app.PuzzleController,
		StaticDir:        "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	ts.cookies.extract(rr)

	return rr
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// createPuzzle submits the home page form and returns the puzzle page path
func (ts *webTestServer) createPuzzle(words, seed string) string {
	ts.t.Helper()
	form := url.Values{"words": {words}, "seed": {seed}}
	rr := ts.post("/puzzles", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after puzzle creation")

	location := rr.Header().Get("Location")
	require.True(ts.t, strings.HasPrefix(location, "/puzzles/"), "Expected redirect to puzzle page, got %q", location)
	return location
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}

func TestHomePageEmpty(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form#create-puzzle")
	assertContainsElement(t, doc, "textarea[name=words]")
	assertContainsText(t, doc, "p.empty", "No puzzles yet")
}

func TestCreatePuzzleShowsGrid(t *testing.T) {
	ts := newWebTestServer(t)

	path := ts.createPuzzle("cat\ndog\nbird", "12")
	rr := ts.get(path)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-success", "Puzzle created")

	p, err := ts.app.PuzzleController.Get(t.Context(), modelID(path))
	require.NoError(t, err)

	rows := doc.Find("table.grid tr")
	assert.Equal(t, p.Height, rows.Length())
	rows.Each(func(i int, row *goquery.Selection) {
		assert.Equal(t, p.Rows[i], row.Text())
	})

	var words []string
	doc.Find("ul.words li").Each(func(_ int, li *goquery.Selection) {
		words = append(words, li.Text())
	})
	assert.Equal(t, []string{"CAT", "DOG", "BIRD"}, words)

	assertContainsElement(t, doc, `a.image[href="/api/v1/puzzles/`+string(p.ID)+`/image.png"]`)
	assert.Zero(t, doc.Find("td.answer").Length())
}

func TestFlashShownOnlyOnce(t *testing.T) {
	ts := newWebTestServer(t)

	path := ts.createPuzzle("cat", "1")
	doc := parseHTML(ts.get(path).Body)
	assertContainsElement(t, doc, ".flash")

	doc = parseHTML(ts.get(path).Body)
	assert.Zero(t, doc.Find(".flash").Length())
}

func TestShowAnswersHighlightsWords(t *testing.T) {
	ts := newWebTestServer(t)

	path := ts.createPuzzle("cat\ndog", "phrase seeds work too")
	rr := ts.get(path + "?answers=1")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	// CAT and DOG share no letters so cannot overlap
	assert.Equal(t, 6, doc.Find("td.answer").Length())
	assertContainsText(t, doc, "a.toggle-answers", "Hide answers")
}

func TestSameSeedSameGrid(t *testing.T) {
	ts := newWebTestServer(t)

	first := ts.createPuzzle("alpha\nbeta\ngamma", "2024")
	second := ts.createPuzzle("alpha\nbeta\ngamma", "2024")
	require.NotEqual(t, first, second)

	a, err := ts.app.PuzzleController.Get(t.Context(), modelID(first))
	require.NoError(t, err)
	b, err := ts.app.PuzzleController.Get(t.Context(), modelID(second))
	require.NoError(t, err)
	assert.Equal(t, a.Rows, b.Rows)
}

func TestCreatePuzzleWithoutWords(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/puzzles", url.Values{"words": {"123\n\n"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Enter at least one word")
}

func TestCreatePuzzleBadSize(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/puzzles", url.Values{"words": {"cat"}, "width": {"wide"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Columns")
}

func TestCreatePuzzleOversizedGrid(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/puzzles", url.Values{"words": {"cat"}, "width": {"50000"}, "height": {"50000"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "at most 200")
	assert.Equal(t, 0, doc.Find("ul.puzzles li").Length())
}

func TestHomeListsPuzzles(t *testing.T) {
	ts := newWebTestServer(t)

	path := ts.createPuzzle("cat", "5")

	doc := parseHTML(ts.get("/").Body)
	assertContainsElement(t, doc, `ul.puzzles a[href="`+path+`"]`)
}

func TestDeletePuzzle(t *testing.T) {
	ts := newWebTestServer(t)

	path := ts.createPuzzle("cat", "5")
	rr := ts.post(path+"/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-success", "Puzzle deleted")

	rr = ts.get(path)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPuzzleNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/puzzles/MISSING")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Not found")
	assertContainsText(t, doc, "main", "MISSING")
}

func TestUnknownRoute(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/no/such/page")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWordsAreEscaped(t *testing.T) {
	ts := newWebTestServer(t)

	// Normalization strips markup before it reaches the page
	path := ts.createPuzzle("<b>cat</b>", "3")
	doc := parseHTML(ts.get(path).Body)
	assert.Zero(t, doc.Find("ul.words b").Length())
	assertContainsText(t, doc, "ul.words", "BCATB")
}
