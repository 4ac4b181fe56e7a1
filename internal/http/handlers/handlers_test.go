package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/preston-bernstein/gamescout-service/internal/domain/catalog"
	"github.com/preston-bernstein/gamescout-service/internal/domain/deals"
	"github.com/preston-bernstein/gamescout-service/internal/testutil"
	"github.com/preston-bernstein/gamescout-service/internal/upstream"
)

type stubCatalog struct {
	result    catalog.SearchResult
	details   catalog.GameDetails
	found     bool
	err       error
	lastQuery catalog.SearchQuery
	lastID    int
}

func (s *stubCatalog) Search(_ context.Context, q catalog.SearchQuery) (catalog.SearchResult, error) {
	s.lastQuery = q
	return s.result, s.err
}

func (s *stubCatalog) GetDetails(_ context.Context, id int) (catalog.GameDetails, bool, error) {
	s.lastID = id
	return s.details, s.found, s.err
}

type stubDeals struct {
	byTitle   []deals.Deal
	top       []deals.Deal
	err       error
	lastTitle string
}

func (s *stubDeals) GetDealsByTitle(_ context.Context, title string) ([]deals.Deal, error) {
	s.lastTitle = title
	return s.byTitle, s.err
}

func (s *stubDeals) GetTopDeals(context.Context) ([]deals.Deal, error) {
	return s.top, s.err
}

func newTestHandler(cat *stubCatalog, dl *stubDeals) *Handler {
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(cat, dl, logger, nil)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&stubCatalog{}, &stubDeals{})

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(&stubCatalog{}, &stubDeals{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestReady(t *testing.T) {
	h := newTestHandler(&stubCatalog{}, &stubDeals{})
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/ready", nil), http.StatusOK)

	h.ready = func(context.Context) error { return errors.New("stores unavailable") }
	rr := testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(&stubCatalog{}, &stubDeals{})
	for _, path := range []string{"/health", "/ready", "/games", "/games/1", "/deals", "/deals/top"} {
		rr := testutil.Serve(h, http.MethodPost, path, nil)
		testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	}
}

func TestUnknownPath(t *testing.T) {
	h := newTestHandler(&stubCatalog{}, &stubDeals{})
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/nope", nil), http.StatusNotFound)
}

func TestSearchGamesParsesQuery(t *testing.T) {
	score := 90
	cat := &stubCatalog{result: catalog.SearchResult{
		Items: []catalog.GameSummary{{ID: 1, Name: "Halo", Metacritic: &score}},
		Total: 1,
	}}
	h := newTestHandler(cat, &stubDeals{})

	rr := testutil.Serve(h, http.MethodGet, "/games?search=halo&page=2&page_size=100&ordering=released&platforms=4,%20187,&genres=shooter", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	q := cat.lastQuery
	if q.Text != "halo" || q.Page != 2 || q.PageSize != maxPageSize || q.Sort != catalog.SortReleaseDate {
		t.Fatalf("unexpected query %+v", q)
	}
	if len(q.Platforms) != 2 || q.Platforms[1] != "187" || len(q.Genres) != 1 {
		t.Fatalf("unexpected filters %+v", q)
	}

	var resp catalog.SearchResult
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Total != 1 || resp.Items[0].Name != "Halo" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestSearchGamesDefaults(t *testing.T) {
	cat := &stubCatalog{}
	h := newTestHandler(cat, &stubDeals{})

	rr := testutil.Serve(h, http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if cat.lastQuery.Page != 1 || cat.lastQuery.PageSize != defaultPageSize || cat.lastQuery.Sort != catalog.SortNone {
		t.Fatalf("unexpected defaults %+v", cat.lastQuery)
	}
	if body := rr.Body.String(); body != "{\"results\":[],\"count\":0}\n" {
		t.Fatalf("expected empty results array, got %s", body)
	}
}

func TestSearchGamesRejectsBadInput(t *testing.T) {
	h := newTestHandler(&stubCatalog{}, &stubDeals{})
	for _, path := range []string{
		"/games?page=0",
		"/games?page=abc",
		"/games?page_size=-1",
		"/games?ordering=popularity",
	} {
		testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, path, nil), http.StatusBadRequest)
	}
}

func TestUpstreamErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		want       int
		retryAfter string
	}{
		{"network", &upstream.NetworkError{Upstream: "rawg", Err: context.DeadlineExceeded}, http.StatusServiceUnavailable, ""},
		{"protocol", &upstream.ProtocolError{Upstream: "rawg", StatusCode: 500}, http.StatusBadGateway, ""},
		{"rate limited", &upstream.ProtocolError{Upstream: "rawg", StatusCode: 429, RetryAfter: 1500 * time.Millisecond}, http.StatusBadGateway, "2"},
		{"other", errors.New("boom"), http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(&stubCatalog{err: tc.err}, &stubDeals{})
			rr := testutil.Serve(h, http.MethodGet, "/games?search=halo", nil)
			testutil.AssertStatus(t, rr, tc.want)
			if got := rr.Header().Get("Retry-After"); got != tc.retryAfter {
				t.Fatalf("expected Retry-After %q, got %q", tc.retryAfter, got)
			}
		})
	}
}

func TestGameDetails(t *testing.T) {
	cat := &stubCatalog{details: catalog.GameDetails{ID: 42, Name: "Portal 2", Screenshots: []string{"a.jpg"}}, found: true}
	h := newTestHandler(cat, &stubDeals{})

	rr := testutil.Serve(h, http.MethodGet, "/games/42", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if cat.lastID != 42 {
		t.Fatalf("expected id 42, got %d", cat.lastID)
	}
	var resp catalog.GameDetails
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Name != "Portal 2" {
		t.Fatalf("unexpected details %+v", resp)
	}
}

func TestGameDetailsNotFoundAndBadID(t *testing.T) {
	h := newTestHandler(&stubCatalog{found: false}, &stubDeals{})
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/games/7", nil), http.StatusNotFound)

	for _, path := range []string{"/games/abc", "/games/", "/games/-1", "/games/1/screenshots"} {
		testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, path, nil), http.StatusBadRequest)
	}
}

func TestDealsByTitle(t *testing.T) {
	dl := &stubDeals{byTitle: []deals.Deal{{
		Store:       "Steam",
		StoreID:     "1",
		Price:       decimal.RequireFromString("19.99"),
		NormalPrice: decimal.RequireFromString("39.99"),
		Savings:     decimal.RequireFromString("50.01"),
		URL:         "https://www.cheapshark.com/redirect?dealID=x",
	}}}
	h := newTestHandler(&stubCatalog{}, dl)

	rr := testutil.Serve(h, http.MethodGet, "/deals?title=%20Portal%202%20", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if dl.lastTitle != "Portal 2" {
		t.Fatalf("expected trimmed title, got %q", dl.lastTitle)
	}

	var resp struct {
		Title string       `json:"title"`
		Deals []deals.Deal `json:"deals"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Title != "Portal 2" || len(resp.Deals) != 1 || !resp.Deals[0].Price.Equal(decimal.RequireFromString("19.99")) {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestDealsByTitleBlankReturnsEmptyList(t *testing.T) {
	h := newTestHandler(&stubCatalog{}, &stubDeals{})
	rr := testutil.Serve(h, http.MethodGet, "/deals", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := rr.Body.String(); body != "{\"deals\":[]}\n" {
		t.Fatalf("expected empty deals, got %s", body)
	}
}

func TestTopDeals(t *testing.T) {
	dl := &stubDeals{top: []deals.Deal{{Store: "GOG", Title: "Doom"}}}
	h := newTestHandler(&stubCatalog{}, dl)

	rr := testutil.Serve(h, http.MethodGet, "/deals/top", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	dl.err = &upstream.NetworkError{Upstream: "cheapshark", Err: errors.New("refused")}
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/deals/top", nil), http.StatusServiceUnavailable)
}
