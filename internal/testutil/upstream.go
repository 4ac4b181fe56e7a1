package testutil

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// RoundTripperFunc adapts a function into an http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// JSONResponse builds a response with the given status and JSON body.
func JSONResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

// Route answers a request whose path matches.
type Route func(req *http.Request) (*http.Response, error)

// FakeUpstream is a path-routed transport that records every request it serves.
// Unrouted paths answer 404.
type FakeUpstream struct {
	mu       sync.Mutex
	routes   map[string]Route
	requests []*http.Request
}

// NewFakeUpstream builds an empty FakeUpstream.
func NewFakeUpstream() *FakeUpstream {
	return &FakeUpstream{routes: make(map[string]Route)}
}

// Handle registers a route for an exact URL path.
func (f *FakeUpstream) Handle(path string, route Route) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = route
}

// HandleJSON registers a fixed JSON answer for path.
func (f *FakeUpstream) HandleJSON(path string, status int, body string) {
	f.Handle(path, func(*http.Request) (*http.Response, error) {
		return JSONResponse(status, body), nil
	})
}

// Client returns an *http.Client that sends everything to f.
func (f *FakeUpstream) Client() *http.Client {
	return &http.Client{Transport: RoundTripperFunc(f.roundTrip)}
}

func (f *FakeUpstream) roundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	route, ok := f.routes[req.URL.Path]
	f.mu.Unlock()

	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	if !ok {
		return JSONResponse(http.StatusNotFound, `{"detail":"Not found."}`), nil
	}
	return route(req)
}

// Requests returns the requests served so far.
func (f *FakeUpstream) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

// Calls counts requests made to path.
func (f *FakeUpstream) Calls(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r.URL.Path == path {
			n++
		}
	}
	return n
}
