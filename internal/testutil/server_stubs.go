package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// StubHTTPServer stands in for the service's HTTP listener. Counters are safe
// to read while ListenAndServe runs on another goroutine.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	// Block, when non-nil, makes Shutdown wait until it is closed or ctx ends.
	Block chan struct{}

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
}

// NewFailingServer returns a stub whose ListenAndServe fails immediately.
func NewFailingServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: errors.New("listen failure")}
}

// NewClosedServer returns a stub that reports a clean close from ListenAndServe.
func NewClosedServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: http.ErrServerClosed}
}

// NewBlockingServer returns a stub whose Shutdown hangs until Block is closed.
func NewBlockingServer() *StubHTTPServer {
	return &StubHTTPServer{Block: make(chan struct{})}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdownCalls++
	s.mu.Unlock()
	if s.Block == nil {
		return s.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Block:
		return s.ShutdownErr
	}
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownCalls
}
