package testutil

import (
	"context"
	"testing"

	"github.com/preston-bernstein/gamescout-service/internal/metrics"
)

// NewRecorderWithShutdown returns a recorder and a no-op shutdown to simplify tests.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}

// AssertCacheLookups fails the test unless the named cache saw exactly hits and misses.
func AssertCacheLookups(t *testing.T, rec *metrics.Recorder, cache string, hits, misses int) {
	t.Helper()
	gotHits, gotMisses := rec.CacheHits(cache)
	if gotHits != hits || gotMisses != misses {
		t.Fatalf("cache %q: expected %d hits/%d misses, got %d/%d", cache, hits, misses, gotHits, gotMisses)
	}
}
