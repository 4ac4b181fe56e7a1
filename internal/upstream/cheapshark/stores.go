package cheapshark

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/upstream"
)

// StoreDirectory maps CheapShark store ids to display names. The whole map is
// replaced on refresh so readers see either the previous or the new directory.
type StoreDirectory struct {
	mu        sync.RWMutex
	names     map[string]string
	expiresAt time.Time

	url     string
	ttl     time.Duration
	fetcher *upstream.Fetcher
	logger  *slog.Logger
	now     func() time.Time
}

func newStoreDirectory(baseURL string, fetcher *upstream.Fetcher, ttl time.Duration, now func() time.Time, logger *slog.Logger) *StoreDirectory {
	if now == nil {
		now = time.Now
	}
	return &StoreDirectory{
		names:   map[string]string{},
		url:     baseURL + "/stores",
		ttl:     ttl,
		fetcher: fetcher,
		logger:  logger,
		now:     now,
	}
}

// EnsureFresh refreshes the directory when it is empty or older than its TTL.
// Refresh failures are returned and leave the current directory in place.
func (d *StoreDirectory) EnsureFresh(ctx context.Context) error {
	if d.fresh() {
		return nil
	}

	var payload []storeResponse
	if err := d.fetcher.GetJSON(ctx, d.url, &payload); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return &upstream.NetworkError{Upstream: upstreamName, URL: d.url, Err: err}
	}

	names := make(map[string]string, len(payload))
	for _, s := range payload {
		id := s.StoreID.String()
		name := s.StoreName.String()
		if !s.IsActive.Valid || s.IsActive.Value != 1 || id == "" || name == "" {
			continue
		}
		names[id] = name
	}

	d.mu.Lock()
	d.names = names
	d.expiresAt = d.now().Add(d.ttl)
	d.mu.Unlock()

	upstream.Log(ctx, d.logger, slog.LevelInfo, upstreamName, "store directory refreshed",
		slog.Int(logging.FieldCount, len(names)))
	return nil
}

// Resolve returns the store name for id, or "Store {id}" when it is unknown.
func (d *StoreDirectory) Resolve(id string) string {
	d.mu.RLock()
	name, ok := d.names[id]
	d.mu.RUnlock()
	if ok {
		return name
	}
	return "Store " + id
}

// Len reports how many active stores are known.
func (d *StoreDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.names)
}

func (d *StoreDirectory) fresh() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.names) > 0 && d.now().Before(d.expiresAt)
}
