package server

import (
	"log/slog"

	"github.com/preston-bernstein/gamescout-service/internal/cache"
	"github.com/preston-bernstein/gamescout-service/internal/config"
	"github.com/preston-bernstein/gamescout-service/internal/domain/catalog"
	"github.com/preston-bernstein/gamescout-service/internal/domain/deals"
	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
	"github.com/preston-bernstein/gamescout-service/internal/upstream"
	"github.com/preston-bernstein/gamescout-service/internal/upstream/cheapshark"
	"github.com/preston-bernstein/gamescout-service/internal/upstream/rawg"
)

// caches are process-wide and shared by every request.
type caches struct {
	search  *cache.TTL[catalog.SearchResult]
	details *cache.TTL[catalog.GameDetails]
	deals   *cache.TTL[[]deals.Deal]
}

func newCaches(maxEntries int) caches {
	return caches{
		search:  cache.New[catalog.SearchResult](cache.WithMaxEntries(maxEntries)),
		details: cache.New[catalog.GameDetails](cache.WithMaxEntries(maxEntries)),
		deals:   cache.New[[]deals.Deal](cache.WithMaxEntries(maxEntries)),
	}
}

func (c caches) logStats(logger *slog.Logger) {
	if logger == nil {
		return
	}
	for name, stats := range map[string]cache.Stats{
		"search":  c.search.Stats(),
		"details": c.details.Stats(),
		"deals":   c.deals.Stats(),
	} {
		logger.Info("cache stats",
			slog.String(logging.FieldCache, name),
			slog.Uint64("hits", stats.Hits),
			slog.Uint64("misses", stats.Misses),
			slog.Uint64("sets", stats.Sets),
			slog.Int(logging.FieldCount, stats.Entries),
		)
	}
}

// buildClients constructs both upstream clients. A nil doer lets each client
// build its own *http.Client with the configured timeout.
func buildClients(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, doer upstream.HTTPDoer, shared caches) (*rawg.Client, *cheapshark.Client, error) {
	catalogClient, err := rawg.NewClient(rawg.Config{
		BaseURL:      cfg.RAWG.BaseURL,
		APIKey:       cfg.RAWG.APIKey,
		HTTPClient:   doer,
		Timeout:      cfg.HTTPTimeout,
		SearchCache:  shared.search,
		DetailsCache: shared.details,
		Metrics:      recorder,
		Logger:       logger,
	})
	if err != nil {
		return nil, nil, err
	}

	dealsClient, err := cheapshark.NewClient(cheapshark.Config{
		BaseURL:    cfg.CheapShark.BaseURL,
		HTTPClient: doer,
		Timeout:    cfg.HTTPTimeout,
		DealsCache: shared.deals,
		Metrics:    recorder,
		Logger:     logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return catalogClient, dealsClient, nil
}
