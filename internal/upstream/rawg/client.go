package rawg

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/gamescout-service/internal/cache"
	"github.com/preston-bernstein/gamescout-service/internal/domain/catalog"
	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
	"github.com/preston-bernstein/gamescout-service/internal/upstream"
)

var errNotFound = errors.New("rawg: game not found")

// Config controls how the catalog client talks to RAWG.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient upstream.HTTPDoer
	Timeout    time.Duration

	SearchTTL  time.Duration
	DetailsTTL time.Duration

	// Caches may be shared across clients; nil builds private unbounded ones.
	SearchCache  *cache.TTL[catalog.SearchResult]
	DetailsCache *cache.TTL[catalog.GameDetails]

	Metrics *metrics.Recorder
	Logger  *slog.Logger
}

// Client implements upstream.CatalogProvider against the RAWG API.
type Client struct {
	baseURL    string
	apiKey     string
	fetcher    *upstream.Fetcher
	searchTTL  time.Duration
	detailsTTL time.Duration
	search     *cache.TTL[catalog.SearchResult]
	details    *cache.TTL[catalog.GameDetails]
	metrics    *metrics.Recorder
	logger     *slog.Logger
}

var _ upstream.CatalogProvider = (*Client)(nil)

// NewClient validates cfg and builds a Client. A blank base URL is rejected here
// rather than on first use.
func NewClient(cfg Config) (*Client, error) {
	baseURL := normalizeBaseURL(cfg.BaseURL)
	if baseURL == "" {
		return nil, &upstream.ConfigurationError{Upstream: upstreamName, Field: "BaseURL"}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	searchTTL := cfg.SearchTTL
	if searchTTL <= 0 {
		searchTTL = defaultSearchTTL
	}
	detailsTTL := cfg.DetailsTTL
	if detailsTTL <= 0 {
		detailsTTL = defaultDetailsTTL
	}
	searchCache := cfg.SearchCache
	if searchCache == nil {
		searchCache = cache.New[catalog.SearchResult]()
	}
	detailsCache := cfg.DetailsCache
	if detailsCache == nil {
		detailsCache = cache.New[catalog.GameDetails]()
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		fetcher:    upstream.NewFetcher(upstreamName, cfg.HTTPClient, timeout, cfg.Metrics, cfg.Logger),
		searchTTL:  searchTTL,
		detailsTTL: detailsTTL,
		search:     searchCache,
		details:    detailsCache,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
	}, nil
}

// Search returns one page of catalog results. The assembled request URL is the
// cache key, so any parameter change is a distinct entry.
func (c *Client) Search(ctx context.Context, q catalog.SearchQuery) (catalog.SearchResult, error) {
	reqURL := c.searchURL(q)

	if cached, ok := c.search.TryGet(reqURL); ok {
		c.metrics.RecordCacheLookup(searchCacheName, true)
		c.log(ctx, slog.LevelDebug, "search cache hit", reqURL)
		return cached, nil
	}
	c.metrics.RecordCacheLookup(searchCacheName, false)

	var payload listResponse
	if err := c.fetcher.GetJSON(ctx, reqURL, &payload); err != nil {
		return catalog.SearchResult{}, err
	}
	result := mapSearchResult(payload)

	if ctx.Err() != nil {
		return catalog.SearchResult{}, &upstream.NetworkError{Upstream: upstreamName, URL: upstream.RedactURL(reqURL), Err: ctx.Err()}
	}
	c.search.Set(reqURL, result, c.searchTTL)
	c.log(ctx, slog.LevelDebug, "search cached", reqURL, slog.Int(logging.FieldCount, len(result.Items)))
	return result, nil
}

// GetDetails fetches a game record, then its screenshots. The bool is false only
// when RAWG reports the record itself does not exist; absent results are not cached.
func (c *Client) GetDetails(ctx context.Context, id int) (catalog.GameDetails, bool, error) {
	key := strconv.Itoa(id)
	if cached, ok := c.details.TryGet(key); ok {
		c.metrics.RecordCacheLookup(detailsCacheName, true)
		return cached, true, nil
	}
	c.metrics.RecordCacheLookup(detailsCacheName, false)

	var detail detailResponse
	if err := c.getOptional(ctx, c.gameURL(id, ""), &detail); err != nil {
		if errors.Is(err, errNotFound) {
			c.log(ctx, slog.LevelDebug, "game not found", c.gameURL(id, ""), slog.Int(logging.FieldGameID, id))
			return catalog.GameDetails{}, false, nil
		}
		return catalog.GameDetails{}, false, err
	}

	// The record exists, so the screenshots sub-resource must load too; a 404
	// here is an upstream fault, not an absent game.
	var shots screenshotsResponse
	if err := c.fetcher.GetJSON(ctx, c.gameURL(id, "/screenshots"), &shots); err != nil {
		return catalog.GameDetails{}, false, err
	}

	result := mapDetails(detail, shots)
	if ctx.Err() != nil {
		return catalog.GameDetails{}, false, &upstream.NetworkError{Upstream: upstreamName, URL: upstream.RedactURL(c.gameURL(id, "")), Err: ctx.Err()}
	}
	c.details.Set(key, result, c.detailsTTL)
	return result, true, nil
}

// getOptional decodes a JSON body, mapping 404 to errNotFound.
func (c *Client) getOptional(ctx context.Context, rawURL string, dest any) error {
	resp, err := c.fetcher.Get(ctx, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if err := c.fetcher.CheckStatus(resp, rawURL); err != nil {
		return err
	}
	return c.fetcher.Decode(ctx, resp, rawURL, dest)
}

func (c *Client) log(ctx context.Context, level slog.Level, msg, rawURL string, args ...any) {
	args = append(args, slog.String(logging.FieldURL, upstream.RedactURL(rawURL)))
	upstream.Log(ctx, c.logger, level, upstreamName, msg, args...)
}
