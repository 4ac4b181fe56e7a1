package cheapshark

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/gamescout-service/internal/cache"
	"github.com/preston-bernstein/gamescout-service/internal/domain/deals"
	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
	"github.com/preston-bernstein/gamescout-service/internal/upstream"
)

// Config controls how the deals client talks to CheapShark.
type Config struct {
	BaseURL    string
	HTTPClient upstream.HTTPDoer
	Timeout    time.Duration

	DealsTTL  time.Duration
	StoresTTL time.Duration

	// DealsCache may be shared; nil builds a private unbounded one.
	DealsCache *cache.TTL[[]deals.Deal]
	// Now drives store directory expiry. Defaults to time.Now.
	Now func() time.Time

	Metrics *metrics.Recorder
	Logger  *slog.Logger
}

// Client implements upstream.DealsProvider against the CheapShark API.
type Client struct {
	baseURL  string
	fetcher  *upstream.Fetcher
	stores   *StoreDirectory
	cache    *cache.TTL[[]deals.Deal]
	dealsTTL time.Duration
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

var _ upstream.DealsProvider = (*Client)(nil)

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, &upstream.ConfigurationError{Upstream: upstreamName, Field: "BaseURL"}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	dealsTTL := cfg.DealsTTL
	if dealsTTL <= 0 {
		dealsTTL = defaultDealsTTL
	}
	storesTTL := cfg.StoresTTL
	if storesTTL <= 0 {
		storesTTL = defaultStoresTTL
	}
	dealsCache := cfg.DealsCache
	if dealsCache == nil {
		dealsCache = cache.New[[]deals.Deal]()
	}

	fetcher := upstream.NewFetcher(upstreamName, cfg.HTTPClient, timeout, cfg.Metrics, cfg.Logger)
	return &Client{
		baseURL:  baseURL,
		fetcher:  fetcher,
		stores:   newStoreDirectory(baseURL, fetcher, storesTTL, cfg.Now, cfg.Logger),
		cache:    dealsCache,
		dealsTTL: dealsTTL,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}, nil
}

// Stores exposes the store directory used to name offers.
func (c *Client) Stores() *StoreDirectory { return c.stores }

// GetDealsByTitle returns the best offer per store for an exact title match.
// Unknown titles yield an empty list, which is cached like any other result.
func (c *Client) GetDealsByTitle(ctx context.Context, title string) ([]deals.Deal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return []deals.Deal{}, nil
	}
	if err := c.stores.EnsureFresh(ctx); err != nil {
		return nil, err
	}

	key := titleKeyPrefix + foldTitle(title)
	if cached, ok := c.lookup(key); ok {
		return cached, nil
	}

	gameID, err := c.resolveGameID(ctx, title)
	if err != nil {
		return nil, err
	}
	if gameID == "" {
		upstream.Log(ctx, c.logger, slog.LevelDebug, upstreamName, "no game matched title",
			slog.String(logging.FieldTitle, title),
			slog.String(logging.FieldCacheKey, key))
		return c.store(ctx, key, []deals.Deal{})
	}

	var payload gameByIDResponse
	gameURL := c.baseURL + "/games?" + url.Values{"id": {gameID}}.Encode()
	if err := c.fetcher.GetJSON(ctx, gameURL, &payload); err != nil {
		return nil, err
	}
	return c.store(ctx, key, mapGameDeals(gameID, payload, c.stores))
}

// GetTopDeals returns the cheapest offer per title from the top-rated deals feed.
func (c *Client) GetTopDeals(ctx context.Context) ([]deals.Deal, error) {
	if err := c.stores.EnsureFresh(ctx); err != nil {
		return nil, err
	}
	if cached, ok := c.lookup(topDealsKey); ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(topDealsPageSize))
	params.Set("sortBy", topDealsSortBy)

	var payload []dealResponse
	if err := c.fetcher.GetJSON(ctx, c.baseURL+"/deals?"+params.Encode(), &payload); err != nil {
		return nil, err
	}
	return c.store(ctx, topDealsKey, mapTopDeals(payload, c.stores))
}

func (c *Client) resolveGameID(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("title", title)
	params.Set("limit", strconv.Itoa(titleSearchLimit))
	params.Set("exact", "1")

	var found []gameSearchResponse
	if err := c.fetcher.GetJSON(ctx, c.baseURL+"/games?"+params.Encode(), &found); err != nil {
		return "", err
	}
	for _, g := range found {
		if id := g.GameID.String(); id != "" {
			return id, nil
		}
	}
	return "", nil
}

func (c *Client) lookup(key string) ([]deals.Deal, bool) {
	cached, ok := c.cache.TryGet(key)
	c.metrics.RecordCacheLookup(dealsCacheName, ok)
	return cached, ok
}

// store caches result unless ctx was cancelled while it was being built.
func (c *Client) store(ctx context.Context, key string, result []deals.Deal) ([]deals.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, &upstream.NetworkError{Upstream: upstreamName, URL: c.baseURL, Err: err}
	}
	c.cache.Set(key, result, c.dealsTTL)
	upstream.Log(ctx, c.logger, slog.LevelDebug, upstreamName, "deals cached",
		slog.String(logging.FieldCacheKey, key),
		slog.Int(logging.FieldCount, len(result)))
	return result, nil
}
