package upstream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
)

const errorBodyLimit = 512

// HTTPDoer is the subset of *http.Client used to reach upstreams.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher issues GET requests to one upstream and translates transport failures
// into *NetworkError. Non-2xx responses are returned untouched by Get.
type Fetcher struct {
	upstream string
	client   HTTPDoer
	metrics  *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewFetcher builds a Fetcher. A nil client falls back to a client with timeout.
func NewFetcher(upstream string, client HTTPDoer, timeout time.Duration, recorder *metrics.Recorder, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Fetcher{
		upstream: upstream,
		client:   client,
		metrics:  recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Get performs a single GET. Any transport error, including context
// cancellation, becomes a *NetworkError carrying the cause and redacted URL.
func (f *Fetcher) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	safeURL := RedactURL(rawURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &NetworkError{Upstream: f.upstream, URL: safeURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := f.now()
	resp, err := f.client.Do(req)
	elapsed := f.now().Sub(start)
	if err != nil {
		netErr := &NetworkError{Upstream: f.upstream, URL: safeURL, Err: err}
		f.metrics.RecordUpstreamAttempt(f.upstream, elapsed, netErr)
		Log(ctx, f.logger, slog.LevelWarn, f.upstream, "upstream unreachable",
			slog.String(logging.FieldURL, safeURL), slog.Any(logging.FieldError, err))
		return nil, netErr
	}

	var statusErr error
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr = &ProtocolError{Upstream: f.upstream, URL: safeURL, StatusCode: resp.StatusCode}
	}
	f.metrics.RecordUpstreamAttempt(f.upstream, elapsed, statusErr)
	Log(ctx, f.logger, slog.LevelDebug, f.upstream, "upstream response",
		slog.String(logging.FieldURL, safeURL),
		slog.Int(logging.FieldStatusCode, resp.StatusCode),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	return resp, nil
}

// GetJSON performs Get, rejects non-2xx statuses with *ProtocolError and decodes the body into dest.
func (f *Fetcher) GetJSON(ctx context.Context, rawURL string, dest any) error {
	resp, err := f.Get(ctx, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := f.CheckStatus(resp, rawURL); err != nil {
		return err
	}
	return f.Decode(ctx, resp, rawURL, dest)
}

// CheckStatus returns a *ProtocolError for non-2xx responses, reading a bounded
// slice of the body for diagnostics. Rate limits are recorded with their Retry-After.
func (f *Fetcher) CheckStatus(resp *http.Response, rawURL string) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	perr := &ProtocolError{
		Upstream:   f.upstream,
		URL:        RedactURL(rawURL),
		StatusCode: resp.StatusCode,
		Message:    "unexpected status",
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		perr.Message = "unexpected status: " + msg
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		perr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), f.now())
		f.metrics.RecordRateLimit(f.upstream, perr.RetryAfter)
	}
	return perr
}

// Decode reads the whole body before parsing it. Any failure while reading is a
// transport fault and becomes a *NetworkError; only malformed JSON in a fully
// read body is a *ProtocolError.
func (f *Fetcher) Decode(ctx context.Context, resp *http.Response, rawURL string, dest any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		cause := err
		if ctx.Err() != nil {
			cause = ctx.Err()
		}
		Log(ctx, f.logger, slog.LevelWarn, f.upstream, "upstream body read failed",
			slog.String(logging.FieldURL, RedactURL(rawURL)), slog.Any(logging.FieldError, err))
		return &NetworkError{Upstream: f.upstream, URL: RedactURL(rawURL), Err: cause}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &ProtocolError{
			Upstream:   f.upstream,
			URL:        RedactURL(rawURL),
			StatusCode: resp.StatusCode,
			Message:    "decode response: " + err.Error(),
		}
	}
	return nil
}

func parseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
