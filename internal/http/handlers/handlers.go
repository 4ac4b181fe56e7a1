package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/upstream"
)

// ReadinessCheck reports whether the service can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// Handler wires HTTP routes to the catalog and deals providers.
type Handler struct {
	catalog upstream.CatalogProvider
	deals   upstream.DealsProvider
	logger  *slog.Logger
	ready   ReadinessCheck
}

// NewHandler constructs a Handler. A nil ready check always reports ready.
func NewHandler(catalog upstream.CatalogProvider, deals upstream.DealsProvider, logger *slog.Logger, ready ReadinessCheck) *Handler {
	return &Handler{
		catalog: catalog,
		deals:   deals,
		logger:  logger,
		ready:   ready,
	}
}

// ServeHTTP dispatches by path so the Handler can be mounted directly.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/games":
		h.SearchGames(w, r)
	case strings.HasPrefix(r.URL.Path, "/games/"):
		h.GameDetails(w, r)
	case r.URL.Path == "/deals":
		h.DealsByTitle(w, r)
	case r.URL.Path == "/deals/top":
		h.TopDeals(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "not ready", logging.FieldError, err)
			writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
			return
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
