package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/preston-bernstein/gamescout-service/internal/http/requestutil"
	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/upstream"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", logging.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := requestutil.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeUpstreamError maps upstream failures onto gateway statuses:
// unreachable upstreams are 503, unusable responses 502.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	logger = loggerFromContext(r, logger)
	switch {
	case errors.Is(err, upstream.ErrNetworkUnavailable):
		logging.Warn(logger, "upstream unavailable", logging.FieldError, err)
		writeError(w, r, http.StatusServiceUnavailable, "upstream unavailable", logger)
	case errors.Is(err, upstream.ErrUpstreamProtocol):
		if perr, ok := upstream.AsProtocolError(err); ok && perr.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(perr.RetryAfter.Seconds()))))
		}
		logging.Warn(logger, "upstream protocol error", logging.FieldError, err)
		writeError(w, r, http.StatusBadGateway, "upstream error", logger)
	default:
		logging.Error(logger, "request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
