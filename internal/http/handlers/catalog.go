package handlers

import (
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/domain/catalog"
	"github.com/preston-bernstein/gamescout-service/internal/logging"
)

const (
	defaultPageSize = 20
	maxPageSize     = 40
)

// SearchGames serves GET /games.
func (h *Handler) SearchGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	query, msg := parseSearchQuery(r.URL.Query())
	if msg != "" {
		writeError(w, r, nethttp.StatusBadRequest, msg, h.logger)
		return
	}

	result, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	if result.Items == nil {
		result.Items = []catalog.GameSummary{}
	}
	logging.Info(loggerFromContext(r, h.logger), "served search", logging.FieldCount, len(result.Items), logging.FieldTotal, result.Total)
	writeJSON(w, nethttp.StatusOK, result, h.logger)
}

// GameDetails serves GET /games/{id}.
func (h *Handler) GameDetails(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	idRaw, err := url.PathUnescape(strings.TrimPrefix(r.URL.Path, "/games/"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	id, err := strconv.Atoi(idRaw)
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	details, ok, err := h.catalog.GetDetails(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, details, h.logger)
}

// parseSearchQuery returns a non-empty message when the query is invalid.
func parseSearchQuery(values url.Values) (catalog.SearchQuery, string) {
	q := catalog.SearchQuery{
		Text:      strings.TrimSpace(values.Get("search")),
		Platforms: splitList(values.Get("platforms")),
		Genres:    splitList(values.Get("genres")),
		Page:      1,
		PageSize:  defaultPageSize,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return catalog.SearchQuery{}, "invalid page"
		}
		q.Page = page
	}
	if raw := values.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return catalog.SearchQuery{}, "invalid page_size"
		}
		q.PageSize = min(size, maxPageSize)
	}
	sort, ok := catalog.ParseSortBy(values.Get("ordering"))
	if !ok {
		return catalog.SearchQuery{}, "invalid ordering (expected name, metacritic, released or rating)"
	}
	q.Sort = sort
	return q, ""
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
