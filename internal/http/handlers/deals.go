package handlers

import (
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/domain/deals"
)

type dealsResponse struct {
	Title string       `json:"title,omitempty"`
	Deals []deals.Deal `json:"deals"`
}

// DealsByTitle serves GET /deals?title=. A blank title yields an empty list.
func (h *Handler) DealsByTitle(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	found, err := h.deals.GetDealsByTitle(r.Context(), title)
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, dealsResponse{Title: title, Deals: nonNil(found)}, h.logger)
}

// TopDeals serves GET /deals/top.
func (h *Handler) TopDeals(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	top, err := h.deals.GetTopDeals(r.Context())
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, dealsResponse{Deals: nonNil(top)}, h.logger)
}

func nonNil(list []deals.Deal) []deals.Deal {
	if list == nil {
		return []deals.Deal{}
	}
	return list
}
