package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/gamescout-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games", handler.SearchGames)
	mux.HandleFunc("/games/", handler.GameDetails)
	mux.HandleFunc("/deals", handler.DealsByTitle)
	mux.HandleFunc("/deals/top", handler.TopDeals)
	return mux
}
