package upstream

import (
	"context"

	"github.com/preston-bernstein/gamescout-service/internal/domain/catalog"
	"github.com/preston-bernstein/gamescout-service/internal/domain/deals"
)

// CatalogProvider searches a game metadata catalog and loads per-title details.
// GetDetails reports false when the upstream does not know the id.
type CatalogProvider interface {
	Search(ctx context.Context, q catalog.SearchQuery) (catalog.SearchResult, error)
	GetDetails(ctx context.Context, id int) (catalog.GameDetails, bool, error)
}

// DealsProvider looks up store offers. An empty slice means no offers.
type DealsProvider interface {
	GetDealsByTitle(ctx context.Context, title string) ([]deals.Deal, error)
	GetTopDeals(ctx context.Context) ([]deals.Deal, error)
}
