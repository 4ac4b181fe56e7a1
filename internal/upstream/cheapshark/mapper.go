package cheapshark

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/preston-bernstein/gamescout-service/internal/domain/deals"
)

// foldTitle trims and case-folds a title for use as a key.
func foldTitle(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}

func redirectURL(dealID string) string {
	return redirectURLPrefix + dealID
}

// mapGameDeals keeps the cheapest offer per store and orders the result by
// savings descending, then price ascending.
func mapGameDeals(gameID string, payload gameByIDResponse, stores *StoreDirectory) []deals.Deal {
	best := make(map[string]int)
	out := make([]deals.Deal, 0, len(payload.Deals))
	for _, raw := range payload.Deals {
		storeID, dealID := raw.StoreID.String(), raw.DealID.String()
		if storeID == "" || dealID == "" {
			continue
		}
		price := ParsePrice(raw.Price.String())
		normal := ParsePrice(raw.RetailPrice.String())
		deal := deals.Deal{
			Store:       stores.Resolve(storeID),
			StoreID:     storeID,
			Title:       payload.Info.Title.String(),
			GameID:      gameID,
			Price:       price,
			NormalPrice: normal,
			Savings:     Savings(price, normal),
			URL:         redirectURL(dealID),
			Thumb:       payload.Info.Thumb.String(),
		}
		if i, seen := best[storeID]; seen {
			if price.LessThan(out[i].Price) {
				out[i] = deal
			}
			continue
		}
		best[storeID] = len(out)
		out = append(out, deal)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Savings.Cmp(out[j].Savings); c != 0 {
			return c > 0
		}
		return out[i].Price.LessThan(out[j].Price)
	})
	return out
}

// mapTopDeals keeps the cheapest offer per case-insensitive title and orders
// the result by price ascending.
func mapTopDeals(payload []dealResponse, stores *StoreDirectory) []deals.Deal {
	type candidate struct {
		key  string
		deal deals.Deal
	}
	index := make(map[string]int)
	picked := make([]candidate, 0, len(payload))
	for _, raw := range payload {
		storeID, dealID := raw.StoreID.String(), raw.DealID.String()
		title := raw.Title.String()
		if storeID == "" || dealID == "" || title == "" {
			continue
		}
		price := ParsePrice(raw.SalePrice.String())
		normal := ParsePrice(raw.NormalPrice.String())
		deal := deals.Deal{
			Store:       stores.Resolve(storeID),
			StoreID:     storeID,
			Title:       title,
			GameID:      raw.GameID.String(),
			Price:       price,
			NormalPrice: normal,
			Savings:     Savings(price, normal),
			URL:         redirectURL(dealID),
			Thumb:       raw.Thumb.String(),
		}
		key := foldTitle(title)
		if i, seen := index[key]; seen {
			if price.LessThan(picked[i].deal.Price) {
				picked[i].deal = deal
			}
			continue
		}
		index[key] = len(picked)
		picked = append(picked, candidate{key: key, deal: deal})
	}

	sort.SliceStable(picked, func(i, j int) bool {
		if c := picked[i].deal.Price.Cmp(picked[j].deal.Price); c != 0 {
			return c < 0
		}
		return picked[i].key < picked[j].key
	})
	out := make([]deals.Deal, len(picked))
	for i, c := range picked {
		out[i] = c.deal
	}
	return out
}
