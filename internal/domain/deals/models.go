package deals

import "github.com/shopspring/decimal"

// Deal is one store's offer for a title. Prices are exact decimals.
type Deal struct {
	Store       string          `json:"store"`
	StoreID     string          `json:"storeId"`
	Title       string          `json:"title,omitempty"`
	GameID      string          `json:"gameId,omitempty"`
	Price       decimal.Decimal `json:"price"`
	NormalPrice decimal.Decimal `json:"normalPrice"`
	Savings     decimal.Decimal `json:"savings"`
	URL         string          `json:"url"`
	Thumb       string          `json:"thumb,omitempty"`
}
