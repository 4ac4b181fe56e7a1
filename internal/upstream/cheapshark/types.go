package cheapshark

import "github.com/preston-bernstein/gamescout-service/internal/upstream"

// CheapShark mixes strings and numbers for ids, prices and flags; every field
// decodes leniently so one odd value never fails the payload.

type storeResponse struct {
	StoreID   upstream.FlexString `json:"storeID"`
	StoreName upstream.FlexString `json:"storeName"`
	IsActive  upstream.FlexInt    `json:"isActive"`
}

type gameSearchResponse struct {
	GameID   upstream.FlexString `json:"gameID"`
	External upstream.FlexString `json:"external"`
	Thumb    upstream.FlexString `json:"thumb"`
}

type gameByIDResponse struct {
	Info  gameInfoResponse   `json:"info"`
	Deals []gameDealResponse `json:"deals"`
}

type gameInfoResponse struct {
	Title upstream.FlexString `json:"title"`
	Thumb upstream.FlexString `json:"thumb"`
}

type gameDealResponse struct {
	DealID      upstream.FlexString `json:"dealID"`
	StoreID     upstream.FlexString `json:"storeID"`
	Price       upstream.FlexString `json:"price"`
	RetailPrice upstream.FlexString `json:"retailPrice"`
}

type dealResponse struct {
	DealID      upstream.FlexString `json:"dealID"`
	StoreID     upstream.FlexString `json:"storeID"`
	GameID      upstream.FlexString `json:"gameID"`
	Title       upstream.FlexString `json:"title"`
	SalePrice   upstream.FlexString `json:"salePrice"`
	NormalPrice upstream.FlexString `json:"normalPrice"`
	Thumb       upstream.FlexString `json:"thumb"`
}
