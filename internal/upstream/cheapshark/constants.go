package cheapshark

import "time"

const (
	upstreamName       = "cheapshark"
	defaultHTTPTimeout = 10 * time.Second
	defaultDealsTTL    = 5 * time.Minute
	defaultStoresTTL   = 24 * time.Hour

	titleSearchLimit = 5
	topDealsPageSize = 60
	topDealsSortBy   = "Deal Rating"

	redirectURLPrefix = "https://www.cheapshark.com/redirect?dealID="

	dealsCacheName = "cheapshark_deals"
	titleKeyPrefix = "game:"
	topDealsKey    = "top"
)
