package rawg

import "time"

const (
	upstreamName       = "rawg"
	defaultHTTPTimeout = 10 * time.Second
	defaultPageSize    = 20
	maxPageSize        = 40
	defaultSearchTTL   = 5 * time.Minute
	defaultDetailsTTL  = 30 * time.Minute

	searchCacheName  = "rawg_search"
	detailsCacheName = "rawg_details"
)
