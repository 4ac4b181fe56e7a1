package server

import "time"

const (
	readTimeout = 5 * time.Second
	idleTimeout = 60 * time.Second
	// writeSlack covers decoding, mapping and response encoding after the upstream returns.
	writeSlack = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor bounds a response by the slowest upstream chain a request can trigger:
// a deals lookup refreshes stores, resolves the title, then loads offers.
func writeTimeoutFor(upstreamTimeout time.Duration) time.Duration {
	if upstreamTimeout <= 0 {
		upstreamTimeout = 10 * time.Second
	}
	return 3*upstreamTimeout + writeSlack
}
