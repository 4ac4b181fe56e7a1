package upstream

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNetworkUnavailable matches every transport-level failure, whatever its cause.
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrUpstreamProtocol matches non-success statuses and undecodable bodies.
	ErrUpstreamProtocol = errors.New("upstream protocol error")
	// ErrConfiguration matches missing required client settings.
	ErrConfiguration = errors.New("configuration error")
)

// NetworkError wraps a transport failure (DNS, refused connection, timeout, cancellation).
type NetworkError struct {
	Upstream string
	URL      string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network unavailable: GET %s: %v", e.Upstream, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetworkUnavailable }

// ProtocolError reports an upstream response that could not be used.
type ProtocolError struct {
	Upstream   string
	URL        string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *ProtocolError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected response"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d, url=%s)", e.Upstream, msg, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s: %s (url=%s)", e.Upstream, msg, e.URL)
}

func (e *ProtocolError) Is(target error) bool { return target == ErrUpstreamProtocol }

// RateLimited reports whether the upstream rejected the call with 429.
func (e *ProtocolError) RateLimited() bool { return e.StatusCode == 429 }

// ConfigurationError reports a required setting that was not supplied.
type ConfigurationError struct {
	Upstream string
	Field    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: missing required configuration %s", e.Upstream, e.Field)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// AsProtocolError attempts to unwrap an error into a ProtocolError.
func AsProtocolError(err error) (*ProtocolError, bool) {
	var protoErr *ProtocolError
	if errors.As(err, &protoErr) {
		return protoErr, true
	}
	return nil, false
}
