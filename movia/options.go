package movia

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
// WithTimeout is ignored when this option is used.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}
