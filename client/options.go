package client

// This file defines functional options that configure the Client during
// construction, plus the per-call RequestOptions.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sudipta/vrio-go/client/internal/types"
)

// Option configures a Client during construction in New.
//
// Options are applied in order before the default transport is built, so
// HTTP-level options (timeout, debug logging) only matter when WithTransport
// is not used.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines or WithTimeout where possible; this
// timeout is a coarse safety net for a single HTTP exchange.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient uses a copy of hc for the default transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithTransport replaces the built-in transport entirely. The transport is
// then responsible for the base URL and the fixed headers.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		if t == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		c.transport = t
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
// Do not enable this option in production environments: dumps include the
// X-Api-Key header and full payloads.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.http.Transport.(*debugTransport); ok {
			return nil
		}
		c.http.Transport = &debugTransport{base: c.http.Transport}
		return nil
	}
}

// --------------------------------------------------------------------
// Per-call options
// --------------------------------------------------------------------

// WithHeader sets a header on a single request, overriding the defaults.
func WithHeader(key, value string) RequestOption {
	return func(o *types.RequestOptions) {
		o.Headers[key] = value
	}
}

// WithQuery adds a query parameter to a single request.
func WithQuery(key, value string) RequestOption {
	return func(o *types.RequestOptions) {
		o.Query.Add(key, value)
	}
}

// WithTimeout bounds a single request.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *types.RequestOptions) {
		o.Timeout = d
	}
}

// WithRequestID pins the X-Request-Id header instead of a generated one.
func WithRequestID(id string) RequestOption {
	return WithHeader("X-Request-Id", id)
}
