package types

import (
	"net/url"
	"time"
)

// ------------------------------
// Request Types
// ------------------------------

// RequestOptions carries the per-call overrides merged on top of the
// transport's configured defaults.
type RequestOptions struct {
	// JSON is encoded as the request body when non-nil.
	JSON    any
	Headers map[string]string
	Query   url.Values
	// Timeout bounds this call only; zero leaves the caller's context alone.
	Timeout time.Duration
}

// RequestOption mutates RequestOptions for a single call.
type RequestOption func(*RequestOptions)

// BuildOptions applies opts on top of base. The returned headers and query
// never alias the caller's maps.
func BuildOptions(base RequestOptions, opts ...RequestOption) RequestOptions {
	out := base
	out.Headers = make(map[string]string, len(base.Headers))
	for k, v := range base.Headers {
		out.Headers[k] = v
	}
	out.Query = url.Values{}
	for k, vs := range base.Query {
		out.Query[k] = append([]string(nil), vs...)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	return out
}
