package types

import "context"

// ------------------------------
// Shared Interfaces
// ------------------------------

// Transport issues one request against the configured base URL.
//
// path never starts with a slash. A non-nil error should be a *errors.Fault;
// anything else is treated as a transport fault with code 0.
type Transport interface {
	Do(ctx context.Context, method, path string, opts RequestOptions) (*Response, error)
}
