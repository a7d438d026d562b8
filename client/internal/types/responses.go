package types

import "net/http"

// ------------------------------
// Response Types
// ------------------------------

// Response is what a transport hands back for a completed exchange.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}
