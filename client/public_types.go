package client

import "github.com/sudipta/vrio-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Result is the envelope every operation returns.
	Result = types.Result
	// FaultKind classifies a failed Result.
	FaultKind = types.FaultKind

	// Transport and the values it exchanges.
	Transport      = types.Transport
	Response       = types.Response
	RequestOptions = types.RequestOptions
	RequestOption  = types.RequestOption
)

// Payload is a convenience for untyped JSON request bodies.
type Payload = map[string]any
