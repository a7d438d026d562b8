package errors

import (
	"fmt"

	"github.com/sudipta/vrio-go/client/internal/types"
)

// KindForStatus maps an HTTP status code to a fault kind.
// It returns "" for statuses that are not faults (1xx, 2xx, 3xx).
func KindForStatus(statusCode int) types.FaultKind {
	switch {
	case statusCode >= 400 && statusCode < 500:
		return types.FaultClient
	case statusCode >= 500 && statusCode < 600:
		return types.FaultServer
	default:
		return ""
	}
}

// NewHTTPFault builds the fault for a completed exchange with an error status.
// The message names the request and the status line, e.g.
//
//	client error: `GET https://api.example.com/v1/orders/9` resulted in a `404 Not Found` response
func NewHTTPFault(method, url string, resp *types.Response) *Fault {
	kind := KindForStatus(resp.StatusCode)
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}
	return &Fault{
		Kind:     kind,
		Code:     resp.StatusCode,
		Message:  fmt.Sprintf("%s error: `%s %s` resulted in a `%s` response", kind, method, url, status),
		Response: resp,
	}
}

// NewNetworkFault wraps a failure that produced no response at all.
func NewNetworkFault(method, url string, err error) *Fault {
	return &Fault{
		Kind:    types.FaultTransport,
		Code:    0,
		Message: fmt.Sprintf("%s %s: %v", method, url, err),
		Err:     err,
	}
}
