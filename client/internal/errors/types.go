// Package errors provides fault classification for the client SDK.
// Faults are raised by transports and recovered by the request primitive,
// which turns them into Result envelopes.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/sudipta/vrio-go/client/internal/types"
)

// Fault is a transport-level error condition categorised by response class.
type Fault struct {
	Kind     types.FaultKind
	Code     int             // HTTP status for client/server faults, 0 otherwise
	Message  string          // Human readable summary
	Response *types.Response // nil for transport faults
	Err      error           // The original error, if any
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.Message != "" {
		return f.Message
	}
	if f.Err != nil {
		return f.Err.Error()
	}
	return fmt.Sprintf("%s fault", f.Kind)
}

// Unwrap returns the underlying error for error chain compatibility.
func (f *Fault) Unwrap() error {
	return f.Err
}

// AsFault extracts a *Fault from err's chain.
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if stderrors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsClientFault reports whether err is a 4xx fault.
func IsClientFault(err error) bool { return isKind(err, types.FaultClient) }

// IsServerFault reports whether err is a 5xx fault.
func IsServerFault(err error) bool { return isKind(err, types.FaultServer) }

// IsTransportFault reports whether err is a fault with no usable response.
func IsTransportFault(err error) bool { return isKind(err, types.FaultTransport) }

func isKind(err error, kind types.FaultKind) bool {
	f, ok := AsFault(err)
	return ok && f.Kind == kind
}
