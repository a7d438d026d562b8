package client

import (
	"github.com/sudipta/vrio-go/client/internal/errors"
	"github.com/sudipta/vrio-go/client/internal/types"
)

// Fault is what a Transport returns for a failed exchange. Custom transports
// should return one so the envelope gets the right shape.
type Fault = errors.Fault

// Fault kinds carried by Fault.Kind and Result.Fault.
const (
	FaultClient    = types.FaultClient
	FaultServer    = types.FaultServer
	FaultTransport = types.FaultTransport
)

// ErrEmptyBody is returned by Result.Decode when the success body was empty.
var ErrEmptyBody = types.ErrEmptyBody

// NewHTTPFault builds the client or server fault for a response with a 4xx
// or 5xx status.
func NewHTTPFault(method, url string, resp *Response) *Fault {
	return errors.NewHTTPFault(method, url, resp)
}

// NewNetworkFault wraps an error that produced no response.
func NewNetworkFault(method, url string, err error) *Fault {
	return errors.NewNetworkFault(method, url, err)
}

// IsClientFault reports whether err is a 4xx fault.
func IsClientFault(err error) bool { return errors.IsClientFault(err) }

// IsServerFault reports whether err is a 5xx fault.
func IsServerFault(err error) bool { return errors.IsServerFault(err) }

// IsTransportFault reports whether err is a fault with no usable response.
func IsTransportFault(err error) bool { return errors.IsTransportFault(err) }
