package types

import (
	"encoding/json"
	"errors"
)

// ------------------------------
// Result Envelope
// ------------------------------

// FaultKind names the class of transport fault that produced a failed Result.
type FaultKind string

const (
	// FaultClient is a 4xx response; the body is expected to carry a structured error.
	FaultClient FaultKind = "client"
	// FaultServer is a 5xx response; the body is never parsed.
	FaultServer FaultKind = "server"
	// FaultTransport covers everything else: DNS, connect, timeout, cancellation.
	FaultTransport FaultKind = "transport"
)

// ErrEmptyBody is returned by Result.Decode when there is nothing to decode.
var ErrEmptyBody = errors.New("result has no body")

// Result is the uniform value returned by every client operation.
//
// On success Body holds the parsed JSON (nil when the body was empty or not
// JSON). On failure Fault says which class of fault occurred, Message is
// human readable and, for client faults only, Error holds the nested "error"
// member of the response body.
type Result struct {
	Success bool
	Code    int
	Body    any
	Error   any
	Message string
	Fault   FaultKind

	// Raw is the undecoded success body.
	Raw []byte
}

// Decode unmarshals the raw success body into v.
func (r Result) Decode(v any) error {
	if len(r.Raw) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(r.Raw, v)
}

// MarshalJSON emits one of the three envelope shapes. Only client faults
// carry an "error" member, and it is present even when null.
func (r Result) MarshalJSON() ([]byte, error) {
	switch {
	case r.Success:
		return json.Marshal(struct {
			Success bool `json:"success"`
			Code    int  `json:"code"`
			Body    any  `json:"body"`
		}{true, r.Code, r.Body})
	case r.Fault == FaultClient:
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Code    int    `json:"code"`
			Error   any    `json:"error"`
			Message string `json:"message"`
		}{false, r.Code, r.Error, r.Message})
	default:
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Code    int    `json:"code"`
			Message string `json:"message"`
		}{false, r.Code, r.Message})
	}
}
