package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sudipta/vrio-go/client/internal/errors"
	"github.com/sudipta/vrio-go/client/internal/types"
)

// Request is the single primitive every endpoint goes through. It never
// returns an error: success, client, server and transport faults all become
// a types.Result.
func Request(ctx context.Context, t types.Transport, method, path string, opts types.RequestOptions) types.Result {
	path = strings.TrimLeft(path, "/")

	resp, err := t.Do(ctx, method, path, opts)
	if err != nil {
		return fromError(method, path, err)
	}
	if resp == nil {
		return types.Result{Fault: types.FaultTransport, Message: "transport returned no response"}
	}

	body, ok := decodeJSON(resp.Body)
	if !ok && len(resp.Body) > 0 {
		log.Debug().Str("method", method).Str("path", path).Int("status_code", resp.StatusCode).Msg("response body is not JSON; body set to null")
	}
	return types.Result{
		Success: true,
		Code:    resp.StatusCode,
		Body:    body,
		Raw:     resp.Body,
	}
}

func fromError(method, path string, err error) types.Result {
	f, ok := errors.AsFault(err)
	if !ok {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("unclassified transport error")
		return types.Result{Fault: types.FaultTransport, Message: err.Error()}
	}

	switch f.Kind {
	case types.FaultClient:
		return fromClientFault(f)
	case types.FaultServer:
		return types.Result{Fault: types.FaultServer, Code: f.Code, Message: f.Error()}
	default:
		return types.Result{Fault: types.FaultTransport, Code: f.Code, Message: f.Error()}
	}
}

// fromClientFault pulls the nested "error" object, and its "message", out of
// a 4xx body. Anything missing falls back to the fault itself.
func fromClientFault(f *errors.Fault) types.Result {
	res := types.Result{Fault: types.FaultClient, Message: f.Error()}
	if f.Response == nil {
		return res
	}
	res.Code = f.Response.StatusCode

	parsed, _ := decodeJSON(f.Response.Body)
	obj, ok := parsed.(map[string]any)
	if !ok {
		return res
	}
	res.Error = obj["error"]
	if nested, ok := res.Error.(map[string]any); ok {
		if msg, ok := nested["message"].(string); ok {
			res.Message = msg
		}
	}
	return res
}

// decodeJSON parses a complete JSON document. Numbers stay json.Number so
// 64-bit identifiers are not rounded. ok is false for empty input, invalid
// JSON or trailing garbage.
func decodeJSON(b []byte) (v any, ok bool) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return v, true
}
