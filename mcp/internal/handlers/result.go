package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/sudipta/vrio-go/client"
)

// toolResult wraps the envelope as tool output. Failed envelopes are still
// returned in full, flagged as tool errors.
func toolResult(tool string, res client.Result, elapsed time.Duration) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(res)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode %s result: %v", tool, err)), nil
	}
	if !res.Success {
		log.Warn().
			Str("tool", tool).
			Int("code", res.Code).
			Str("fault", string(res.Fault)).
			Dur("elapsed", elapsed).
			Msg(res.Message)
		return mcp.NewToolResultError(string(b)), nil
	}
	log.Debug().Str("tool", tool).Int("code", res.Code).Dur("elapsed", elapsed).Msg("tool call succeeded")
	return mcp.NewToolResultText(string(b)), nil
}

// idArg reads an integer identifier. MCP hosts send numbers as float64 but
// some send numeric strings.
func idArg(req mcp.CallToolRequest, name string) (int64, error) {
	switch v := req.GetArguments()[name].(type) {
	case float64:
		if v != math.Trunc(v) || v >= 1<<63 || v < -(1<<63) {
			return 0, fmt.Errorf("%s must be an integer", name)
		}
		return int64(v), nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", name)
		}
		return id, nil
	case nil:
		return 0, fmt.Errorf("%s is required", name)
	default:
		return 0, fmt.Errorf("%s must be an integer", name)
	}
}

// payloadArg reads a JSON object argument.
func payloadArg(req mcp.CallToolRequest, name string) (map[string]any, error) {
	v, ok := req.GetArguments()[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("%s is required", name)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a JSON object", name)
	}
	return obj, nil
}
