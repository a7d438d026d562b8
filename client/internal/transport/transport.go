// Package transport is the resty-backed HTTP transport used by the client.
// It owns the base URL and the fixed headers, and raises a *errors.Fault for
// every 4xx, 5xx or network failure.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sudipta/vrio-go/client/internal/errors"
	"github.com/sudipta/vrio-go/client/internal/types"
)

const (
	HeaderAPIKey    = "X-Api-Key"
	HeaderRequestID = "X-Request-Id"

	defaultTimeout = 30 * time.Second
)

// HTTP implements types.Transport on top of a resty client.
type HTTP struct {
	baseURL string
	rc      *resty.Client
}

// New builds a transport for baseURL, which must already end in exactly one
// slash. A nil hc gets a plain http.Client with a 30s timeout.
func New(baseURL, apiKey string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	rc := resty.NewWithClient(hc).
		SetLogger(restyLogger{}).
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
			HeaderAPIKey:   apiKey,
		})
	return &HTTP{baseURL: baseURL, rc: rc}
}

// BaseURL returns the normalized base URL requests are resolved against.
func (t *HTTP) BaseURL() string { return t.baseURL }

// Do issues a single request. Per-call headers win over the configured ones.
func (t *HTTP) Do(ctx context.Context, method, path string, opts types.RequestOptions) (*types.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	url := t.baseURL + strings.TrimLeft(path, "/")
	req := t.rc.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, uuid.NewString())
	if len(opts.Headers) > 0 {
		req.SetHeaders(opts.Headers)
	}
	if len(opts.Query) > 0 {
		req.SetQueryParamsFromValues(opts.Query)
	}
	if opts.JSON != nil {
		body, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, errors.NewNetworkFault(method, url, fmt.Errorf("encode request body: %w", err))
		}
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, errors.NewNetworkFault(method, url, err)
	}

	out := &types.Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
	if errors.KindForStatus(out.StatusCode) != "" {
		return out, errors.NewHTTPFault(method, url, out)
	}
	return out, nil
}

// restyLogger routes resty's internal messages through zerolog.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) { log.Error().Msgf(format, v...) }
func (restyLogger) Warnf(format string, v ...interface{})  { log.Warn().Msgf(format, v...) }
func (restyLogger) Debugf(format string, v ...interface{}) { log.Debug().Msgf(format, v...) }
