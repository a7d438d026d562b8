package client

import (
	"context"
	"net/http"
	"time"

	"github.com/sudipta/vrio-go/client/internal/api"
	"github.com/sudipta/vrio-go/client/internal/transport"
	"github.com/sudipta/vrio-go/client/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the Vrio API. Every operation returns a Result and never
// an error; see Result for the envelope shapes.
//
// A Client holds only immutable configuration and may be shared by any
// number of goroutines.
type Client struct {
	cfg       Config
	http      *http.Client
	transport Transport
}

// New constructs a Client from cfg. The base URL is normalized to end in a
// single slash. Unless WithTransport is given, requests go through the
// built-in resty transport with the Accept, Content-Type and X-Api-Key
// headers set.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}

	// Auto-enable debug via env variable without changing code.
	if cfg.Debug || debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.transport == nil {
		c.transport = transport.New(c.cfg.BaseURL, c.cfg.APIKey, c.http)
	}
	return c, nil
}

// NewFromEnv is New(ConfigFromEnv(), opts...).
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// BaseURL returns the normalized base URL, always ending in "/".
func (c *Client) BaseURL() string { return c.cfg.BaseURL }

// Do sends an arbitrary request through the same primitive the typed
// operations use. payload may be nil for requests without a body; anything
// else is JSON-encoded, so a string is sent as a JSON string. Pass a
// json.RawMessage to send pre-encoded JSON.
func (c *Client) Do(ctx context.Context, method, path string, payload any, opts ...RequestOption) Result {
	return c.observe("do", opts, func(o types.RequestOptions) Result {
		o.JSON = payload
		return api.Request(ctx, c.transport, method, path, o)
	})
}

// --------------------------------------------------------------------
// Customer operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateCustomer creates a customer from payload.
func (c *Client) CreateCustomer(ctx context.Context, payload any, opts ...RequestOption) Result {
	return c.observe("create_customer", opts, func(o types.RequestOptions) Result {
		return api.CreateCustomer(ctx, c.transport, payload, o)
	})
}

// GetCustomer retrieves a customer by id.
func (c *Client) GetCustomer(ctx context.Context, customerID int64, opts ...RequestOption) Result {
	return c.observe("get_customer", opts, func(o types.RequestOptions) Result {
		return api.GetCustomer(ctx, c.transport, customerID, o)
	})
}

// --------------------------------------------------------------------
// Card operations - delegated to internal/api
// --------------------------------------------------------------------

// AddCard attaches a card to the customer.
func (c *Client) AddCard(ctx context.Context, customerID int64, payload any, opts ...RequestOption) Result {
	return c.observe("add_card", opts, func(o types.RequestOptions) Result {
		return api.AddCard(ctx, c.transport, customerID, payload, o)
	})
}

// ListCards lists the customer's cards.
func (c *Client) ListCards(ctx context.Context, customerID int64, opts ...RequestOption) Result {
	return c.observe("list_cards", opts, func(o types.RequestOptions) Result {
		return api.ListCards(ctx, c.transport, customerID, o)
	})
}

// --------------------------------------------------------------------
// Order operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateOrder creates an order from payload.
func (c *Client) CreateOrder(ctx context.Context, payload any, opts ...RequestOption) Result {
	return c.observe("create_order", opts, func(o types.RequestOptions) Result {
		return api.CreateOrder(ctx, c.transport, payload, o)
	})
}

// GetOrder retrieves an order by id.
func (c *Client) GetOrder(ctx context.Context, orderID int64, opts ...RequestOption) Result {
	return c.observe("get_order", opts, func(o types.RequestOptions) Result {
		return api.GetOrder(ctx, c.transport, orderID, o)
	})
}

// observe builds the per-call options, runs fn and records metrics.
func (c *Client) observe(operation string, opts []RequestOption, fn func(types.RequestOptions) Result) Result {
	start := time.Now()
	res := fn(types.BuildOptions(types.RequestOptions{}, opts...))
	recordResult(operation, res, time.Since(start))
	return res
}
