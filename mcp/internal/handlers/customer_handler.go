package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/sudipta/vrio-go/client"
)

// CustomerAPI is the slice of the SDK the customer tools need.
type CustomerAPI interface {
	CreateCustomer(ctx context.Context, payload any, opts ...client.RequestOption) client.Result
	GetCustomer(ctx context.Context, customerID int64, opts ...client.RequestOption) client.Result
}

// CustomerHandler exposes customer tools.
type CustomerHandler struct {
	api CustomerAPI
}

func NewCustomerHandler(api CustomerAPI) *CustomerHandler { return &CustomerHandler{api: api} }

func (ch *CustomerHandler) RegisterTools(s *server.MCPServer) error {
	create := mcp.NewTool("create_customer",
		mcp.WithDescription("Create a Vrio customer; returns the API envelope with the created customer"),
		mcp.WithObject("payload", mcp.Required(), mcp.Description("Customer fields as a JSON object")),
	)
	get := mcp.NewTool("get_customer",
		mcp.WithDescription("Fetch a Vrio customer by id"),
		mcp.WithNumber("customer_id", mcp.Required(), mcp.Description("Customer id")),
	)
	s.AddTool(create, ch.handleCreateCustomer)
	s.AddTool(get, ch.handleGetCustomer)
	return nil
}

func (ch *CustomerHandler) handleCreateCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := payloadArg(req, "payload")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Int("fields", len(payload)).Msg("create_customer invoked")

	start := time.Now()
	res := ch.api.CreateCustomer(ctx, payload)
	return toolResult("create_customer", res, time.Since(start))
}

func (ch *CustomerHandler) handleGetCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArg(req, "customer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Int64("customer_id", id).Msg("get_customer invoked")

	start := time.Now()
	res := ch.api.GetCustomer(ctx, id)
	return toolResult("get_customer", res, time.Since(start))
}
