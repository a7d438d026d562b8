package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/sudipta/vrio-go/client"
)

// OrderAPI is the slice of the SDK the order tools need.
type OrderAPI interface {
	CreateOrder(ctx context.Context, payload any, opts ...client.RequestOption) client.Result
	GetOrder(ctx context.Context, orderID int64, opts ...client.RequestOption) client.Result
}

// OrderHandler exposes order tools.
type OrderHandler struct {
	api OrderAPI
}

func NewOrderHandler(api OrderAPI) *OrderHandler { return &OrderHandler{api: api} }

func (h *OrderHandler) RegisterTools(s *server.MCPServer) error {
	create := mcp.NewTool("create_order",
		mcp.WithDescription("Create a Vrio order"),
		mcp.WithObject("payload", mcp.Required(), mcp.Description("Order fields as a JSON object")),
	)
	get := mcp.NewTool("get_order",
		mcp.WithDescription("Fetch a Vrio order by id"),
		mcp.WithNumber("order_id", mcp.Required(), mcp.Description("Order id")),
	)
	s.AddTool(create, h.handleCreateOrder)
	s.AddTool(get, h.handleGetOrder)
	return nil
}

func (h *OrderHandler) handleCreateOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := payloadArg(req, "payload")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Int("fields", len(payload)).Msg("create_order invoked")

	start := time.Now()
	res := h.api.CreateOrder(ctx, payload)
	return toolResult("create_order", res, time.Since(start))
}

func (h *OrderHandler) handleGetOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArg(req, "order_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Int64("order_id", id).Msg("get_order invoked")

	start := time.Now()
	res := h.api.GetOrder(ctx, id)
	return toolResult("get_order", res, time.Since(start))
}
