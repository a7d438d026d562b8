package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/sudipta/vrio-go/client"
)

// CardAPI is the slice of the SDK the card tools need.
type CardAPI interface {
	AddCard(ctx context.Context, customerID int64, payload any, opts ...client.RequestOption) client.Result
	ListCards(ctx context.Context, customerID int64, opts ...client.RequestOption) client.Result
}

// CardHandler exposes card tools. Cards are always scoped to a customer.
type CardHandler struct {
	api CardAPI
}

func NewCardHandler(api CardAPI) *CardHandler { return &CardHandler{api: api} }

func (h *CardHandler) RegisterTools(s *server.MCPServer) error {
	add := mcp.NewTool("add_card",
		mcp.WithDescription("Attach a card to a Vrio customer"),
		mcp.WithNumber("customer_id", mcp.Required(), mcp.Description("Customer id")),
		mcp.WithObject("payload", mcp.Required(), mcp.Description("Card fields as a JSON object")),
	)
	list := mcp.NewTool("list_cards",
		mcp.WithDescription("List the cards on file for a Vrio customer"),
		mcp.WithNumber("customer_id", mcp.Required(), mcp.Description("Customer id")),
	)
	s.AddTool(add, h.handleAddCard)
	s.AddTool(list, h.handleListCards)
	return nil
}

func (h *CardHandler) handleAddCard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArg(req, "customer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := payloadArg(req, "payload")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Card payloads are never logged.
	log.Debug().Int64("customer_id", id).Msg("add_card invoked")

	start := time.Now()
	res := h.api.AddCard(ctx, id, payload)
	return toolResult("add_card", res, time.Since(start))
}

func (h *CardHandler) handleListCards(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArg(req, "customer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Int64("customer_id", id).Msg("list_cards invoked")

	start := time.Now()
	res := h.api.ListCards(ctx, id)
	return toolResult("list_cards", res, time.Since(start))
}
