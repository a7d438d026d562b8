package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sudipta/vrio-go/client/internal/types"
)

// Cards always live under their customer.

// AddCard attaches a card described by payload to the customer.
func AddCard(ctx context.Context, t types.Transport, customerID int64, payload any, opts types.RequestOptions) types.Result {
	opts.JSON = payload
	return Request(ctx, t, http.MethodPost, cardsPath(customerID), opts)
}

// ListCards returns the cards on file for the customer.
func ListCards(ctx context.Context, t types.Transport, customerID int64, opts types.RequestOptions) types.Result {
	return Request(ctx, t, http.MethodGet, cardsPath(customerID), opts)
}

func cardsPath(customerID int64) string {
	return fmt.Sprintf("customers/%d/cards", customerID)
}
