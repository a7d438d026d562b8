package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sudipta/vrio-go/client/internal/types"
)

// CreateOrder posts payload to orders.
func CreateOrder(ctx context.Context, t types.Transport, payload any, opts types.RequestOptions) types.Result {
	opts.JSON = payload
	return Request(ctx, t, http.MethodPost, "orders", opts)
}

// GetOrder fetches a single order by id.
func GetOrder(ctx context.Context, t types.Transport, orderID int64, opts types.RequestOptions) types.Result {
	return Request(ctx, t, http.MethodGet, fmt.Sprintf("orders/%d", orderID), opts)
}
