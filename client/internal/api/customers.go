package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sudipta/vrio-go/client/internal/types"
)

// CreateCustomer posts payload to customers.
func CreateCustomer(ctx context.Context, t types.Transport, payload any, opts types.RequestOptions) types.Result {
	opts.JSON = payload
	return Request(ctx, t, http.MethodPost, "customers", opts)
}

// GetCustomer fetches a single customer by id.
func GetCustomer(ctx context.Context, t types.Transport, customerID int64, opts types.RequestOptions) types.Result {
	return Request(ctx, t, http.MethodGet, fmt.Sprintf("customers/%d", customerID), opts)
}
