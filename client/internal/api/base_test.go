package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudipta/vrio-go/client/internal/errors"
	"github.com/sudipta/vrio-go/client/internal/transport"
	"github.com/sudipta/vrio-go/client/internal/types"
)

func clientFault(status int, body string) *mockTransport {
	resp := &types.Response{StatusCode: status, Body: []byte(body)}
	return &mockTransport{resp: resp, err: errors.NewHTTPFault(http.MethodPost, "https://api.example.com/v1/x", resp)}
}

func TestRequest_SuccessWithJSON(t *testing.T) {
	t.Parallel()
	tr := ok(200, `{"id":42,"name":"Ann"}`)
	res := Request(context.Background(), tr, http.MethodGet, "customers/42", types.RequestOptions{})

	assert.True(t, res.Success)
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, map[string]any{"id": json.Number("42"), "name": "Ann"}, res.Body)
	assert.Empty(t, res.Fault)
}

func TestRequest_SuccessWithoutJSON(t *testing.T) {
	t.Parallel()
	for _, body := range []string{"", "   ", "<html>oops</html>", `{"id":1} trailing`, `{"id":`} {
		res := Request(context.Background(), ok(200, body), http.MethodGet, "orders/1", types.RequestOptions{})
		assert.True(t, res.Success, "body %q", body)
		assert.Equal(t, 200, res.Code)
		assert.Nil(t, res.Body, "body %q", body)
	}
}

func TestRequest_SuccessArrayAndScalarBodies(t *testing.T) {
	t.Parallel()
	res := Request(context.Background(), ok(200, `[{"id":1},{"id":2}]`), http.MethodGet, "customers/1/cards", types.RequestOptions{})
	require.True(t, res.Success)
	assert.Len(t, res.Body, 2)

	res = Request(context.Background(), ok(201, `"created"`), http.MethodPost, "orders", types.RequestOptions{})
	assert.Equal(t, "created", res.Body)
}

func TestRequest_LargeIDsKeepPrecision(t *testing.T) {
	t.Parallel()
	res := Request(context.Background(), ok(200, `{"id":9007199254740993}`), http.MethodGet, "orders/1", types.RequestOptions{})
	body := res.Body.(map[string]any)
	assert.Equal(t, json.Number("9007199254740993"), body["id"])
}

func TestRequest_ClientFaultWithStructuredError(t *testing.T) {
	t.Parallel()
	res := Request(context.Background(), clientFault(422, `{"error":{"message":"Invalid card"}}`), http.MethodPost, "customers/42/cards", types.RequestOptions{})

	assert.False(t, res.Success)
	assert.Equal(t, 422, res.Code)
	assert.Equal(t, map[string]any{"message": "Invalid card"}, res.Error)
	assert.Equal(t, "Invalid card", res.Message)
	assert.Equal(t, types.FaultClient, res.Fault)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"code":422,"error":{"message":"Invalid card"},"message":"Invalid card"}`, string(raw))
}

func TestRequest_ClientFaultWithoutBody(t *testing.T) {
	t.Parallel()
	tr := clientFault(404, "")
	res := Request(context.Background(), tr, http.MethodGet, "customers/9", types.RequestOptions{})

	assert.False(t, res.Success)
	assert.Equal(t, 404, res.Code)
	assert.Nil(t, res.Error)
	assert.Equal(t, tr.err.Error(), res.Message)
}

func TestRequest_ClientFaultDegradedBodies(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		body      string
		wantError any
	}{
		{"not json", "Bad Request", nil},
		{"no error member", `{"detail":"x"}`, nil},
		{"error is a string", `{"error":"denied"}`, "denied"},
		{"error without message", `{"error":{"code":"E1"}}`, map[string]any{"code": "E1"}},
		{"message not a string", `{"error":{"message":7}}`, map[string]any{"message": json.Number("7")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := clientFault(400, tc.body)
			res := Request(context.Background(), tr, http.MethodPost, "orders", types.RequestOptions{})
			assert.Equal(t, 400, res.Code)
			assert.Equal(t, tc.wantError, res.Error)
			assert.Equal(t, tr.err.Error(), res.Message)
		})
	}
}

func TestRequest_ClientFaultWithoutResponse(t *testing.T) {
	t.Parallel()
	tr := &mockTransport{err: &errors.Fault{Kind: types.FaultClient, Code: 418, Message: "generic"}}
	res := Request(context.Background(), tr, http.MethodGet, "orders/1", types.RequestOptions{})
	assert.Equal(t, 0, res.Code)
	assert.Nil(t, res.Error)
	assert.Equal(t, "generic", res.Message)
}

func TestRequest_ServerFaultIgnoresBody(t *testing.T) {
	t.Parallel()
	resp := &types.Response{StatusCode: 500, Body: []byte(`{"error":{"message":"should not surface"}}`)}
	f := errors.NewHTTPFault(http.MethodGet, "u", resp)
	res := Request(context.Background(), &mockTransport{resp: resp, err: f}, http.MethodGet, "orders/1", types.RequestOptions{})

	assert.False(t, res.Success)
	assert.Equal(t, 500, res.Code)
	assert.Equal(t, f.Error(), res.Message)
	assert.Nil(t, res.Error)
	assert.Equal(t, types.FaultServer, res.Fault)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, "error")
}

func TestRequest_TransportFaults(t *testing.T) {
	t.Parallel()
	netErr := errors.NewNetworkFault(http.MethodGet, "u", fmt.Errorf("connection refused"))
	res := Request(context.Background(), &mockTransport{err: netErr}, http.MethodGet, "orders/1", types.RequestOptions{})
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, netErr.Error(), res.Message)
	assert.Equal(t, types.FaultTransport, res.Fault)

	res = Request(context.Background(), &mockTransport{err: fmt.Errorf("plain")}, http.MethodGet, "orders/1", types.RequestOptions{})
	assert.Equal(t, types.FaultTransport, res.Fault)
	assert.Equal(t, "plain", res.Message)

	res = Request(context.Background(), &mockTransport{}, http.MethodGet, "orders/1", types.RequestOptions{})
	assert.False(t, res.Success)
	assert.Equal(t, types.FaultTransport, res.Fault)
}

func TestRequest_StripsLeadingSlashes(t *testing.T) {
	t.Parallel()
	tr := ok(200, "{}")
	Request(context.Background(), tr, http.MethodGet, "//orders/5", types.RequestOptions{})
	assert.Equal(t, "orders/5", tr.last().path)
}

type captureRT struct{ urls []string }

func (c *captureRT) RoundTrip(r *http.Request) (*http.Response, error) {
	c.urls = append(c.urls, r.URL.String())
	return &http.Response{StatusCode: 201, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
}

func TestRequest_URLConstructionAgainstBaseURL(t *testing.T) {
	t.Parallel()
	rt := &captureRT{}
	tr := transport.New("https://api.example.com/v1/", "k", &http.Client{Transport: rt})

	CreateOrder(context.Background(), tr, map[string]any{"sku": "A"}, types.RequestOptions{})
	Request(context.Background(), tr, http.MethodPost, "/orders", types.RequestOptions{})

	require.Len(t, rt.urls, 2)
	for _, u := range rt.urls {
		assert.Equal(t, "https://api.example.com/v1/orders", u)
	}
}
