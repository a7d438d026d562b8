package api

import (
	"context"
	"sync"

	"github.com/sudipta/vrio-go/client/internal/types"
)

type call struct {
	method string
	path   string
	opts   types.RequestOptions
}

// mockTransport records every call and replays a canned response or error.
type mockTransport struct {
	mu    sync.Mutex
	calls []call
	resp  *types.Response
	err   error
}

func (m *mockTransport) Do(_ context.Context, method, path string, opts types.RequestOptions) (*types.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, call{method: method, path: path, opts: opts})
	m.mu.Unlock()
	return m.resp, m.err
}

func (m *mockTransport) last() call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[len(m.calls)-1]
}

func ok(status int, body string) *mockTransport {
	return &mockTransport{resp: &types.Response{StatusCode: status, Body: []byte(body)}}
}
