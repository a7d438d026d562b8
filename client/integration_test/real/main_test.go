//go:build integration
// +build integration

package client_test

import (
	"os"
	"testing"

	"github.com/sudipta/vrio-go/client"
)

// TestMain skips the live suite unless VRIO_BASE_URL and VRIO_API_KEY are set.
func TestMain(m *testing.M) {
	if os.Getenv("VRIO_BASE_URL") == "" || os.Getenv("VRIO_API_KEY") == "" {
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func liveClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	return c
}
