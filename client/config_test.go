package client

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("VRIO_BASE_URL", "https://api.vrio.example/v1")
	t.Setenv("VRIO_API_KEY", "secret")
	t.Setenv("VRIO_TIMEOUT", "5s")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://api.vrio.example/v1", cfg.BaseURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)

	c, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://api.vrio.example/v1/", c.BaseURL())
}

func TestConfigFromEnv_MissingRequired(t *testing.T) {
	// t.Setenv restores the original values; Unsetenv makes the keys absent.
	t.Setenv("VRIO_BASE_URL", "")
	t.Setenv("VRIO_API_KEY", "")
	_ = os.Unsetenv("VRIO_BASE_URL")
	_ = os.Unsetenv("VRIO_API_KEY")
	_, err := ConfigFromEnv()
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	cases := map[string]string{
		"https://a.example":      "https://a.example/",
		"https://a.example/":     "https://a.example/",
		"https://a.example/v1//": "https://a.example/v1/",
		" https://a.example/v1 ": "https://a.example/v1/",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeBaseURL(in), in)
	}
}

func TestPartialConfigFromEnv_KeepsWhatIsSet(t *testing.T) {
	t.Setenv("VRIO_BASE_URL", "https://api.vrio.example/v1")
	t.Setenv("VRIO_TIMEOUT", "7s")
	t.Setenv("VRIO_DEBUG", "true")
	t.Setenv("VRIO_API_KEY", "")
	_ = os.Unsetenv("VRIO_API_KEY")

	_, err := ConfigFromEnv()
	require.Error(t, err)

	cfg, err := PartialConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://api.vrio.example/v1", cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.ErrorContains(t, cfg.Validate(), "api key")
}
