package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"DEBUG": zerolog.DebugLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"info":  zerolog.InfoLevel,
		"bogus": zerolog.InfoLevel,
		"":      zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "vrio-mcp-server", cfg.ServerName)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MCP_LISTEN_ADDR", ":9999")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, ":9999", cfg.ListenAddr)
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("VRIO_TEST_FROM_FILE=file\nVRIO_TEST_PRESET=file\n"), 0o600))

	t.Setenv("VRIO_TEST_PRESET", "env")
	t.Setenv("VRIO_TEST_FROM_FILE", "")
	_ = os.Unsetenv("VRIO_TEST_FROM_FILE")

	LoadDotEnv(path, filepath.Join(dir, "missing.env"))
	assert.Equal(t, "file", os.Getenv("VRIO_TEST_FROM_FILE"))
	assert.Equal(t, "env", os.Getenv("VRIO_TEST_PRESET"))
}
