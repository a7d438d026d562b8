package client

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig prefix used by ConfigFromEnv.
const EnvPrefix = "VRIO"

// Config is the connection configuration for a Client. The Client keeps its
// own normalized copy, so later edits by the caller have no effect.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" required:"true"`
	APIKey  string        `envconfig:"API_KEY" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug   bool          `envconfig:"DEBUG" default:"false"`
}

// ConfigFromEnv reads VRIO_BASE_URL, VRIO_API_KEY, VRIO_TIMEOUT and VRIO_DEBUG.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing vrio config: %w", err)
	}
	return cfg, nil
}

// envOverlay mirrors Config without the required tags.
type envOverlay struct {
	BaseURL string        `envconfig:"BASE_URL"`
	APIKey  string        `envconfig:"API_KEY"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug   bool          `envconfig:"DEBUG" default:"false"`
}

// PartialConfigFromEnv reads the same variables as ConfigFromEnv but leaves
// absent ones empty, for callers that layer flags on top. Malformed values
// are still an error; Validate reports what is missing.
func PartialConfigFromEnv() (Config, error) {
	var o envOverlay
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return Config{}, fmt.Errorf("parsing vrio config: %w", err)
	}
	return Config(o), nil
}

// Validate reports the first problem that would stop a Client being built.
func (c Config) Validate() error {
	raw := strings.TrimSpace(c.BaseURL)
	if raw == "" {
		return fmt.Errorf("base url cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base url %q: scheme and host are required", c.BaseURL)
	}
	if c.APIKey == "" {
		return fmt.Errorf("api key cannot be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0")
	}
	return nil
}

// NormalizeBaseURL strips every trailing slash and appends exactly one, so
// the base URL is always the sole separator before a request path.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/") + "/"
}
