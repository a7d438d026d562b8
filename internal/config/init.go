package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sudipta/vrio-go/client"
)

// Config holds process-level settings shared by the binaries. The Vrio
// connection itself is client.Config.
type Config struct {
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ServerName      string        `envconfig:"MCP_SERVER_NAME" default:"vrio-mcp-server"`
	ServerVersion   string        `envconfig:"MCP_SERVER_VERSION" default:"0.1.0"`
	ListenAddr      string        `envconfig:"MCP_LISTEN_ADDR" default:":11546"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
}

// LoadDotEnv loads the given .env files (default ".env") if they exist.
// Variables already present in the environment are never overwritten.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err == nil {
			log.Debug().Str("file", f).Msg("loaded env file")
		}
	}
}

// Load reads process settings from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	return ParseLogLevel(c.LogLevel)
}

// Init configures logging and logs the effective settings.
func (c *Config) Init(vrio client.Config) {
	InitLogger(nil)
	SetLogLevel(c.Level())

	log.Info().
		Str("base_url", vrio.BaseURL).
		Bool("api_key_set", vrio.APIKey != "").
		Str("log_level", c.Level().String()).
		Msg("Application configuration loaded")
}
