// Package mcp serves the Vrio operations as MCP tools over stdio or
// Streamable HTTP.
package mcp

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/sudipta/vrio-go/client"
	"github.com/sudipta/vrio-go/internal/config"
	"github.com/sudipta/vrio-go/mcp/internal/handlers"
)

// VrioAPI is the client surface the tools are built on.
type VrioAPI interface {
	handlers.CustomerAPI
	handlers.CardAPI
	handlers.OrderAPI
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) error {
	if err := handler.RegisterTools(s); err != nil {
		log.Error().Err(err).Msgf("Failed to register %s tools", name)
		return err
	}
	return nil
}

// NewServer builds an MCP server exposing every Vrio operation as a tool.
func NewServer(name, version string, api VrioAPI) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	if err := registerHandler(s, handlers.NewCustomerHandler(api), "customer"); err != nil {
		return nil, err
	}
	if err := registerHandler(s, handlers.NewCardHandler(api), "card"); err != nil {
		return nil, err
	}
	if err := registerHandler(s, handlers.NewOrderHandler(api), "order"); err != nil {
		return nil, err
	}
	return s, nil
}

// RunMCPServer loads configuration from the environment (and .env), builds
// the Vrio client and serves until interrupted.
func RunMCPServer() error {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	vrioCfg, err := client.ConfigFromEnv()
	if err != nil {
		return err
	}
	cfg.Init(vrioCfg)

	vrio, err := client.New(vrioCfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}
	log.Info().Str("base_url", vrio.BaseURL()).Msg("Client created successfully")

	s, err := NewServer(cfg.ServerName, cfg.ServerVersion, vrio)
	if err != nil {
		return err
	}

	if shouldUseStdio() {
		log.Info().Msg("Starting Vrio MCP server (stdio transport)")
		return server.ServeStdio(s)
	}
	return serveHTTP(s, cfg)
}

func serveHTTP(s *server.MCPServer, cfg *config.Config) error {
	log.Info().Str("addr", cfg.ListenAddr).Msg("Starting Vrio MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      streamSrv,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // SSE streams stay open
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig, ok := <-sigChan
		if !ok {
			return
		}
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("HTTP server error")
		return err
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio picks the transport: MCP_STDIO / MCP_HTTP force one,
// otherwise stdio is used when stdin is not a terminal.
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
