package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/api"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/setup/logger"
	"github.com/rs/zerolog"
)

func main() {
	// stdout carries the MCP protocol, so logs go to stderr
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load env
	_ = godotenv.Load()

	cfg := setup.LoadConfig()
	log := logger.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, cfg.LogLevel)

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &log)
	if err != nil {
		log.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	server := mcpadapter.NewServer(deps.Generator, api.Version)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			log.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		log.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}
