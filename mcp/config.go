package mcp

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/archway-network/cosmwasm-mcp-template/internal/logger"
)

const envPrefix = "CW_MCP"

// Transport modes.
const (
	transportAuto  = "auto"
	transportStdio = "stdio"
	transportSSE   = "sse"
	transportHTTP  = "http"
)

// config holds all settings for the MCP server.
// Environment variables are parsed with the CW_MCP_ prefix, then flags override them.
type config struct {
	Transport       string        `envconfig:"TRANSPORT" default:"auto"`
	BindAddress     string        `envconfig:"BIND_ADDRESS" default:"127.0.0.1:8000"`
	RawLogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	ServerName      string        `envconfig:"SERVER_NAME" default:"cosmwasm-mcp-server"`
	ServerVersion   string        `envconfig:"SERVER_VERSION" default:"0.1.0"`
	DeploymentsFile string        `envconfig:"DEPLOYMENTS_FILE" default:""`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`

	LogLevel zerolog.Level `ignored:"true"`
}

// loadConfig loads configuration from environment variables and args.
func loadConfig(args []string) (*config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	// Command line flags (will override env vars)
	fs := flag.NewFlagSet("cw-mcp-server", flag.ContinueOnError)
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport: auto|stdio|sse|http")
	fs.StringVar(&cfg.BindAddress, "bind", cfg.BindAddress, "Listen address for the sse and http transports")
	fs.StringVar(&cfg.RawLogLevel, "log-level", cfg.RawLogLevel, "Log level: debug|info|warn|error")
	fs.StringVar(&cfg.DeploymentsFile, "deployments", cfg.DeploymentsFile, "YAML deployment table replacing the compiled-in one")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	switch cfg.Transport {
	case transportAuto, transportStdio, transportSSE, transportHTTP:
	default:
		return nil, fmt.Errorf("unsupported transport %q (want auto, stdio, sse or http)", cfg.Transport)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("shutdown timeout must be > 0")
	}
	cfg.LogLevel = parseLogLevel(cfg.RawLogLevel)

	return &cfg, nil
}

// initLogger initializes the global logger with the configured level.
// Logs always go to stderr: in stdio mode stdout carries the protocol.
func (c *config) initLogger() {
	zerolog.SetGlobalLevel(c.LogLevel)
	log.Logger = logger.New(c.ServerName, os.Stderr).With().Caller().Logger()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
