package mcp

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/archway-network/cosmwasm-mcp-template/contract"
	"github.com/archway-network/cosmwasm-mcp-template/mcp/internal/handlers"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) error {
	if err := handler.RegisterTools(s); err != nil {
		return fmt.Errorf("register %s tools: %w", name, err)
	}
	return nil
}

// newServer builds the MCP server with every contract tool registered.
func newServer(cfg *config, b *contract.Builder) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
		server.WithInstructions(handlers.Instructions),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(instrumentTools),
	)

	for _, h := range []struct {
		name    string
		handler toolRegisterer
	}{
		{"deployment", handlers.NewDeploymentHandler(b)},
		{"query", handlers.NewQueryHandler(b)},
		{"execute", handlers.NewExecuteHandler(b)},
	} {
		if err := registerHandler(s, h.handler, h.name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// RunMCPServer loads configuration, builds the contract registries and serves
// the tools until the transport stops or a shutdown signal arrives.
func RunMCPServer() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	cfg.initLogger()

	// Registries are loaded once; a bad table stops the process before serving.
	builder, err := contract.New(contract.WithDeploymentsFile(cfg.DeploymentsFile))
	if err != nil {
		log.Error().Stack().Err(err).Str("deployments_file", cfg.DeploymentsFile).Msg("Failed to load contract registries")
		return err
	}
	log.Info().
		Int("deployments", len(builder.Deployments())).
		Int("query_variants", len(builder.QuerySchema().Variants())).
		Int("execute_variants", len(builder.ExecuteSchema().Variants())).
		Msg("Contract registries loaded")

	s, err := newServer(cfg, builder)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to build MCP server")
		return err
	}

	mode := resolveTransport(cfg.Transport)
	if mode == transportStdio {
		log.Info().Msg("Starting CosmWasm MCP server (stdio transport)")
		return server.ServeStdio(s)
	}
	return serveHTTP(cfg, s, builder, mode)
}
