package mcp

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/archway-network/cosmwasm-mcp-template/contract"
	"github.com/archway-network/cosmwasm-mcp-template/mcp/internal/httpx"
)

// resolveTransport maps "auto" to a concrete transport.
func resolveTransport(mode string) string {
	if mode != transportAuto {
		return mode
	}
	if shouldUseStdio() {
		return transportStdio
	}
	return transportHTTP
}

// shouldUseStdio reports whether stdin is not a terminal, i.e. the server was
// launched by another process.
func shouldUseStdio() bool {
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}

// newRouter mounts the MCP endpoints for mode next to /healthz and /metrics.
// The returned func shuts the MCP transport down.
func newRouter(cfg *config, s *server.MCPServer, b *contract.Builder, mode string) (*mux.Router, func(context.Context) error) {
	router := mux.NewRouter()
	router.Use(httpx.Recovery)

	router.HandleFunc("/healthz", healthHandler(cfg, b, mode)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	if mode == transportSSE {
		sseSrv := server.NewSSEServer(s)
		router.Handle("/sse", sseSrv.SSEHandler())
		router.Handle("/message", sseSrv.MessageHandler())
		return router, sseSrv.Shutdown
	}

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)
	router.Handle("/mcp", streamSrv)
	return router, streamSrv.Shutdown
}

func healthHandler(cfg *config, b *contract.Builder, mode string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":      "healthy",
			"server":      cfg.ServerName,
			"version":     cfg.ServerVersion,
			"transport":   mode,
			"deployments": len(b.Deployments()),
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// serveHTTP serves the sse or streamable http transport until SIGINT/SIGTERM.
func serveHTTP(cfg *config, s *server.MCPServer, b *contract.Builder, mode string) error {
	router, shutdownMCP := newRouter(cfg, s, b, mode)

	srv := &http.Server{
		Addr:         cfg.BindAddress,
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout, // Keep short for request parsing
		WriteTimeout: 0,                   // No deadline - required for SSE streaming
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	shutdownComplete := make(chan struct{})
	go func() {
		defer close(shutdownComplete)

		sig, ok := <-sigChan
		if !ok {
			return
		}
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down HTTP server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}

		log.Info().Msg("Shutting down MCP transport...")
		if err := shutdownMCP(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP transport shutdown")
		}
	}()

	log.Info().Str("transport", mode).Str("addr", cfg.BindAddress).Msg("Starting CosmWasm MCP server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("HTTP server error")
		return err
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}
