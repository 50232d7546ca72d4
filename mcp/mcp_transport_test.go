//go:build integration
// +build integration

package mcp

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var expectedTools = []string{
	"list_contract_deployments",
	"list_query_entry_points",
	"build_query_msg",
	"list_tx_entry_points",
	"build_execute_msg",
}

func initialize(ctx context.Context, t *testing.T, c *client.Client) {
	t.Helper()
	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: "2024-11-05",
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "test-client",
				Version: "1.0.0",
			},
		},
	})
	require.NoError(t, err, "failed to initialize MCP client")
}

func exerciseTools(ctx context.Context, t *testing.T, c *client.Client) {
	t.Helper()

	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, expectedTools, names)

	req := mcp.CallToolRequest{}
	req.Params.Name = "build_execute_msg"
	req.Params.Arguments = map[string]any{
		"contract_addr": mainnetAddr,
		"execute_msg":   map[string]any{"transfer": map[string]any{"recipient": "addr1...", "amount": "100"}},
	}
	res, err := c.CallTool(ctx, req)
	require.NoError(t, err)
	require.False(t, res.IsError)
	text := res.Content[0].(mcp.TextContent).Text
	assert.Equal(t, `{"transfer":{"recipient":"addr1...","amount":"100"}}`, gjson.Get(text, "execute_msg").String())
}

// TestMCPServerTransports verifies that the tools are served over the
// in-process, streamable HTTP and SSE transports.
func TestMCPServerTransports(t *testing.T) {
	cfg, mcpServer, builder := newTestServer(t)

	t.Run("InProcessTransport", func(t *testing.T) {
		inProcessTransport := transport.NewInProcessTransport(mcpServer)
		require.NoError(t, inProcessTransport.Start(context.Background()))
		defer inProcessTransport.Close()

		mcpClient := client.NewClient(inProcessTransport)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		initialize(ctx, t, mcpClient)
		exerciseTools(ctx, t, mcpClient)
	})

	t.Run("HTTPTransport", func(t *testing.T) {
		router, shutdown := newRouter(cfg, mcpServer, builder, transportHTTP)
		defer func() { _ = shutdown(context.Background()) }()
		httpSrv := httptest.NewServer(router)
		defer httpSrv.Close()

		httpTransport, err := transport.NewStreamableHTTP(httpSrv.URL + "/mcp")
		require.NoError(t, err)
		require.NoError(t, httpTransport.Start(context.Background()))
		defer httpTransport.Close()

		mcpClient := client.NewClient(httpTransport)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		initialize(ctx, t, mcpClient)
		exerciseTools(ctx, t, mcpClient)
	})

	t.Run("SSETransport", func(t *testing.T) {
		router, shutdown := newRouter(cfg, mcpServer, builder, transportSSE)
		defer func() { _ = shutdown(context.Background()) }()
		httpSrv := httptest.NewServer(router)
		defer httpSrv.Close()

		mcpClient, err := client.NewSSEMCPClient(httpSrv.URL + "/sse")
		require.NoError(t, err)
		defer mcpClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, mcpClient.Start(ctx))

		initialize(ctx, t, mcpClient)
		exerciseTools(ctx, t, mcpClient)
	})
}
