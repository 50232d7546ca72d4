package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/archway-network/cosmwasm-mcp-template/contract"
)

// QueryHandler exposes the list_query_entry_points and build_query_msg tools.
type QueryHandler struct {
	builder *contract.Builder
}

func NewQueryHandler(b *contract.Builder) *QueryHandler {
	return &QueryHandler{builder: b}
}

// RegisterTools registers the query tools.
func (qh *QueryHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_query_entry_points",
		mcp.WithDescription(listQueryEntryPointsDescription),
	)
	s.AddTool(listTool, qh.handleListEntryPoints)

	buildTool := mcp.NewTool("build_query_msg",
		mcp.WithDescription(buildQueryMsgDescription),
		mcp.WithString("contract_addr", mcp.Required(), mcp.Description("Address of a deployed instance of the contract")),
		mcp.WithObject("query_msg", mcp.Required(), mcp.Description(`A single QueryMsg variant, e.g. {"balance":{"address":"archway1..."}}`)),
	)
	s.AddTool(buildTool, qh.handleBuildQuery)
	return nil
}

func (qh *QueryHandler) handleListEntryPoints(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Ctx(ctx).Debug().Msg("list_query_entry_points invoked")
	return jsonResult(qh.builder.QuerySchema())
}

func (qh *QueryHandler) handleBuildQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	addr, err := req.RequireString("contract_addr")
	if err != nil {
		return argumentError("contract_addr: %v", err), nil
	}
	payload, err := rawArgument(req, "query_msg")
	if err != nil {
		return argumentError("%v", err), nil
	}

	log.Ctx(ctx).Debug().Str("contract_addr", addr).RawJSON("query_msg", jsonOrNull(payload)).Msg("build_query_msg invoked")

	res, err := qh.builder.BuildQuery(addr, payload)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(res)
}
