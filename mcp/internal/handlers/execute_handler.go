package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/archway-network/cosmwasm-mcp-template/contract"
)

// ExecuteHandler exposes the list_tx_entry_points and build_execute_msg tools.
type ExecuteHandler struct {
	builder *contract.Builder
}

func NewExecuteHandler(b *contract.Builder) *ExecuteHandler {
	return &ExecuteHandler{builder: b}
}

// RegisterTools registers the execute tools.
func (eh *ExecuteHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_tx_entry_points",
		mcp.WithDescription(listTxEntryPointsDescription),
	)
	s.AddTool(listTool, eh.handleListEntryPoints)

	buildTool := mcp.NewTool("build_execute_msg",
		mcp.WithDescription(buildExecuteMsgDescription),
		mcp.WithString("contract_addr", mcp.Required(), mcp.Description("Address of a deployed instance of the contract")),
		mcp.WithObject("execute_msg", mcp.Required(), mcp.Description(`A single ExecuteMsg variant, e.g. {"transfer":{"recipient":"archway1...","amount":"100"}}`)),
		mcp.WithString("payment", mcp.Description(`Native funds to attach, as a whole number of the deployment's denom, e.g. "1000" or "1000aarch". Omit or use "0" for none.`)),
	)
	s.AddTool(buildTool, eh.handleBuildExecute)
	return nil
}

func (eh *ExecuteHandler) handleListEntryPoints(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Ctx(ctx).Debug().Msg("list_tx_entry_points invoked")
	return jsonResult(eh.builder.ExecuteSchema())
}

func (eh *ExecuteHandler) handleBuildExecute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	addr, err := req.RequireString("contract_addr")
	if err != nil {
		return argumentError("contract_addr: %v", err), nil
	}
	payload, err := rawArgument(req, "execute_msg")
	if err != nil {
		return argumentError("%v", err), nil
	}
	payment, err := paymentArgument(req.GetArguments()["payment"])
	if err != nil {
		return argumentError("%v", err), nil
	}

	log.Ctx(ctx).Debug().
		Str("contract_addr", addr).
		RawJSON("execute_msg", jsonOrNull(payload)).
		Str("payment", payment).
		Msg("build_execute_msg invoked")

	res, err := eh.builder.BuildExecute(addr, payload, payment)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(res)
}

// paymentArgument normalizes the payment argument to the string form
// understood by the funds parser.
func paymentArgument(v any) (string, error) {
	switch p := v.(type) {
	case nil:
		return "", nil
	case string:
		return p, nil
	case json.Number:
		return p.String(), nil
	case float64:
		if _, inexact := inexactNumber(p, ""); inexact {
			return "", fmt.Errorf("payment is too large to be represented exactly as a number; pass it as a string, e.g. %q", strconv.FormatFloat(p, 'f', -1, 64))
		}
		return strconv.FormatFloat(p, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(p), nil
	case int64:
		return strconv.FormatInt(p, 10), nil
	default:
		return "", fmt.Errorf("payment must be a string or a number")
	}
}

// jsonOrNull keeps malformed payloads from corrupting the log line.
func jsonOrNull(b json.RawMessage) []byte {
	if json.Valid(b) {
		return b
	}
	return []byte("null")
}
