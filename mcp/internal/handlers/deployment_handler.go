package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/archway-network/cosmwasm-mcp-template/contract"
	"github.com/archway-network/cosmwasm-mcp-template/contract/deployment"
)

// DeploymentHandler exposes the list_contract_deployments tool.
type DeploymentHandler struct {
	builder *contract.Builder
}

func NewDeploymentHandler(b *contract.Builder) *DeploymentHandler {
	return &DeploymentHandler{builder: b}
}

// RegisterTools registers the list_contract_deployments tool.
func (dh *DeploymentHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_contract_deployments",
		mcp.WithDescription(listDeploymentsDescription),
	)
	s.AddTool(listTool, dh.handleListDeployments)
	return nil
}

type deploymentList struct {
	Deployments []deployment.Deployment `json:"deployments"`
}

func (dh *DeploymentHandler) handleListDeployments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Ctx(ctx).Debug().Msg("list_contract_deployments invoked")
	return jsonResult(deploymentList{Deployments: dh.builder.Deployments()})
}
