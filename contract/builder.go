// Package contract ties the message schemas, the deployment table and the
// envelope builder together. A Builder is immutable once constructed and is
// shared by every tool call.
package contract

import (
	"encoding/json"

	"github.com/archway-network/cosmwasm-mcp-template/contract/deployment"
	"github.com/archway-network/cosmwasm-mcp-template/contract/envelope"
	"github.com/archway-network/cosmwasm-mcp-template/contract/schema"
	"github.com/archway-network/cosmwasm-mcp-template/contract/validate"
)

// Builder validates caller payloads and wraps them into CosmWasm envelopes.
type Builder struct {
	schemas     *schema.Registry
	deployments *deployment.Directory
	envelopes   *envelope.Builder
}

// New returns a Builder for the reference contract unless options say otherwise.
// Failures here are configuration errors and should stop the process.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	if b.schemas == nil {
		b.schemas = schema.Default()
	}
	if b.deployments == nil {
		d, err := deployment.Default()
		if err != nil {
			return nil, err
		}
		b.deployments = d
	}
	b.envelopes = envelope.NewBuilder(b.deployments)
	return b, nil
}

// Deployments lists the known deployments in table order.
func (b *Builder) Deployments() []deployment.Deployment {
	return b.deployments.List()
}

// QuerySchema is the contract's QueryMsg schema.
func (b *Builder) QuerySchema() *schema.Schema { return b.schemas.Query() }

// ExecuteSchema is the contract's ExecuteMsg schema.
func (b *Builder) ExecuteSchema() *schema.Schema { return b.schemas.Execute() }

// BuildQuery validates payload as a QueryMsg for the deployment at
// contractAddress and returns the smart query envelope. The address is
// checked before the payload.
func (b *Builder) BuildQuery(contractAddress string, payload json.RawMessage) (*envelope.Query, error) {
	if _, err := b.deployments.Resolve(contractAddress); err != nil {
		return nil, err
	}
	msg, err := validate.Validate(payload, b.schemas.Query())
	if err != nil {
		return nil, err
	}
	return b.envelopes.BuildQuery(contractAddress, msg)
}

// BuildExecute validates payload as an ExecuteMsg and returns the unsigned
// execute envelope carrying funds of the deployment's native denom.
func (b *Builder) BuildExecute(contractAddress string, payload json.RawMessage, funds string) (*envelope.Execute, error) {
	if _, err := b.deployments.Resolve(contractAddress); err != nil {
		return nil, err
	}
	msg, err := validate.Validate(payload, b.schemas.Execute())
	if err != nil {
		return nil, err
	}
	return b.envelopes.BuildExecute(contractAddress, msg, funds)
}
