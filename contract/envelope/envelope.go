// Package envelope wraps validated messages into the CosmWasm request shapes
// that signing and broadcasting clients accept. Nothing here is sent anywhere.
package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/archway-network/cosmwasm-mcp-template/contract/deployment"
	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
	"github.com/archway-network/cosmwasm-mcp-template/contract/validate"
)

// Resolver confirms that a contract address is a known deployment.
type Resolver interface {
	Resolve(address string) (deployment.Deployment, error)
}

// Query is a prepared QueryRequest::Wasm(WasmQuery::Smart).
type Query struct {
	ContractAddress string             `json:"contract_addr"`
	Network         deployment.Network `json:"network"`
	ChainID         string             `json:"chain_id"`
	Variant         string             `json:"variant"`
	Message         json.RawMessage    `json:"message"`
	// QueryMsg is the canonical inner message.
	QueryMsg string `json:"query_msg"`
	// QueryRequest is the full request, ready to hand to an RPC client.
	QueryRequest string `json:"query_request"`
}

// Execute is a prepared, unsigned CosmosMsg::Wasm(WasmMsg::Execute).
type Execute struct {
	ContractAddress string             `json:"contract_addr"`
	Network         deployment.Network `json:"network"`
	ChainID         string             `json:"chain_id"`
	Variant         string             `json:"variant"`
	Message         json.RawMessage    `json:"message"`
	Funds           []Coin             `json:"funds"`
	// ExecuteMsg is the canonical inner message.
	ExecuteMsg string `json:"execute_msg"`
	// CosmosMsg is the full message, ready to be signed and broadcast.
	CosmosMsg string `json:"cosmos_msg"`
}

// Wire shapes. []byte encodes as standard base64, matching cosmwasm_std::Binary.
type (
	wasmQueryRequest struct {
		Wasm struct {
			Smart smartQuery `json:"smart"`
		} `json:"wasm"`
	}
	smartQuery struct {
		ContractAddr string `json:"contract_addr"`
		Msg          []byte `json:"msg"`
	}
	wasmCosmosMsg struct {
		Wasm struct {
			Execute executeMsg `json:"execute"`
		} `json:"wasm"`
	}
	executeMsg struct {
		ContractAddr string `json:"contract_addr"`
		Msg          []byte `json:"msg"`
		Funds        []Coin `json:"funds"`
	}
)

// Builder produces envelopes for known deployments. It holds no mutable
// state; identical inputs yield byte-identical envelopes.
type Builder struct {
	resolver Resolver
}

// NewBuilder returns a Builder that accepts only addresses known to r.
func NewBuilder(r Resolver) *Builder {
	return &Builder{resolver: r}
}

// BuildQuery wraps msg into a smart query against contractAddress.
func (b *Builder) BuildQuery(contractAddress string, msg *validate.Message) (*Query, error) {
	dep, err := b.resolver.Resolve(contractAddress)
	if err != nil {
		return nil, err
	}

	var req wasmQueryRequest
	req.Wasm.Smart = smartQuery{ContractAddr: dep.ContractAddress, Msg: msg.Canonical()}
	wire, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode query request: %w", err)
	}

	return &Query{
		ContractAddress: dep.ContractAddress,
		Network:         dep.Network,
		ChainID:         dep.ChainID,
		Variant:         msg.Variant(),
		Message:         msg.Canonical(),
		QueryMsg:        msg.String(),
		QueryRequest:    string(wire),
	}, nil
}

// BuildExecute wraps msg into an execute message attaching funds of the
// deployment's native denom. Funds must be zero for non-payable variants.
func (b *Builder) BuildExecute(contractAddress string, msg *validate.Message, funds string) (*Execute, error) {
	dep, err := b.resolver.Resolve(contractAddress)
	if err != nil {
		return nil, err
	}

	amount, err := ParseFunds(funds, dep.Denom)
	if err != nil {
		return nil, err
	}
	if amount.Sign() > 0 && !msg.Payable() {
		return nil, cwerrors.NewUnexpectedFunds(msg.Variant(), amount.String()+dep.Denom)
	}

	attached := coins(amount, dep.Denom)
	var wireMsg wasmCosmosMsg
	wireMsg.Wasm.Execute = executeMsg{
		ContractAddr: dep.ContractAddress,
		Msg:          msg.Canonical(),
		Funds:        attached,
	}
	wire, err := json.Marshal(wireMsg)
	if err != nil {
		return nil, fmt.Errorf("encode cosmos msg: %w", err)
	}

	return &Execute{
		ContractAddress: dep.ContractAddress,
		Network:         dep.Network,
		ChainID:         dep.ChainID,
		Variant:         msg.Variant(),
		Message:         msg.Canonical(),
		Funds:           attached,
		ExecuteMsg:      msg.String(),
		CosmosMsg:       string(wire),
	}, nil
}
