package schema

import (
	"sync"

	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
)

// Registry serves the query and execute schemas. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	query   *Schema
	execute *Schema
}

// NewRegistry pairs the two message schemas of a contract.
func NewRegistry(query, execute *Schema) (*Registry, error) {
	if query == nil || execute == nil {
		return nil, cwerrors.NewInvalidConfig("registry requires both a query and an execute schema")
	}
	return &Registry{query: query, execute: execute}, nil
}

// Query returns the QueryMsg schema.
func (r *Registry) Query() *Schema { return r.query }

// Execute returns the ExecuteMsg schema.
func (r *Registry) Execute() *Schema { return r.execute }

var defaultRegistry = sync.OnceValue(func() *Registry {
	return &Registry{query: cw20QueryMsg(), execute: cw20ExecuteMsg()}
})

// Default returns the registry for the compiled-in reference contract.
func Default() *Registry { return defaultRegistry() }
