package contract

import (
	"fmt"

	"github.com/archway-network/cosmwasm-mcp-template/contract/deployment"
	"github.com/archway-network/cosmwasm-mcp-template/contract/schema"
)

// Option configures a Builder during construction in New.
type Option func(*Builder) error

// WithSchemas replaces the compiled-in reference message schemas.
func WithSchemas(r *schema.Registry) Option {
	return func(b *Builder) error {
		if r == nil {
			return fmt.Errorf("schema registry must not be nil")
		}
		b.schemas = r
		return nil
	}
}

// WithDeployments replaces the compiled-in deployment table.
func WithDeployments(d *deployment.Directory) Option {
	return func(b *Builder) error {
		if d == nil {
			return fmt.Errorf("deployment directory must not be nil")
		}
		b.deployments = d
		return nil
	}
}

// WithDeploymentsFile loads the deployment table from a YAML file.
// An empty path keeps the compiled-in table.
func WithDeploymentsFile(path string) Option {
	return func(b *Builder) error {
		if path == "" {
			return nil
		}
		d, err := deployment.LoadFile(path)
		if err != nil {
			return err
		}
		b.deployments = d
		return nil
	}
}
