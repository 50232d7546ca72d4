// Package deployment resolves contract addresses to the networks the
// contract is deployed on. The table is loaded once at startup and is
// read-only afterwards.
package deployment

import (
	"strings"

	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
)

// Network identifies a chain the contract is deployed to. The set of valid
// networks is whatever the loaded table declares.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Deployment is one live instance of the contract.
type Deployment struct {
	Network         Network `yaml:"network" json:"network"`
	ChainID         string  `yaml:"chain_id" json:"chain_id"`
	ContractAddress string  `yaml:"contract_address" json:"contract_address"`
	// Denom is the native denomination attached as funds on execute messages.
	Denom        string `yaml:"denom" json:"denom"`
	Bech32Prefix string `yaml:"bech32_prefix" json:"bech32_prefix"`
}

// Directory is an immutable, ordered set of deployments.
type Directory struct {
	deployments []Deployment
	byAddress   map[string]int
	byNetwork   map[Network]int
}

// New validates deployments and builds a Directory preserving their order.
func New(deployments ...Deployment) (*Directory, error) {
	if len(deployments) == 0 {
		return nil, cwerrors.NewInvalidConfig("deployment table is empty")
	}

	d := &Directory{
		deployments: make([]Deployment, 0, len(deployments)),
		byAddress:   make(map[string]int, len(deployments)),
		byNetwork:   make(map[Network]int, len(deployments)),
	}
	for i, dep := range deployments {
		dep.Network = Network(strings.TrimSpace(string(dep.Network)))
		dep.ChainID = strings.TrimSpace(dep.ChainID)
		dep.ContractAddress = strings.TrimSpace(dep.ContractAddress)
		dep.Denom = strings.TrimSpace(dep.Denom)
		dep.Bech32Prefix = strings.TrimSpace(dep.Bech32Prefix)

		if err := dep.validate(); err != nil {
			return nil, cwerrors.NewInvalidConfig("deployment %d: %v", i, err)
		}
		if _, dup := d.byNetwork[dep.Network]; dup {
			return nil, cwerrors.NewInvalidConfig("deployment %d: network %q declared twice", i, dep.Network)
		}
		if _, dup := d.byAddress[dep.ContractAddress]; dup {
			return nil, cwerrors.NewInvalidConfig("deployment %d: contract address %s declared twice", i, dep.ContractAddress)
		}
		d.byNetwork[dep.Network] = i
		d.byAddress[dep.ContractAddress] = i
		d.deployments = append(d.deployments, dep)
	}
	return d, nil
}

// List returns every deployment in declaration order.
func (d *Directory) List() []Deployment {
	return append([]Deployment(nil), d.deployments...)
}

// Len is the number of deployments.
func (d *Directory) Len() int { return len(d.deployments) }

// Resolve finds the deployment whose contract address equals address exactly.
func (d *Directory) Resolve(address string) (Deployment, error) {
	i, ok := d.byAddress[address]
	if !ok {
		return Deployment{}, cwerrors.NewUnknownContract(address)
	}
	return d.deployments[i], nil
}

// Network returns the deployment on network n.
func (d *Directory) Network(n Network) (Deployment, bool) {
	i, ok := d.byNetwork[n]
	if !ok {
		return Deployment{}, false
	}
	return d.deployments[i], true
}

// Addresses returns the known contract addresses in declaration order.
func (d *Directory) Addresses() []string {
	out := make([]string, len(d.deployments))
	for i, dep := range d.deployments {
		out[i] = dep.ContractAddress
	}
	return out
}
