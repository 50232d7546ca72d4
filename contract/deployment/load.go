package deployment

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
)

//go:embed deployments.yaml
var defaultTable []byte

type table struct {
	Deployments []Deployment `yaml:"deployments"`
}

// Load parses a YAML deployment table. Unknown keys are rejected.
func Load(r io.Reader) (*Directory, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t table
	if err := dec.Decode(&t); err != nil {
		if err == io.EOF {
			return nil, cwerrors.NewInvalidConfig("deployment table is empty")
		}
		return nil, cwerrors.NewInvalidConfig("parse deployment table: %v", err)
	}
	return New(t.Deployments...)
}

// LoadFile reads a deployment table from path.
func LoadFile(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deployment table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var defaultDirectory = sync.OnceValues(func() (*Directory, error) {
	return Load(bytes.NewReader(defaultTable))
})

// Default returns the compiled-in reference deployments.
func Default() (*Directory, error) { return defaultDirectory() }
