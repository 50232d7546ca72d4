package contract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/archway-network/cosmwasm-mcp-template/contract/deployment"
	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
	"github.com/archway-network/cosmwasm-mcp-template/contract/schema"
)

const (
	mainnetAddr  = "archway1gaf9nw7n8v5lpjz9caxjpps006kxfcrzcuc8y5qp4clslhven2ns2g0ule"
	testnetAddr  = "archway1r8kepegwhldwqanuurc769l2g0qxlsm2sm6t5rhqjzcerxsgshls267f7a"
	strangerAddr = "archway1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8qarc0shd8x93"
)

func TestNew_Defaults(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	deps := b.Deployments()
	require.Len(t, deps, 2)
	assert.Equal(t, deployment.Mainnet, deps[0].Network)
	assert.Equal(t, mainnetAddr, deps[0].ContractAddress)
	assert.Equal(t, deployment.Testnet, deps[1].Network)
	assert.Equal(t, testnetAddr, deps[1].ContractAddress)

	assert.Equal(t, "QueryMsg", b.QuerySchema().Name())
	assert.Equal(t, "ExecuteMsg", b.ExecuteSchema().Name())
}

func TestNew_Options(t *testing.T) {
	q := schema.MustNew("QueryMsg", "", schema.Variant{Name: "config"})
	e := schema.MustNew("ExecuteMsg", "", schema.Variant{Name: "reset"})
	reg, err := schema.NewRegistry(q, e)
	require.NoError(t, err)

	dir, err := deployment.New(deployment.Deployment{
		Network:         "devnet",
		ChainID:         "archway-local",
		ContractAddress: strangerAddr,
		Denom:           "stake",
		Bech32Prefix:    "archway",
	})
	require.NoError(t, err)

	b, err := New(WithSchemas(reg), WithDeployments(dir))
	require.NoError(t, err)

	res, err := b.BuildQuery(strangerAddr, json.RawMessage(`{"config":{}}`))
	require.NoError(t, err)
	assert.Equal(t, deployment.Network("devnet"), res.Network)

	_, err = b.BuildQuery(mainnetAddr, json.RawMessage(`{"config":{}}`))
	assert.True(t, cwerrors.IsKind(err, cwerrors.UnknownContract))

	_, err = New(WithSchemas(nil))
	assert.Error(t, err)
	_, err = New(WithDeployments(nil))
	assert.Error(t, err)
}

func TestNew_DeploymentsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments.yaml")
	table := `deployments:
  - network: local
    chain_id: archway-local
    contract_address: ` + strangerAddr + `
    denom: stake
    bech32_prefix: archway
`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o600))

	b, err := New(WithDeploymentsFile(path))
	require.NoError(t, err)
	require.Len(t, b.Deployments(), 1)

	res, err := b.BuildExecute(strangerAddr, json.RawMessage(`{"deposit":{}}`), "5")
	require.NoError(t, err)
	assert.Equal(t, `[{"denom":"stake","amount":"5"}]`, gjson.Get(res.CosmosMsg, "wasm.execute.funds").Raw)

	b, err = New(WithDeploymentsFile(""))
	require.NoError(t, err)
	assert.Len(t, b.Deployments(), 2)

	_, err = New(WithDeploymentsFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("deployments:\n  - network: x\n    color: red\n"), 0o600))
	_, err = New(WithDeploymentsFile(bad))
	assert.True(t, cwerrors.IsKind(err, cwerrors.InvalidConfig))
}

func TestBuildQuery(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	res, err := b.BuildQuery(mainnetAddr, json.RawMessage(`{"balance":{"address":"archway1xyz"}}`))
	require.NoError(t, err)
	assert.Equal(t, "balance", res.Variant)
	assert.Equal(t, `{"balance":{"address":"archway1xyz"}}`, res.QueryMsg)
	assert.Equal(t, mainnetAddr, gjson.Get(res.QueryRequest, "wasm.smart.contract_addr").String())
}

func TestBuildQuery_UnknownContractWinsOverBadPayload(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	for _, payload := range []string{`{"balance":{}}`, `not json`, `{"nope":{}}`} {
		_, err := b.BuildQuery(strangerAddr, json.RawMessage(payload))
		assert.True(t, cwerrors.IsKind(err, cwerrors.UnknownContract), payload)
	}
}

func TestBuildQuery_ExecuteVariantRejected(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	_, err = b.BuildQuery(mainnetAddr, json.RawMessage(`{"deposit":{}}`))
	e, ok := cwerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, cwerrors.NoMatchingVariant, e.Kind)
	assert.Equal(t, "deposit", e.Tag)
	assert.Contains(t, e.Legal, "balance")
}

func TestBuildExecute(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	res, err := b.BuildExecute(testnetAddr,
		json.RawMessage(`{"transfer":{"amount":"100","recipient":"archway1xyz"}}`), "")
	require.NoError(t, err)
	assert.Equal(t, `{"transfer":{"recipient":"archway1xyz","amount":"100"}}`, res.ExecuteMsg)
	assert.Empty(t, res.Funds)
	assert.Equal(t, "constantine-3", res.ChainID)

	_, err = b.BuildExecute(testnetAddr, json.RawMessage(`{"transfer":{"recipient":"archway1xyz"}}`), "")
	assert.True(t, cwerrors.IsKind(err, cwerrors.MissingField))

	_, err = b.BuildExecute(testnetAddr, json.RawMessage(`{"transfer":{"recipient":"r","amount":"1"}}`), "7")
	assert.True(t, cwerrors.IsKind(err, cwerrors.UnexpectedFunds))

	_, err = b.BuildExecute(strangerAddr, json.RawMessage(`{}`), "abc")
	assert.True(t, cwerrors.IsKind(err, cwerrors.UnknownContract))
}
