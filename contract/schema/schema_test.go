package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	require.NotNil(t, reg)
	assert.Same(t, reg, Default())

	assert.Equal(t, "QueryMsg", reg.Query().Name())
	assert.Equal(t, "ExecuteMsg", reg.Execute().Name())
	assert.Contains(t, reg.Query().Names(), "balance")
	assert.Contains(t, reg.Execute().Names(), "transfer")

	deposit, ok := reg.Execute().Variant("deposit")
	require.True(t, ok)
	assert.True(t, deposit.Payable)

	transfer, ok := reg.Execute().Variant("transfer")
	require.True(t, ok)
	assert.False(t, transfer.Payable)
}

func TestNew_RejectsMalformedDescriptors(t *testing.T) {
	cases := map[string][]Variant{
		"no variants":      nil,
		"empty name":       {{Name: ""}},
		"duplicate":        {{Name: "a"}, {Name: "a"}},
		"duplicate field":  {{Name: "a", Fields: []Field{Str("x", ""), Num("x", "")}}},
		"bad type":         {{Name: "a", Fields: []Field{{Name: "x", Type: "date"}}}},
		"array no items":   {{Name: "a", Fields: []Field{{Name: "x", Type: Array}}}},
		"nested bad":       {{Name: "a", Fields: []Field{Obj("o", "", Field{Name: "y", Type: "int"})}}},
		"pattern on num":   {{Name: "a", Fields: []Field{{Name: "x", Type: Number, Pattern: `^1$`}}}},
		"bad pattern":      {{Name: "a", Fields: []Field{{Name: "x", Type: String, Pattern: `[`}}}},
		"example no match": {{Name: "a", Fields: []Field{{Name: "x", Type: String, Pattern: `^[0-9]+$`}}}},
	}
	for name, variants := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New("Msg", "", variants...)
			require.Error(t, err)
			assert.Equal(t, cwerrors.InvalidConfig, cwerrors.KindOf(err))
		})
	}
}

func TestNewRegistry_RequiresBothSchemas(t *testing.T) {
	_, err := NewRegistry(nil, Default().Execute())
	assert.True(t, cwerrors.IsKind(err, cwerrors.InvalidConfig))
}

func TestDocument_DerivedFromVariants(t *testing.T) {
	s := MustNew("ExecuteMsg", "test",
		Variant{Name: "transfer", Fields: []Field{Str("recipient", "to"), Num("amount", "how much")}},
		Variant{Name: "deposit", Payable: true},
	)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	doc := gjson.ParseBytes(b)

	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", doc.Get("$schema").String())
	assert.Equal(t, "ExecuteMsg", doc.Get("title").String())
	require.Len(t, doc.Get("oneOf").Array(), 2)

	transfer := doc.Get("oneOf.0")
	assert.Equal(t, `["transfer"]`, transfer.Get("required").Raw)
	assert.False(t, transfer.Get("additionalProperties").Bool())
	assert.False(t, transfer.Get("x-payable").Bool())
	body := transfer.Get("properties.transfer")
	assert.Equal(t, `["recipient","amount"]`, body.Get("required").Raw)
	assert.Equal(t, "number", body.Get("properties.amount.type").String())
	assert.Equal(t, `{"transfer":{"recipient":"","amount":0}}`, transfer.Get("examples.0").Raw)

	deposit := doc.Get("oneOf.1")
	assert.True(t, deposit.Get("x-payable").Bool())
	assert.Equal(t, `{"deposit":{}}`, deposit.Get("examples.0").Raw)
}

func TestDocument_PropertyOrderFollowsDeclaration(t *testing.T) {
	s := MustNew("Msg", "", Variant{Name: "v", Fields: []Field{Str("zeta", ""), Str("alpha", ""), Str("mid", "")}})
	b, err := json.Marshal(s)
	require.NoError(t, err)

	var keys []string
	gjson.GetBytes(b, "oneOf.0.properties.v.properties").ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}

func TestDocument_NestedAndArrays(t *testing.T) {
	b, err := json.Marshal(Default().Execute())
	require.NoError(t, err)

	var batch gjson.Result
	for _, v := range gjson.GetBytes(b, "oneOf").Array() {
		if v.Get("properties.batch_transfer").Exists() {
			batch = v
		}
	}
	require.True(t, batch.Exists())
	items := batch.Get("properties.batch_transfer.properties.transfers.items")
	assert.Equal(t, "object", items.Get("type").String())
	assert.Equal(t, `["recipient","amount"]`, items.Get("required").Raw)
	assert.Equal(t, "string", items.Get("properties.amount.type").String())
	assert.Equal(t, Uint128Pattern, items.Get("properties.amount.pattern").String())
}

func TestDocument_AmountsAreUint128Strings(t *testing.T) {
	b, err := json.Marshal(Default().Execute())
	require.NoError(t, err)

	n := 0
	for _, v := range gjson.GetBytes(b, "oneOf").Array() {
		v.Get("properties").ForEach(func(_, body gjson.Result) bool {
			amount := body.Get("properties.amount")
			if amount.Exists() {
				n++
				assert.Equal(t, "string", amount.Get("type").String(), v.Get("required").Raw)
				assert.Equal(t, Uint128Pattern, amount.Get("pattern").String(), v.Get("required").Raw)
			}
			return true
		})
	}
	assert.Equal(t, 8, n)

	var expires gjson.Result
	for _, v := range gjson.GetBytes(b, "oneOf").Array() {
		if e := v.Get("properties.increase_allowance.properties.expires.properties"); e.Exists() {
			expires = e
		}
	}
	require.True(t, expires.Exists())
	assert.Equal(t, "number", expires.Get("at_height.type").String())
	assert.Equal(t, "string", expires.Get("at_time.type").String())
	assert.Equal(t, Uint64Pattern, expires.Get("at_time.pattern").String())
}

func TestField_MatchString(t *testing.T) {
	f := Uint128("amount", "")
	assert.True(t, f.MatchString("0"))
	assert.True(t, f.MatchString("340282366920938463463374607431768211455"))
	assert.False(t, f.MatchString(""))
	assert.False(t, f.MatchString("-1"))
	assert.False(t, f.MatchString("1.5"))
	assert.False(t, f.MatchString("1e3"))
	assert.True(t, Str("memo", "").MatchString("anything"))
}

func TestVariantExample_RequiredOnly(t *testing.T) {
	v, ok := Default().Execute().Variant("increase_allowance")
	require.True(t, ok)
	assert.JSONEq(t, `{"increase_allowance":{"spender":"","amount":"0"}}`, string(v.Example()))

	v, ok = Default().Execute().Variant("batch_transfer")
	require.True(t, ok)
	assert.JSONEq(t, `{"batch_transfer":{"transfers":[]}}`, string(v.Example()))
}

func TestVariants_ReturnsCopy(t *testing.T) {
	s := Default().Query()
	vs := s.Variants()
	vs[0].Name = "mutated"
	assert.NotEqual(t, "mutated", s.Variants()[0].Name)
}
