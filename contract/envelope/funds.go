package envelope

import (
	"math/big"
	"regexp"
	"strings"

	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
)

// Coin is a CosmWasm coin; Amount is a decimal Uint128 string.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

var (
	// an amount optionally followed by a denom, e.g. "1000" or "1000aarch"
	fundsRx    = regexp.MustCompile(`^([0-9]+)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})?$`)
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// ParseFunds parses a non-negative integer amount of denom. The amount may be
// suffixed with denom itself. An empty string means zero.
func ParseFunds(raw, denom string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return new(big.Int), nil
	}
	if strings.HasPrefix(s, "-") {
		return nil, cwerrors.NewInvalidFunds(raw, "amount must not be negative")
	}

	m := fundsRx.FindStringSubmatch(s)
	if m == nil {
		return nil, cwerrors.NewInvalidFunds(raw, "expected a whole number of "+denom)
	}
	if m[2] != "" && m[2] != denom {
		return nil, cwerrors.NewInvalidFunds(raw, "denom "+m[2]+" is not the native denom "+denom)
	}

	amount, ok := new(big.Int).SetString(m[1], 10)
	if !ok {
		return nil, cwerrors.NewInvalidFunds(raw, "expected a whole number of "+denom)
	}
	if amount.Cmp(maxUint128) > 0 {
		return nil, cwerrors.NewInvalidFunds(raw, "amount exceeds Uint128")
	}
	return amount, nil
}

// coins renders amount as a CosmWasm funds list; zero is an empty list.
func coins(amount *big.Int, denom string) []Coin {
	if amount.Sign() == 0 {
		return []Coin{}
	}
	return []Coin{{Denom: denom, Amount: amount.String()}}
}
