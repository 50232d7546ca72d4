package deployment

import (
	"fmt"
	"regexp"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Cosmos SDK denoms: 3-128 chars, starting with a letter.
var denomRx = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)

// ValidateAddress checks that address is bech32 with the given human-readable
// prefix and carries a 20-byte account or 32-byte contract payload. It checks
// format only, not on-chain existence.
func ValidateAddress(address, prefix string) error {
	hrp, data, err := bech32.Decode(address)
	if err != nil {
		return fmt.Errorf("address %q is not valid bech32: %w", address, err)
	}
	if hrp != prefix {
		return fmt.Errorf("address %q has prefix %q, want %q", address, hrp, prefix)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return fmt.Errorf("address %q: %w", address, err)
	}
	if n := len(payload); n != 20 && n != 32 {
		return fmt.Errorf("address %q decodes to %d bytes, want 20 or 32", address, n)
	}
	return nil
}

func (d Deployment) validate() error {
	switch {
	case d.Network == "":
		return fmt.Errorf("network is required")
	case d.ChainID == "":
		return fmt.Errorf("chain_id is required")
	case d.ContractAddress == "":
		return fmt.Errorf("contract_address is required")
	case d.Bech32Prefix == "":
		return fmt.Errorf("bech32_prefix is required")
	case !denomRx.MatchString(d.Denom):
		return fmt.Errorf("denom %q is not a valid denomination", d.Denom)
	}
	return ValidateAddress(d.ContractAddress, d.Bech32Prefix)
}
