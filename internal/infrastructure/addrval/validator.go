package addrval

import (
	"github.com/bitcoinschema/go-bitcoin"

	"file_wallet/internal/app/port"
)

// base58Validator implements port.AddressValidator for legacy base58
// P2PKH addresses, the on-chain address format of the wallet.
type base58Validator struct{}

// NewBase58Validator creates the chain address validator.
func NewBase58Validator() port.AddressValidator {
	return &base58Validator{}
}

// IsValidChainAddress implements port.AddressValidator.
func (v *base58Validator) IsValidChainAddress(address string) bool {
	if address == "" {
		return false
	}
	ok, err := bitcoin.ValidA58([]byte(address))
	return err == nil && ok
}
