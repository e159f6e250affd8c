package addrval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidChainAddress(t *testing.T) {
	validator := NewBase58Validator()

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"genesis address", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", true},
		{"empty string", "", false},
		{"custodial handle", "$satoshi", false},
		{"paymail", "alice@example.com", false},
		{"random text", "not-an-address", false},
		{"checksum broken", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb", false},
		{"base58 but too short", "1A1zP1", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validator.IsValidChainAddress(tc.address))
		})
	}
}
