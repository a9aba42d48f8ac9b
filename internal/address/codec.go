// Package address converts account identifiers to and from their
// human-readable bech32 form.
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// DefaultHRP is the human-readable prefix used by the node.
const DefaultHRP = "pocs"

// Codec encodes addresses under a fixed human-readable prefix.
type Codec struct {
	hrp string
}

// NewCodec returns a Codec for hrp.
func NewCodec(hrp string) Codec {
	if hrp == "" {
		hrp = DefaultHRP
	}
	return Codec{hrp: hrp}
}

// Encode renders addr as bech32.
func (c Codec) Encode(addr model.Address) (string, error) {
	data, err := bech32.ConvertBits(addr[:], 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert address bits: %w", err)
	}
	s, err := bech32.Encode(c.hrp, data)
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return s, nil
}

// Decode parses a bech32 address, rejecting foreign prefixes.
func (c Codec) Decode(s string) (model.Address, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return model.Address{}, fmt.Errorf("bech32 decode: %w", err)
	}
	if hrp != c.hrp {
		return model.Address{}, fmt.Errorf("address prefix %q, want %q", hrp, c.hrp)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return model.Address{}, fmt.Errorf("convert address bits: %w", err)
	}
	return model.AddressFromBytes(raw)
}

// MustEncode is Encode for addresses that are known to be well formed.
func (c Codec) MustEncode(addr model.Address) string {
	s, err := c.Encode(addr)
	if err != nil {
		panic(err)
	}
	return s
}
