package model

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// AddressLength is the width of an account identifier in bytes.
const AddressLength = 32

// Address is an opaque fixed-width account identifier. For externally owned
// accounts it is the owner's public key.
type Address [AddressLength]byte

var (
	// Mint is the debit side of issuance entries. It never holds a balance.
	Mint = Address{}
	// StakeEscrow holds staked value on behalf of validators.
	StakeEscrow = func() Address {
		var a Address
		for i := range a {
			a[i] = 0xff
		}
		return a
	}()
)

// AddressFromBytes copies b into an Address.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("address must be %d bytes, got %d", AddressLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromHex parses a hex encoded address.
func AddressFromHex(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("decode address hex: %w", err)
	}
	return AddressFromBytes(b)
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// IsZero reports whether a is the Mint address.
func (a Address) IsZero() bool {
	return a == Mint
}

// Less orders addresses by their bytes.
func (a Address) Less(b Address) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// Compare returns -1, 0 or 1 ordering a against b bytewise.
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := AddressFromHex(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
