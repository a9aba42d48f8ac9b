package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CreditClaim is the payload of a CREDIT_CLAIM: an attested off-chain
// contribution by the sending validator.
type CreditClaim struct {
	Activity string `json:"activity"`
	Credits  uint64 `json:"credits"`
}

// CreditRedemption is the payload of a CREDIT_REDEEM.
type CreditRedemption struct {
	Credits uint64 `json:"credits"`
}

// PeerRating is the payload of a PEER_RATING. The reviewee is the
// transaction recipient.
type PeerRating struct {
	Rating uint64 `json:"rating"`
}

// Evidence is the payload of an EVIDENCE transaction: the signed blocks that
// prove the recipient misbehaved. A double sign carries two blocks, an
// invalid proposal one.
type Evidence struct {
	Kind   OffenceKind `json:"kind"`
	Blocks []Block     `json:"blocks"`
}

// Height is the height the offence is recorded at.
func (e *Evidence) Height() uint64 {
	if len(e.Blocks) == 0 {
		return 0
	}
	return e.Blocks[0].Index
}

// EncodePayload renders a registry operation payload.
func EncodePayload(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

// DecodePayload parses a registry operation payload strictly. Unknown
// fields and trailing data make the transaction malformed.
func DecodePayload(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("payload: %v: %w", err, ErrMalformedTransaction)
	}
	if dec.More() {
		return fmt.Errorf("payload: trailing data: %w", ErrMalformedTransaction)
	}
	return nil
}
