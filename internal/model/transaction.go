package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/pocschain/pkg/safe"
)

// TxKind enumerates transaction kinds.
type TxKind uint8

const (
	KindTransfer TxKind = iota + 1
	KindContractDeploy
	KindContractCall
	KindStake
	KindUnstake
	KindCreditClaim
	KindCreditRedeem
	KindPeerRating
	KindEvidence
)

var kindNames = map[TxKind]string{
	KindTransfer:       "TRANSFER",
	KindContractDeploy: "CONTRACT_DEPLOY",
	KindContractCall:   "CONTRACT_CALL",
	KindStake:          "STAKE",
	KindUnstake:        "UNSTAKE",
	KindCreditClaim:    "CREDIT_CLAIM",
	KindCreditRedeem:   "CREDIT_REDEEM",
	KindPeerRating:     "PEER_RATING",
	KindEvidence:       "EVIDENCE",
}

func (k TxKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TxKind(%d)", uint8(k))
}

// Valid reports whether k is a known kind.
func (k TxKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseTxKind maps a kind name back to its value.
func ParseTxKind(s string) (TxKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown transaction kind %q", s)
}

// IsContract reports whether the kind runs the contract executor.
func (k TxKind) IsContract() bool {
	return k == KindContractDeploy || k == KindContractCall
}

// IsRegistryOp reports whether the kind only changes validator records. Such
// transactions move no value beyond their fee.
func (k TxKind) IsRegistryOp() bool {
	switch k {
	case KindCreditClaim, KindCreditRedeem, KindPeerRating, KindEvidence:
		return true
	}
	return false
}

// Transaction is immutable once sealed. Timestamp is unix milliseconds.
type Transaction struct {
	From      Address `json:"from"`
	To        Address `json:"to"`
	Amount    uint64  `json:"amount"`
	Kind      TxKind  `json:"kind"`
	Payload   []byte  `json:"payload,omitempty"`
	GasLimit  uint64  `json:"gas_limit"`
	GasPrice  uint64  `json:"gas_price"`
	Nonce     uint64  `json:"nonce"`
	Timestamp int64   `json:"timestamp"`
	Signature []byte  `json:"signature"`
	Hash      Hash    `json:"hash"`
}

// ComputeHash digests every field except Signature and Hash.
func (tx *Transaction) ComputeHash() Hash {
	var w canonicalWriter
	w.fixed(tx.From[:])
	w.fixed(tx.To[:])
	w.uint64(tx.Amount)
	w.uint8(byte(tx.Kind))
	w.varBytes(tx.Payload)
	w.uint64(tx.GasLimit)
	w.uint64(tx.GasPrice)
	w.uint64(tx.Nonce)
	w.int64(tx.Timestamp)
	return chainhash.DoubleHashH(w.encoded())
}

// Seal stores the computed content hash.
func (tx *Transaction) Seal() {
	tx.Hash = tx.ComputeHash()
}

// GasCost is GasLimit × GasPrice.
func (tx *Transaction) GasCost() (uint64, error) {
	return safe.Mul(tx.GasLimit, tx.GasPrice)
}

// TotalCost is Amount plus GasCost, the balance a sender must hold.
func (tx *Transaction) TotalCost() (uint64, error) {
	gas, err := tx.GasCost()
	if err != nil {
		return 0, err
	}
	return safe.Add(tx.Amount, gas)
}

// ContractAddress derives the account created by a CONTRACT_DEPLOY.
func (tx *Transaction) ContractAddress() Address {
	var w canonicalWriter
	w.fixed(tx.From[:])
	w.uint64(tx.Nonce)
	return Address(chainhash.HashH(w.encoded()))
}
