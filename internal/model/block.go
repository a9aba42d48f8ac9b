package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Block is a sealed batch of transactions. Signature is the producer's
// signature over Hash and is not part of the hashed content.
type Block struct {
	Index        uint64        `json:"index"`
	Timestamp    int64         `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	PrevHash     Hash          `json:"prev_hash"`
	Producer     Address       `json:"producer"`
	StateRoot    Hash          `json:"state_root"`
	Nonce        uint64        `json:"nonce"`
	Hash         Hash          `json:"hash"`
	Signature    []byte        `json:"signature,omitempty"`
}

// ComputeHash digests all declared fields in a fixed order.
func (b *Block) ComputeHash() Hash {
	var w canonicalWriter
	w.uint64(b.Index)
	w.int64(b.Timestamp)
	w.varInt(uint64(len(b.Transactions)))
	for i := range b.Transactions {
		tx := &b.Transactions[i]
		w.fixed(tx.Hash[:])
		w.varBytes(tx.Signature)
	}
	w.fixed(b.PrevHash[:])
	w.fixed(b.Producer[:])
	w.fixed(b.StateRoot[:])
	w.uint64(b.Nonce)
	return chainhash.DoubleHashH(w.encoded())
}

// Seal stores the computed block hash.
func (b *Block) Seal() {
	b.Hash = b.ComputeHash()
}

// TxHashes lists the content hashes of the included transactions.
func (b *Block) TxHashes() []Hash {
	hashes := make([]Hash, len(b.Transactions))
	for i := range b.Transactions {
		hashes[i] = b.Transactions[i].Hash
	}
	return hashes
}
