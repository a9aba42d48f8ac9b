package model

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Hash is a 32-byte digest used for blocks, transactions and state roots.
type Hash = chainhash.Hash

// ZeroHash is the all-zero digest.
var ZeroHash Hash

// encodingVersion is the protocol version handed to the wire helpers.
const encodingVersion uint32 = 0

// canonicalWriter produces the order-stable byte form fed into hashes.
// Writes go to an in-memory buffer and only the first error is kept.
type canonicalWriter struct {
	buf bytes.Buffer
	err error
}

func (w *canonicalWriter) uint64(v uint64) {
	if w.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, w.err = w.buf.Write(b[:])
}

func (w *canonicalWriter) int64(v int64) {
	w.uint64(uint64(v))
}

func (w *canonicalWriter) uint8(v byte) {
	if w.err != nil {
		return
	}
	w.err = w.buf.WriteByte(v)
}

func (w *canonicalWriter) fixed(b []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.buf.Write(b)
}

func (w *canonicalWriter) varInt(v uint64) {
	if w.err != nil {
		return
	}
	w.err = wire.WriteVarInt(&w.buf, encodingVersion, v)
}

func (w *canonicalWriter) varBytes(b []byte) {
	if w.err != nil {
		return
	}
	w.err = wire.WriteVarBytes(&w.buf, encodingVersion, b)
}

// encoded returns the encoded form. A bytes.Buffer only fails when it cannot
// grow, which the runtime reports as a panic anyway.
func (w *canonicalWriter) encoded() []byte {
	if w.err != nil {
		panic(w.err)
	}
	return w.buf.Bytes()
}

// SlotSeed derives the election seed of the attempt-th slot after the block
// hashed prev. The first slot is seeded by prev itself.
func SlotSeed(prev Hash, attempt uint64) Hash {
	if attempt == 0 {
		return prev
	}
	var w canonicalWriter
	w.fixed(prev[:])
	w.uint64(attempt)
	return chainhash.DoubleHashH(w.encoded())
}
