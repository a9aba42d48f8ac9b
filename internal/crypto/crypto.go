// Package crypto provides the pluggable sign/verify capability.
// Addresses are 32-byte public keys so verification needs no key lookup.
package crypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// Scheme names a signature algorithm.
type Scheme string

const (
	SchemeSchnorr Scheme = "schnorr"
	SchemeEd25519 Scheme = "ed25519"
)

// SeedSize is the private key material length accepted by NewSigner.
const SeedSize = 32

type (
	// Signer signs 32-byte digests on behalf of one address.
	Signer interface {
		Address() model.Address
		Sign(digest model.Hash) ([]byte, error)
	}
	// Verifier checks a signature against the signing address.
	Verifier interface {
		Verify(addr model.Address, digest model.Hash, sig []byte) bool
	}
)

// NewSigner builds a Signer for scheme from a 32-byte seed.
func NewSigner(scheme Scheme, seed []byte) (Signer, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	switch scheme {
	case SchemeSchnorr:
		priv, pub := btcec.PrivKeyFromBytes(seed)
		addr, err := model.AddressFromBytes(schnorr.SerializePubKey(pub))
		if err != nil {
			return nil, err
		}
		return &schnorrSigner{key: priv, addr: addr}, nil
	case SchemeEd25519:
		priv := ed25519.NewKeyFromSeed(seed)
		addr, err := model.AddressFromBytes(priv.Public().(ed25519.PublicKey))
		if err != nil {
			return nil, err
		}
		return &ed25519Signer{key: priv, addr: addr}, nil
	default:
		return nil, fmt.Errorf("unknown signature scheme %q", scheme)
	}
}

// NewVerifier returns the Verifier for scheme.
func NewVerifier(scheme Scheme) (Verifier, error) {
	switch scheme {
	case SchemeSchnorr:
		return SchnorrVerifier{}, nil
	case SchemeEd25519:
		return Ed25519Verifier{}, nil
	default:
		return nil, fmt.Errorf("unknown signature scheme %q", scheme)
	}
}

type schnorrSigner struct {
	key  *btcec.PrivateKey
	addr model.Address
}

func (s *schnorrSigner) Address() model.Address { return s.addr }

func (s *schnorrSigner) Sign(digest model.Hash) ([]byte, error) {
	sig, err := schnorr.Sign(s.key, digest[:])
	if err != nil {
		return nil, fmt.Errorf("schnorr sign: %w", err)
	}
	return sig.Serialize(), nil
}

// SchnorrVerifier verifies BIP-340 signatures against x-only keys.
type SchnorrVerifier struct{}

func (SchnorrVerifier) Verify(addr model.Address, digest model.Hash, sig []byte) bool {
	pub, err := schnorr.ParsePubKey(addr[:])
	if err != nil {
		return false
	}
	parsed, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false
	}
	return parsed.Verify(digest[:], pub)
}

type ed25519Signer struct {
	key  ed25519.PrivateKey
	addr model.Address
}

func (s *ed25519Signer) Address() model.Address { return s.addr }

func (s *ed25519Signer) Sign(digest model.Hash) ([]byte, error) {
	return ed25519.Sign(s.key, digest[:]), nil
}

// Ed25519Verifier verifies ed25519 signatures.
type Ed25519Verifier struct{}

func (Ed25519Verifier) Verify(addr model.Address, digest model.Hash, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(addr[:]), digest[:], sig)
}

// SignTransaction seals tx and attaches the signer's signature.
func SignTransaction(s Signer, tx *model.Transaction) error {
	if tx.From != s.Address() {
		return fmt.Errorf("signer %s cannot sign for %s", s.Address(), tx.From)
	}
	tx.Seal()
	sig, err := s.Sign(tx.Hash)
	if err != nil {
		return err
	}
	tx.Signature = sig
	return nil
}

// SignBlock seals b and attaches the producer's signature.
func SignBlock(s Signer, b *model.Block) error {
	if b.Producer != s.Address() {
		return fmt.Errorf("signer %s is not producer %s", s.Address(), b.Producer)
	}
	b.Seal()
	sig, err := s.Sign(b.Hash)
	if err != nil {
		return err
	}
	b.Signature = sig
	return nil
}
