package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"sigcore/internal/domain"
	"sigcore/internal/util/memzero"
)

// Keypair owns an Ed25519 seed and the public key derived from it.
//
// A Keypair is immutable after construction and may be used for signing from
// several goroutines at once. Destroy must not race with Sign.
type Keypair struct {
	seed domain.PrivateSeed
	priv ed25519.PrivateKey
	pub  domain.PublicKey
}

// Generate returns a keypair seeded from r. A nil r means crypto/rand.Reader.
// Any read failure is reported as domain.ErrInsecureRandomnessUnavailable;
// the caller decides whether to retry.
func Generate(r io.Reader) (*Keypair, error) {
	if r == nil {
		r = rand.Reader
	}
	var seed domain.PrivateSeed
	defer memzero.Zero(seed[:])
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, fmt.Errorf("reading seed: %v: %w", err, domain.ErrInsecureRandomnessUnavailable)
	}
	return FromSeed(seed[:])
}

// FromSeed deterministically expands a 32-byte seed into a keypair.
func FromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != domain.PrivateSeedSize {
		return nil, fmt.Errorf(
			"seed: want %d bytes, got %d: %w",
			domain.PrivateSeedSize, len(seed), domain.ErrInvalidSeedLength,
		)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	kp := &Keypair{priv: priv}
	copy(kp.seed[:], seed)
	copy(kp.pub[:], priv[ed25519.SeedSize:])
	return kp, nil
}

// FromKeypairBytes rebuilds a keypair from its 64-byte seed||public export.
// The public half must equal the key derived from the seed half.
func FromKeypairBytes(b []byte) (*Keypair, error) {
	pair, err := domain.KeypairBytesFromSlice(b)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(pair[:])
	seed := pair.Seed()
	defer memzero.Zero(seed[:])

	kp, err := FromSeed(seed[:])
	if err != nil {
		return nil, err
	}
	pub := pair.Public()
	if subtle.ConstantTimeCompare(kp.pub[:], pub[:]) != 1 {
		kp.Destroy()
		return nil, domain.ErrKeypairMismatch
	}
	return kp, nil
}

// Sign returns the deterministic RFC 8032 signature of message.
func (k *Keypair) Sign(message []byte) domain.Signature {
	if k.priv == nil {
		panic("crypto: Sign called on a destroyed keypair")
	}
	var sig domain.Signature
	copy(sig[:], ed25519.Sign(k.priv, message))
	return sig
}

// PublicKey returns the public key.
func (k *Keypair) PublicKey() domain.PublicKey { return k.pub }

// PublicKeyBytes returns a fresh copy of the public key bytes.
func (k *Keypair) PublicKeyBytes() []byte {
	out := make([]byte, domain.PublicKeySize)
	copy(out, k.pub[:])
	return out
}

// Address returns the base58 account address of the public key.
func (k *Keypair) Address() domain.Address { return k.pub.Address() }

// ExportPrivateBytes returns the 32-byte seed.
//
// This is an escape hatch: once exported, keeping the seed confidential and
// wiping it is the caller's responsibility.
func (k *Keypair) ExportPrivateBytes() domain.PrivateSeed { return k.seed }

// ExportKeypairBytes returns seed||public, the keypair file layout.
//
// Like ExportPrivateBytes, the result is unprotected secret material.
func (k *Keypair) ExportKeypairBytes() domain.KeypairBytes {
	var out domain.KeypairBytes
	copy(out[:domain.PrivateSeedSize], k.seed[:])
	copy(out[domain.PrivateSeedSize:], k.pub[:])
	return out
}

// Destroy wipes the secret material. The keypair must not be used afterwards.
func (k *Keypair) Destroy() {
	memzero.Zero(k.priv)
	memzero.Zero(k.seed[:])
	k.priv = nil
}

// String renders the address only.
func (k *Keypair) String() string { return "Keypair(" + k.Address().String() + ")" }

// Compile-time assertion that Keypair implements domain.Signer.
var _ domain.Signer = (*Keypair)(nil)
