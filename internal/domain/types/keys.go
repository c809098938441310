package types

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Sizes of the fixed-length byte forms crossing package boundaries.
const (
	PublicKeySize    = 32
	PrivateSeedSize  = 32
	KeypairBytesSize = 64
	SignatureSize    = 64
)

// PublicKey is an Ed25519 public point. It doubles as the account identifier.
type PublicKey [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// Address returns the base58 text form of the key.
func (p PublicKey) Address() Address { return Address(base58.Encode(p[:])) }

// String implements fmt.Stringer.
func (p PublicKey) String() string { return string(p.Address()) }

// PrivateSeed is the 32-byte RFC 8032 secret key a keypair is expanded from.
type PrivateSeed [PrivateSeedSize]byte

// Slice returns the seed as a []byte.
func (k PrivateSeed) Slice() []byte { return k[:] }

// String never renders secret material.
func (k PrivateSeed) String() string { return "PrivateSeed(redacted)" }

// KeypairBytes is the 64-byte seed||public export layout used by keypair files.
type KeypairBytes [KeypairBytesSize]byte

// Slice returns the keypair as a []byte.
func (k KeypairBytes) Slice() []byte { return k[:] }

// Seed returns the secret half.
func (k KeypairBytes) Seed() (s PrivateSeed) {
	copy(s[:], k[:PrivateSeedSize])
	return s
}

// Public returns the public half as stored. It is not checked against the seed.
func (k KeypairBytes) Public() (p PublicKey) {
	copy(p[:], k[PrivateSeedSize:])
	return p
}

// String never renders secret material.
func (k KeypairBytes) String() string { return "KeypairBytes(redacted)" }

// Signature is an Ed25519 signature, R || S.
type Signature [SignatureSize]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// String returns the base58 text form of the signature.
func (s Signature) String() string { return base58.Encode(s[:]) }

// PublicKeyFromSlice copies b into a PublicKey.
func PublicKeyFromSlice(b []byte) (PublicKey, error) {
	var out PublicKey
	if len(b) != PublicKeySize {
		return out, lengthError("public key", PublicKeySize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// SignatureFromSlice copies b into a Signature.
func SignatureFromSlice(b []byte) (Signature, error) {
	var out Signature
	if len(b) != SignatureSize {
		return out, lengthError("signature", SignatureSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// KeypairBytesFromSlice copies b into KeypairBytes.
func KeypairBytesFromSlice(b []byte) (KeypairBytes, error) {
	var out KeypairBytes
	if len(b) != KeypairBytesSize {
		return out, lengthError("keypair", KeypairBytesSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// MustPublicKey is PublicKeyFromSlice for fixtures; it panics on a bad length.
func MustPublicKey(b []byte) PublicKey {
	p, err := PublicKeyFromSlice(b)
	if err != nil {
		panic(err)
	}
	return p
}

// MustSignature is SignatureFromSlice for fixtures; it panics on a bad length.
func MustSignature(b []byte) Signature {
	s, err := SignatureFromSlice(b)
	if err != nil {
		panic(err)
	}
	return s
}

func lengthError(what string, want, got int) error {
	return fmt.Errorf("%s: want %d bytes, got %d: %w", what, want, got, ErrInvalidLength)
}
