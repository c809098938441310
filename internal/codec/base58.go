package codec

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"

	"sigcore/internal/domain"
)

// Alphabet is the base58 alphabet used for addresses and signatures.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// EncodeBase58 returns the base58 text of b.
func EncodeBase58(b []byte) string { return base58.Encode(b) }

// DecodeBase58 decodes base58 text of any length.
func DecodeBase58(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("base58: empty input: %w", domain.ErrInvalidEncoding)
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return nil, fmt.Errorf(
				"base58: invalid character %q at offset %d: %w",
				s[i], i, domain.ErrInvalidEncoding,
			)
		}
	}
	// base58.Decode signals bad input with an empty result, which the
	// alphabet check above already rules out.
	return base58.Decode(s), nil
}

// DecodeFixed decodes s and requires exactly size bytes. Truncated or padded
// text fails here, not in DecodeBase58.
func DecodeFixed(s string, size int) ([]byte, error) {
	b, err := DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf(
			"base58: decoded %d bytes, want %d: %w",
			len(b), size, domain.ErrInvalidEncoding,
		)
	}
	return b, nil
}

// EncodePublicKey returns the address text of pub.
func EncodePublicKey(pub domain.PublicKey) string { return base58.Encode(pub[:]) }

// DecodePublicKey parses address text into a public key. It checks the size
// only; whether the bytes are a valid curve point is the verifier's concern.
func DecodePublicKey(s string) (domain.PublicKey, error) {
	var out domain.PublicKey
	b, err := DecodeFixed(s, domain.PublicKeySize)
	if err != nil {
		return out, fmt.Errorf("public key: %w", err)
	}
	copy(out[:], b)
	return out, nil
}

// EncodeSignature returns the base58 text of sig.
func EncodeSignature(sig domain.Signature) string { return base58.Encode(sig[:]) }

// DecodeSignature parses base58 signature text.
func DecodeSignature(s string) (domain.Signature, error) {
	var out domain.Signature
	b, err := DecodeFixed(s, domain.SignatureSize)
	if err != nil {
		return out, fmt.Errorf("signature: %w", err)
	}
	copy(out[:], b)
	return out, nil
}

// DecodeKeypair parses base58 text of 64-byte seed||public keypair bytes.
// The result is secret material.
func DecodeKeypair(s string) (domain.KeypairBytes, error) {
	var out domain.KeypairBytes
	b, err := DecodeFixed(s, domain.KeypairBytesSize)
	if err != nil {
		return out, fmt.Errorf("keypair: %w", err)
	}
	copy(out[:], b)
	clear(b)
	return out, nil
}
