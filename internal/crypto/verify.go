package crypto

import (
	"bytes"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"filippo.io/edwards25519"

	"sigcore/internal/domain"
)

// Verifier checks signatures against one decoded public key. It holds no
// mutable state and is safe for concurrent use.
type Verifier struct {
	pub   domain.PublicKey
	point *edwards25519.Point
}

// NewVerifier decodes and validates pub once so it can be reused.
func NewVerifier(pub []byte) (*Verifier, error) {
	if len(pub) != domain.PublicKeySize {
		return nil, fmt.Errorf(
			"public key: want %d bytes, got %d: %w",
			domain.PublicKeySize, len(pub), domain.ErrInvalidLength,
		)
	}
	A, ok := decodeStrictPoint(pub)
	if !ok {
		return nil, domain.ErrMalformedPublicKey
	}
	v := &Verifier{point: A}
	copy(v.pub[:], pub)
	return v, nil
}

// PublicKey returns the key this verifier checks against.
func (v *Verifier) PublicKey() domain.PublicKey { return v.pub }

// Verify reports whether sig is a valid signature of message.
//
// A malformed signature encoding is an error; a well-formed signature that
// does not verify returns false and a nil error.
func (v *Verifier) Verify(message, sig []byte) (bool, error) {
	if len(sig) != domain.SignatureSize {
		return false, sigLengthError(len(sig))
	}
	return verifyPoint(v.point, v.pub[:], message, sig)
}

// Verify checks sig over message with the 32-byte public key pub.
//
// Inputs are validated before any curve arithmetic: wrong lengths yield
// domain.ErrInvalidLength, an undecodable, non-canonical or small-order key
// yields domain.ErrMalformedPublicKey, and a non-canonical S or an invalid R
// yields domain.ErrMalformedSignature. Only then is the cofactorless equation
// [S]B = R + [k]A evaluated; failure is reported as (false, nil).
func Verify(pub, message, sig []byte) (bool, error) {
	if len(sig) != domain.SignatureSize {
		return false, sigLengthError(len(sig))
	}
	v, err := NewVerifier(pub)
	if err != nil {
		return false, err
	}
	return v.Verify(message, sig)
}

// VerifySignature is Verify over the fixed-size domain types.
func VerifySignature(pub domain.PublicKey, message []byte, sig domain.Signature) (bool, error) {
	return Verify(pub[:], message, sig[:])
}

func sigLengthError(got int) error {
	return fmt.Errorf(
		"signature: want %d bytes, got %d: %w",
		domain.SignatureSize, got, domain.ErrInvalidLength,
	)
}

func verifyPoint(A *edwards25519.Point, pub, message, sig []byte) (bool, error) {
	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false, fmt.Errorf("non-canonical S: %w", domain.ErrMalformedSignature)
	}
	if _, ok := decodeStrictPoint(sig[:32]); !ok {
		return false, fmt.Errorf("invalid R: %w", domain.ErrMalformedSignature)
	}

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(pub)
	h.Write(message)
	var digest [sha512.Size]byte
	k, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(digest[:0]))
	if err != nil {
		return false, err
	}

	minusA := new(edwards25519.Point).Negate(A)
	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, minusA, S)
	return subtle.ConstantTimeCompare(sig[:32], R.Bytes()) == 1, nil
}

// decodeStrictPoint accepts only canonical encodings of points outside the
// small-order subgroup.
func decodeStrictPoint(b []byte) (*edwards25519.Point, bool) {
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, false
	}
	if !bytes.Equal(p.Bytes(), b) {
		return nil, false
	}
	if new(edwards25519.Point).MultByCofactor(p).Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, false
	}
	return p, true
}
