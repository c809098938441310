package types

import "errors"

// Error kinds returned by the signer. All of them are ordinary values; a
// signature that simply fails to verify is reported as false, not as an error.
var (
	// ErrInvalidSeedLength is returned when a seed is not exactly 32 bytes.
	ErrInvalidSeedLength = errors.New("invalid seed length")

	// ErrInvalidEncoding is returned for text outside the base58 alphabet,
	// non-canonical text, or text that decodes to the wrong length.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidLength is returned when a byte buffer does not have the fixed
	// size its type requires.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInsecureRandomnessUnavailable is returned when the entropy source fails.
	ErrInsecureRandomnessUnavailable = errors.New("secure randomness unavailable")

	// ErrMalformedPublicKey is returned when a public key is not a canonical,
	// non-small-order curve point.
	ErrMalformedPublicKey = errors.New("malformed public key")

	// ErrMalformedSignature is returned when R is not a canonical, non-small-order
	// point or S is not reduced modulo the group order.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrKeypairMismatch is returned when the public half of exported keypair
	// bytes does not derive from the seed half.
	ErrKeypairMismatch = errors.New("keypair public key does not match seed")

	// ErrInvalidMnemonic is returned for phrases with unknown words or a bad checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrWrongPassphrase is returned when a keystore record cannot be opened.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted keystore")

	// ErrKeyNotFound is returned when no keystore record exists for an address.
	ErrKeyNotFound = errors.New("key not found")
)
