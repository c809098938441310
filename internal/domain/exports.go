package domain

import (
	interfaces "sigcore/internal/domain/interfaces"
	types "sigcore/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PublicKey    = types.PublicKey
	PrivateSeed  = types.PrivateSeed
	KeypairBytes = types.KeypairBytes
	Signature    = types.Signature
	Address      = types.Address
	KDF          = types.KDF
	KeyInfo      = types.KeyInfo
	GeneratedKey = types.GeneratedKey
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Signer     = interfaces.Signer
	KeyStore   = interfaces.KeyStore
	KeyService = interfaces.KeyService
)

// Sizes re-exported from the types subpackage.
const (
	PublicKeySize    = types.PublicKeySize
	PrivateSeedSize  = types.PrivateSeedSize
	KeypairBytesSize = types.KeypairBytesSize
	SignatureSize    = types.SignatureSize
)

// KDF names re-exported from the types subpackage.
const (
	KDFScrypt   = types.KDFScrypt
	KDFArgon2id = types.KDFArgon2id
)

// Error kinds re-exported from the types subpackage.
var (
	ErrInvalidSeedLength             = types.ErrInvalidSeedLength
	ErrInvalidEncoding               = types.ErrInvalidEncoding
	ErrInvalidLength                 = types.ErrInvalidLength
	ErrInsecureRandomnessUnavailable = types.ErrInsecureRandomnessUnavailable
	ErrMalformedPublicKey            = types.ErrMalformedPublicKey
	ErrMalformedSignature            = types.ErrMalformedSignature
	ErrKeypairMismatch               = types.ErrKeypairMismatch
	ErrInvalidMnemonic               = types.ErrInvalidMnemonic
	ErrWrongPassphrase               = types.ErrWrongPassphrase
	ErrKeyNotFound                   = types.ErrKeyNotFound
)

// Constructors re-exported from the types subpackage.
var (
	PublicKeyFromSlice    = types.PublicKeyFromSlice
	SignatureFromSlice    = types.SignatureFromSlice
	KeypairBytesFromSlice = types.KeypairBytesFromSlice
	MustPublicKey         = types.MustPublicKey
	MustSignature         = types.MustSignature
)
