package types

import "time"

// Address is the base58 text form of a PublicKey.
type Address string

// String returns the string form of the address.
func (a Address) String() string { return string(a) }

// KDF names a key-derivation function used to seal keystore records.
type KDF string

// Supported keystore KDFs.
const (
	KDFScrypt   KDF = "scrypt"
	KDFArgon2id KDF = "argon2id"
)

// String returns the string form of the KDF name.
func (k KDF) String() string { return string(k) }

// KeyInfo describes a stored key without any secret material.
type KeyInfo struct {
	ID      string    `json:"id"`
	Address Address   `json:"address"`
	KDF     KDF       `json:"kdf"`
	Created time.Time `json:"created"`
}

// GeneratedKey is returned when a key is created. Phrase is empty unless the
// key was derived from a mnemonic.
type GeneratedKey struct {
	Info   KeyInfo
	Phrase string
}
