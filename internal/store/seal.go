package store

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"sigcore/internal/domain"
	"sigcore/internal/util/memzero"
)

const saltBytes = 16

// KDFParams holds the tunables of whichever KDF sealed a record.
type KDFParams struct {
	// scrypt
	N int `json:"n,omitempty"`
	R int `json:"r,omitempty"`
	P int `json:"p,omitempty"`

	// Argon2id
	Time    uint32 `json:"time,omitempty"`
	Memory  uint32 `json:"memory,omitempty"`
	Threads uint8  `json:"threads,omitempty"`
}

// DefaultScryptParams are used for new scrypt records.
func DefaultScryptParams() KDFParams { return KDFParams{N: 1 << 15, R: 8, P: 1} }

// DefaultArgon2Params are used for new Argon2id records (64 MiB, 4 lanes).
func DefaultArgon2Params() KDFParams { return KDFParams{Time: 1, Memory: 64 * 1024, Threads: 4} }

// Upper bounds accepted when reading records, so a crafted file cannot make
// LoadKey allocate without limit.
const (
	maxScryptMem    = 1 << 30 // bytes, 128*N*r
	maxScryptP      = 16
	maxArgon2Mem    = 1 << 20 // KiB
	maxArgon2Time   = 16
	maxArgon2Thread = 16
)

func (p KDFParams) check(kdf domain.KDF) error {
	switch kdf {
	case domain.KDFScrypt:
		if p.N < 2 || p.N&(p.N-1) != 0 || p.R < 1 || p.P < 1 || p.P > maxScryptP ||
			p.N > maxScryptMem/128/p.R {
			return fmt.Errorf("scrypt parameters out of range: N=%d r=%d p=%d", p.N, p.R, p.P)
		}
	case domain.KDFArgon2id:
		if p.Time < 1 || p.Time > maxArgon2Time || p.Memory < 8 || p.Memory > maxArgon2Mem ||
			p.Threads < 1 || p.Threads > maxArgon2Thread {
			return fmt.Errorf("argon2id parameters out of range: t=%d m=%d p=%d", p.Time, p.Memory, p.Threads)
		}
	default:
		return fmt.Errorf("unknown kdf %q", kdf)
	}
	return nil
}

// deriveKEK stretches passphrase into a ChaCha20-Poly1305 key.
func deriveKEK(kdf domain.KDF, p KDFParams, passphrase string, salt []byte) ([]byte, error) {
	if err := p.check(kdf); err != nil {
		return nil, err
	}
	pass := []byte(passphrase)
	defer memzero.Zero(pass)

	switch kdf {
	case domain.KDFArgon2id:
		return argon2.IDKey(pass, salt, p.Time, p.Memory, p.Threads, chacha20poly1305.KeySize), nil
	default:
		return scrypt.Key(pass, salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
	}
}

// seal encrypts plaintext under a fresh salt. The zero nonce is safe because
// every salt yields a new key.
func seal(kdf domain.KDF, p KDFParams, passphrase string, plaintext, ad []byte) (salt, ct []byte, err error) {
	salt = make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("reading salt: %v: %w", err, domain.ErrInsecureRandomnessUnavailable)
	}
	key, err := deriveKEK(kdf, p, passphrase, salt)
	if err != nil {
		return nil, nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	return salt, aead.Seal(nil, nonce[:], plaintext, additionalData(salt, ad)), nil
}

// open reverses seal. Authentication failure is domain.ErrWrongPassphrase.
func open(kdf domain.KDF, p KDFParams, passphrase string, salt, ct, ad []byte) ([]byte, error) {
	if len(salt) != saltBytes {
		return nil, fmt.Errorf("invalid salt size %d", len(salt))
	}
	key, err := deriveKEK(kdf, p, passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], ct, additionalData(salt, ad))
	if err != nil {
		return nil, domain.ErrWrongPassphrase
	}
	return pt, nil
}

func additionalData(salt, ad []byte) []byte {
	out := make([]byte, 0, len(salt)+len(ad))
	return append(append(out, salt...), ad...)
}
