package mnemonic

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"sigcore/internal/crypto"
	"sigcore/internal/domain"
	"sigcore/internal/util/memzero"
)

const (
	// DefaultWords is the phrase length used when none is requested.
	DefaultWords = 12

	// SeedSize is the length of the PBKDF2 output.
	SeedSize = 64

	pbkdf2Rounds = 2048
	saltPrefix   = "mnemonic"
)

// Generate returns a new English phrase of the given word count, reading
// entropy from r (crypto/rand.Reader when nil).
func Generate(r io.Reader, words int) (string, error) {
	size, err := entropySize(words)
	if err != nil {
		return "", err
	}
	if r == nil {
		r = rand.Reader
	}
	entropy := make([]byte, size)
	defer memzero.Zero(entropy)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return "", fmt.Errorf("reading entropy: %v: %w", err, domain.ErrInsecureRandomnessUnavailable)
	}
	return bip39.NewMnemonic(entropy)
}

// Validate checks that every word is in the wordlist and the checksum matches.
func Validate(phrase string) error {
	if !bip39.IsMnemonicValid(Normalize(phrase)) {
		return domain.ErrInvalidMnemonic
	}
	return nil
}

// Normalize collapses runs of whitespace to single spaces.
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(phrase), " ")
}

// Seed stretches phrase and passphrase into the 64-byte BIP39 seed. It does
// not validate the phrase.
func Seed(phrase, passphrase string) [SeedSize]byte {
	password := []byte(norm.NFKD.String(phrase))
	salt := []byte(norm.NFKD.String(saltPrefix + passphrase))
	defer memzero.ZeroAll(password, salt)

	key := pbkdf2.Key(password, salt, pbkdf2Rounds, SeedSize, sha512.New)
	defer memzero.Zero(key)

	var out [SeedSize]byte
	copy(out[:], key)
	return out
}

// Keypair validates phrase and derives its keypair.
func Keypair(phrase, passphrase string) (*crypto.Keypair, error) {
	phrase = Normalize(phrase)
	if err := Validate(phrase); err != nil {
		return nil, err
	}
	seed := Seed(phrase, passphrase)
	defer memzero.Zero(seed[:])
	return crypto.FromSeed(seed[:domain.PrivateSeedSize])
}

func entropySize(words int) (int, error) {
	switch words {
	case 12, 15, 18, 21, 24:
		return words * 4 / 3, nil
	default:
		return 0, fmt.Errorf("unsupported phrase length %d (want 12, 15, 18, 21 or 24): %w", words, domain.ErrInvalidMnemonic)
	}
}
