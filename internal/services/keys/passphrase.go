package keys

import (
	"errors"
	"fmt"
	"unicode"
)

const (
	// minPassphraseLength defines the minimum number of characters required
	// for a passphrase under the strict policy.
	minPassphraseLength = 12
)

var (
	// ErrEmptyPassphrase is returned when no passphrase is given for a keystore operation.
	ErrEmptyPassphrase = errors.New("passphrase required")

	// ErrWeakPassphrase is returned when the strict policy is on and the
	// passphrase fails it.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

func checkPassphrase(passphrase string, strict bool) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}
	if strict && !isSecurePassphrase(passphrase) {
		return ErrWeakPassphrase
	}
	return nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len([]rune(passphrase)) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
