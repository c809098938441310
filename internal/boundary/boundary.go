package boundary

import (
	"fmt"

	"sigcore/internal/codec"
	"sigcore/internal/crypto"
	"sigcore/internal/domain"
	"sigcore/internal/mnemonic"
	"sigcore/internal/util/memzero"
)

// KeypairResult is what GenerateKeypair hands back to the host.
// PrivateKeyBytes is unprotected secret material.
type KeypairResult struct {
	PublicKeyBytes  []byte `json:"publicKeyBytes"`
	PublicKeyText   string `json:"publicKeyText"`
	PrivateKeyBytes []byte `json:"privateKeyBytes"`
}

// PhraseResult is returned by the mnemonic entry points. KeypairBytes is the
// 64-byte seed||public form.
type PhraseResult struct {
	KeypairResult
	KeypairBytes []byte `json:"keypairBytes"`
	Phrase       string `json:"phrase"`
}

// GenerateKeypair returns a fresh keypair, or the keypair for seed when one is
// given. An empty seed means "generate"; any other length than 32 fails with
// domain.ErrInvalidSeedLength.
func GenerateKeypair(seed []byte) (KeypairResult, error) {
	var (
		kp  *crypto.Keypair
		err error
	)
	if len(seed) == 0 {
		kp, err = crypto.Generate(nil)
	} else {
		kp, err = crypto.FromSeed(seed)
	}
	if err != nil {
		return KeypairResult{}, err
	}
	defer kp.Destroy()
	return keypairResult(kp), nil
}

// GenerateFromMnemonic creates a 12-word phrase and the keypair it derives
// under passphrase.
func GenerateFromMnemonic(passphrase string) (PhraseResult, error) {
	phrase, err := mnemonic.Generate(nil, mnemonic.DefaultWords)
	if err != nil {
		return PhraseResult{}, err
	}
	return RecoverFromMnemonic(phrase, passphrase)
}

// RecoverFromMnemonic rebuilds the keypair for an existing phrase.
func RecoverFromMnemonic(phrase, passphrase string) (PhraseResult, error) {
	kp, err := mnemonic.Keypair(phrase, passphrase)
	if err != nil {
		return PhraseResult{}, err
	}
	defer kp.Destroy()
	pair := kp.ExportKeypairBytes()
	defer memzero.Zero(pair[:])
	return PhraseResult{
		KeypairResult: keypairResult(kp),
		KeypairBytes:  append([]byte(nil), pair[:]...),
		Phrase:        mnemonic.Normalize(phrase),
	}, nil
}

// Sign signs message with the 32-byte private seed.
func Sign(privateKeyBytes, message []byte) ([]byte, error) {
	if len(privateKeyBytes) != domain.PrivateSeedSize {
		return nil, fmt.Errorf(
			"private key: want %d bytes, got %d: %w",
			domain.PrivateSeedSize, len(privateKeyBytes), domain.ErrInvalidLength,
		)
	}
	kp, err := crypto.FromSeed(privateKeyBytes)
	if err != nil {
		return nil, err
	}
	defer kp.Destroy()
	sig := kp.Sign(message)
	return append([]byte(nil), sig[:]...), nil
}

// Verify reports whether signatureBytes is a valid signature of message by
// publicKeyBytes. A failed check is (false, nil); malformed input is an error.
func Verify(publicKeyBytes, message, signatureBytes []byte) (bool, error) {
	return crypto.Verify(publicKeyBytes, message, signatureBytes)
}

// EncodeBase58 returns the base58 text of b.
func EncodeBase58(b []byte) string { return codec.EncodeBase58(b) }

// DecodeBase58 decodes base58 text.
func DecodeBase58(s string) ([]byte, error) { return codec.DecodeBase58(s) }

func keypairResult(kp *crypto.Keypair) KeypairResult {
	seed := kp.ExportPrivateBytes()
	defer memzero.Zero(seed[:])
	return KeypairResult{
		PublicKeyBytes:  kp.PublicKeyBytes(),
		PublicKeyText:   kp.Address().String(),
		PrivateKeyBytes: append([]byte(nil), seed[:]...),
	}
}
