package boundary_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigcore/internal/boundary"
	"sigcore/internal/domain"
)

const (
	zeroSeedPublicHex = "3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29"
	zeroSeedAddress   = "4zvwRjXUKGfvwnParsHAS3HuSVzV5cA4McphgmoCtajS"
	abandonPhrase     = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

func TestGenerateKeypair_Seeded(t *testing.T) {
	res, err := boundary.GenerateKeypair(make([]byte, 32))
	require.NoError(t, err)

	assert.Equal(t, zeroSeedPublicHex, hex.EncodeToString(res.PublicKeyBytes))
	assert.Equal(t, zeroSeedAddress, res.PublicKeyText)
	assert.Equal(t, make([]byte, 32), res.PrivateKeyBytes)
}

func TestGenerateKeypair_Random(t *testing.T) {
	a, err := boundary.GenerateKeypair(nil)
	require.NoError(t, err)
	b, err := boundary.GenerateKeypair(nil)
	require.NoError(t, err)

	assert.Len(t, a.PrivateKeyBytes, 32)
	assert.Len(t, a.PublicKeyBytes, 32)
	assert.NotEqual(t, a.PrivateKeyBytes, b.PrivateKeyBytes)
}

func TestGenerateKeypair_BadSeed(t *testing.T) {
	for _, n := range []int{31, 33} {
		_, err := boundary.GenerateKeypair(make([]byte, n))
		assert.ErrorIs(t, err, domain.ErrInvalidSeedLength)
	}
}

func TestSignVerify(t *testing.T) {
	res, err := boundary.GenerateKeypair(nil)
	require.NoError(t, err)

	sig, err := boundary.Sign(res.PrivateKeyBytes, []byte("hello"))
	require.NoError(t, err)
	require.Len(t, sig, 64)

	ok, err := boundary.Verify(res.PublicKeyBytes, []byte("hello"), sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = boundary.Verify(res.PublicKeyBytes, []byte("hellp"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSign_DoesNotRetainCallerBuffers(t *testing.T) {
	priv := make([]byte, 32)
	msg := []byte("hello")
	sig, err := boundary.Sign(priv, msg)
	require.NoError(t, err)

	priv[0] = 0xff
	msg[0] = 'j'
	again, err := boundary.Sign(make([]byte, 32), []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, again, sig)
}

func TestBoundary_LengthContract(t *testing.T) {
	_, err := boundary.Sign(make([]byte, 64), []byte("m"))
	assert.ErrorIs(t, err, domain.ErrInvalidLength)

	_, err = boundary.Verify(make([]byte, 33), []byte("m"), make([]byte, 64))
	assert.ErrorIs(t, err, domain.ErrInvalidLength)

	// An all-zero key is malformed, but the signature length is reported first.
	_, err = boundary.Verify(make([]byte, 32), []byte("m"), make([]byte, 65))
	assert.ErrorIs(t, err, domain.ErrInvalidLength)
	assert.NotErrorIs(t, err, domain.ErrMalformedPublicKey)
}

func TestBase58(t *testing.T) {
	res, err := boundary.GenerateKeypair(make([]byte, 32))
	require.NoError(t, err)

	assert.Equal(t, res.PublicKeyText, boundary.EncodeBase58(res.PublicKeyBytes))
	got, err := boundary.DecodeBase58(res.PublicKeyText)
	require.NoError(t, err)
	assert.Equal(t, res.PublicKeyBytes, got)

	_, err = boundary.DecodeBase58("0OIl")
	assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
}

func TestRecoverFromMnemonic(t *testing.T) {
	res, err := boundary.RecoverFromMnemonic(abandonPhrase, "")
	require.NoError(t, err)

	assert.Equal(t, "EHqmfkN89RJ7Y33CXM6uCzhVeuywHoJXZZLszBHHZy7o", res.PublicKeyText)
	assert.Equal(t, abandonPhrase, res.Phrase)
	require.Len(t, res.KeypairBytes, 64)
	assert.Equal(t, res.PrivateKeyBytes, res.KeypairBytes[:32])
	assert.Equal(t, res.PublicKeyBytes, res.KeypairBytes[32:])

	_, err = boundary.RecoverFromMnemonic("not a phrase", "")
	assert.ErrorIs(t, err, domain.ErrInvalidMnemonic)
}

func TestGenerateFromMnemonic_Recovers(t *testing.T) {
	res, err := boundary.GenerateFromMnemonic("pass")
	require.NoError(t, err)

	again, err := boundary.RecoverFromMnemonic(res.Phrase, "pass")
	require.NoError(t, err)
	assert.Equal(t, res.PublicKeyText, again.PublicKeyText)

	other, err := boundary.RecoverFromMnemonic(res.Phrase, "other")
	require.NoError(t, err)
	assert.NotEqual(t, res.PublicKeyText, other.PublicKeyText)
}

func TestKeypairResult_JSON(t *testing.T) {
	res, err := boundary.GenerateKeypair(make([]byte, 32))
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, zeroSeedAddress, fields["publicKeyText"])
	assert.Contains(t, fields, "publicKeyBytes")
	assert.Contains(t, fields, "privateKeyBytes")
}
