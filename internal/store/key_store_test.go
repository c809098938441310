package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigcore/internal/crypto"
	"sigcore/internal/domain"
	"sigcore/internal/store"
)

const zeroSeedAddress = domain.Address("4zvwRjXUKGfvwnParsHAS3HuSVzV5cA4McphgmoCtajS")

func newTestStore(t *testing.T, opts ...store.Option) (*store.KeyFileStore, string) {
	t.Helper()
	home := t.TempDir()
	opts = append([]store.Option{
		store.WithKDFParams(domain.KDFScrypt, store.KDFParams{N: 1 << 10, R: 8, P: 1}),
		store.WithKDFParams(domain.KDFArgon2id, store.KDFParams{Time: 1, Memory: 64, Threads: 1}),
	}, opts...)
	return store.NewKeyFileStore(home, opts...), home
}

func keypairFromSeed(t *testing.T, seed byte) domain.KeypairBytes {
	t.Helper()
	s := make([]byte, 32)
	s[0] = seed
	kp, err := crypto.FromSeed(s)
	require.NoError(t, err)
	return kp.ExportKeypairBytes()
}

func TestKeyStore_SaveLoad(t *testing.T) {
	for _, kdf := range []domain.KDF{domain.KDFScrypt, domain.KDFArgon2id} {
		t.Run(kdf.String(), func(t *testing.T) {
			ks, home := newTestStore(t)
			kp := keypairFromSeed(t, 0)

			info, err := ks.SaveKey("correct horse", kdf, kp)
			require.NoError(t, err)
			assert.Equal(t, zeroSeedAddress, info.Address)
			assert.Equal(t, kdf, info.KDF)
			assert.NotEmpty(t, info.ID)

			st, err := os.Stat(filepath.Join(home, "keys", string(zeroSeedAddress)+".json"))
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())

			got, err := ks.LoadKey(zeroSeedAddress, "correct horse")
			require.NoError(t, err)
			assert.Equal(t, kp, got)
		})
	}
}

func TestKeyStore_WrongPassphrase(t *testing.T) {
	ks, _ := newTestStore(t)
	_, err := ks.SaveKey("correct", domain.KDFScrypt, keypairFromSeed(t, 1))
	require.NoError(t, err)

	kp := keypairFromSeed(t, 1)
	_, err = ks.LoadKey(kp.Public().Address(), "wrong")
	assert.ErrorIs(t, err, domain.ErrWrongPassphrase)
}

func TestKeyStore_SwappedRecordRejected(t *testing.T) {
	ks, home := newTestStore(t)
	a, b := keypairFromSeed(t, 1), keypairFromSeed(t, 2)
	_, err := ks.SaveKey("pw", domain.KDFScrypt, a)
	require.NoError(t, err)
	_, err = ks.SaveKey("pw", domain.KDFScrypt, b)
	require.NoError(t, err)

	dir := filepath.Join(home, "keys")
	pathA := filepath.Join(dir, a.Public().String()+".json")
	pathB := filepath.Join(dir, b.Public().String()+".json")

	// Copy A's sealed payload into B's record while keeping B's address.
	var recA, recB map[string]any
	rawA, err := os.ReadFile(pathA)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(rawA, &recA))
	rawB, err := os.ReadFile(pathB)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(rawB, &recB))
	recB["cipher"], recB["salt"] = recA["cipher"], recA["salt"]
	forged, err := json.Marshal(recB)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(pathB, forged, 0o600))

	_, err = ks.LoadKey(b.Public().Address(), "pw")
	assert.ErrorIs(t, err, domain.ErrWrongPassphrase)
}

func TestKeyStore_RejectsInconsistentKeypair(t *testing.T) {
	ks, _ := newTestStore(t)
	kp := keypairFromSeed(t, 3)
	kp[40] ^= 1

	_, err := ks.SaveKey("pw", domain.KDFScrypt, kp)
	assert.ErrorIs(t, err, domain.ErrKeypairMismatch)
}

func TestKeyStore_ListAndDelete(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	ks, _ := newTestStore(t, store.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}))

	keys, err := ks.ListKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	second, first := keypairFromSeed(t, 9), keypairFromSeed(t, 8)
	_, err = ks.SaveKey("pw", domain.KDFScrypt, first)
	require.NoError(t, err)
	_, err = ks.SaveKey("pw", domain.KDFArgon2id, second)
	require.NoError(t, err)

	keys, err = ks.ListKeys()
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, first.Public().Address(), keys[0].Address)
	assert.Equal(t, second.Public().Address(), keys[1].Address)
	assert.Equal(t, domain.KDFArgon2id, keys[1].KDF)

	require.NoError(t, ks.DeleteKey(first.Public().Address()))
	err = ks.DeleteKey(first.Public().Address())
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	_, err = ks.LoadKey(first.Public().Address(), "pw")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	keys, err = ks.ListKeys()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestKeyStore_RejectsPathLikeAddresses(t *testing.T) {
	ks, _ := newTestStore(t)
	for _, a := range []domain.Address{"../../etc/passwd", "", "abc"} {
		_, err := ks.LoadKey(a, "pw")
		assert.ErrorIs(t, err, domain.ErrInvalidEncoding, "%q", a)
		assert.ErrorIs(t, ks.DeleteKey(a), domain.ErrInvalidEncoding, "%q", a)
	}
}

func TestKeyStore_EmptyPassphrase(t *testing.T) {
	ks, _ := newTestStore(t)
	_, err := ks.SaveKey("", domain.KDFScrypt, keypairFromSeed(t, 0))
	assert.Error(t, err)
}

func TestKeyStore_RejectsHostileKDFParams(t *testing.T) {
	ks, home := newTestStore(t)
	_, err := ks.SaveKey("pw", domain.KDFScrypt, keypairFromSeed(t, 0))
	require.NoError(t, err)

	path := filepath.Join(home, "keys", string(zeroSeedAddress)+".json")
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	for name, params := range map[string]map[string]any{
		"huge N":           {"n": 1 << 30, "r": 8, "p": 1},
		"N times r 128GiB": {"n": 1 << 20, "r": 1024, "p": 1},
		"r alone":          {"n": 2, "r": 1 << 24, "p": 1},
		"many lanes":       {"n": 1 << 10, "r": 8, "p": 1 << 20},
	} {
		t.Run(name, func(t *testing.T) {
			var rec map[string]any
			require.NoError(t, json.Unmarshal(original, &rec))
			rec["kdfparams"] = params
			raw, err := json.Marshal(rec)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(path, raw, 0o600))

			_, err = ks.LoadKey(zeroSeedAddress, "pw")
			assert.ErrorContains(t, err, "out of range")
		})
	}
}

func TestKeyStore_RejectsHostileArgon2Params(t *testing.T) {
	ks, home := newTestStore(t)
	_, err := ks.SaveKey("pw", domain.KDFArgon2id, keypairFromSeed(t, 0))
	require.NoError(t, err)

	path := filepath.Join(home, "keys", string(zeroSeedAddress)+".json")
	var rec map[string]any
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &rec))
	rec["kdfparams"] = map[string]any{"time": 1, "memory": 1 << 30, "threads": 1}
	raw, err = json.Marshal(rec)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	_, err = ks.LoadKey(zeroSeedAddress, "pw")
	assert.ErrorContains(t, err, "out of range")
}
