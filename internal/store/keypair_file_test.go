package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigcore/internal/domain"
	"sigcore/internal/store"
)

func TestKeypairFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.json")
	kp := keypairFromSeed(t, 5)

	require.NoError(t, store.WriteKeypairFile(path, kp))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var ints []int
	require.NoError(t, json.Unmarshal(raw, &ints))
	require.Len(t, ints, 64)
	assert.Equal(t, 5, ints[0])

	got, err := store.ReadKeypairFile(path)
	require.NoError(t, err)
	assert.Equal(t, kp, got)
}

func TestKeypairFile_Rejects(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	_, err := store.ReadKeypairFile(write("short.json", "[1,2,3]"))
	assert.ErrorIs(t, err, domain.ErrInvalidLength)

	big := make([]int, 64)
	big[10] = 256
	raw, err := json.Marshal(big)
	require.NoError(t, err)
	_, err = store.ReadKeypairFile(write("range.json", string(raw)))
	assert.ErrorContains(t, err, "out of range")

	_, err = store.ReadKeypairFile(write("junk.json", `"base64?"`))
	assert.ErrorContains(t, err, "not a keypair file")

	_, err = store.ReadKeypairFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
