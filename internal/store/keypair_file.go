package store

import (
	"encoding/json"
	"fmt"
	"os"

	"sigcore/internal/domain"
	"sigcore/internal/util/memzero"
)

// WriteKeypairFile writes keypair as a JSON array of 64 integers, the layout
// chain tooling expects for keypair files. The file is not encrypted.
func WriteKeypairFile(path string, keypair domain.KeypairBytes) error {
	defer memzero.Zero(keypair[:])
	ints := make([]int, len(keypair))
	for i, b := range keypair {
		ints[i] = int(b)
	}
	b, err := json.Marshal(ints)
	if err != nil {
		return err
	}
	defer memzero.Zero(b)
	clear(ints)
	return writeFile(path, b, recordMode)
}

// ReadKeypairFile parses a keypair file written by WriteKeypairFile or by
// chain tooling.
func ReadKeypairFile(path string) (domain.KeypairBytes, error) {
	var out domain.KeypairBytes
	b, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	defer memzero.Zero(b)

	var ints []int
	if err := json.Unmarshal(b, &ints); err != nil {
		return out, fmt.Errorf("%s: not a keypair file: %w", path, err)
	}
	defer clear(ints)
	if len(ints) != domain.KeypairBytesSize {
		return out, fmt.Errorf(
			"%s: want %d bytes, got %d: %w",
			path, domain.KeypairBytesSize, len(ints), domain.ErrInvalidLength,
		)
	}
	for i, v := range ints {
		if v < 0 || v > 0xff {
			return domain.KeypairBytes{}, fmt.Errorf("%s: byte %d out of range: %d", path, i, v)
		}
		out[i] = byte(v)
	}
	return out, nil
}
