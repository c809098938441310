package memzero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sigcore/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	memzero.Zero(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	memzero.Zero(nil)
}

func TestZeroAll(t *testing.T) {
	a, b := []byte{9, 9}, []byte{7}
	memzero.ZeroAll(a, nil, b)
	assert.Equal(t, []byte{0, 0}, a)
	assert.Equal(t, []byte{0}, b)
}
