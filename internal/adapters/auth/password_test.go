package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Hash_and_Compare(t *testing.T) {
	h := NewBcryptHasher(10)
	code := "operator-access-code"

	hash, err := h.Hash(code)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	err = h.Compare(hash, code)
	require.NoError(t, err)
}

func TestBcryptHasher_Compare_wrong_code(t *testing.T) {
	h := NewBcryptHasher(10)
	hash, err := h.Hash("correct")
	require.NoError(t, err)

	err = h.Compare(hash, "wrong")
	assert.Error(t, err)
}
