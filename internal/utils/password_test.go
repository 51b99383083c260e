package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hash, "plaintext must never be stored")

	ok, err := h.Compare(hash, "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	for _, cost := range []int{0, -1, bcrypt.MaxCost + 1} {
		assert.Equal(t, PasswordCost, NewBcryptHasher(cost).cost)
	}

	hash, err := NewBcryptHasher(PasswordCost).Hash("p1")
	require.NoError(t, err)
	got, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestBcryptHasher_Errors(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)

	ok, err := h.Compare("not-a-bcrypt-hash", "p1")
	assert.Error(t, err, "malformed hash is an error, not a mismatch")
	assert.False(t, ok)
}
