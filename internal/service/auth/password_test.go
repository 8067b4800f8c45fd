package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; production uses the default.
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("correct-horse-battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hashed)

	assert.NoError(t, hasher.Compare(hashed, "correct-horse-battery"))
	assert.Error(t, hasher.Compare(hashed, "wrong-password"))
}

func TestNewBcryptHasherDefaultsCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(-3)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
