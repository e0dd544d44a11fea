package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcryptMinCostForTests)

	t.Run("hash and compare round trip", func(t *testing.T) {
		hash, err := hasher.Hash("s3cretpass")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cretpass", hash)

		require.NoError(t, hasher.Compare(hash, "s3cretpass"))
	})

	t.Run("compare rejects a wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cretpass")
		require.NoError(t, err)

		require.Error(t, hasher.Compare(hash, "wrongpassword"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := hasher.Hash("s3cretpass")
		require.NoError(t, err)
		second, err := hasher.Hash("s3cretpass")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("zero cost falls back to the bcrypt default", func(t *testing.T) {
		h := NewBcryptHasher(0)
		hash, err := h.Hash("s3cretpass")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
