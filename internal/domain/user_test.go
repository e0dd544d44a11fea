package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser("Ada Lovelace", "ada@example.com", "$2a$10$hash")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Ada Lovelace", user.Name)
	})

	t.Run("trims name and email", func(t *testing.T) {
		user, err := NewUser("  Ada  ", "  ada@example.com  ", "$2a$10$hash")
		require.NoError(t, err)
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewUser("   ", "ada@example.com", "$2a$10$hash")
		require.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("malformed email", func(t *testing.T) {
		for _, email := range []string{"", "ada", "ada@", "@example.com", "ada@nodot"} {
			_, err := NewUser("Ada", email, "$2a$10$hash")
			assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
		}
	})

	t.Run("empty hashed password", func(t *testing.T) {
		_, err := NewUser("Ada", "ada@example.com", "")
		require.ErrorIs(t, err, ErrEmptyPassword)
	})
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	user, err := NewUser("Ada", "ada@example.com", "$2a$10$hash")
	require.NoError(t, err)

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "$2a$10$hash")
	assert.NotContains(t, string(data), "password")
}
