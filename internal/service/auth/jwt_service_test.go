package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack-api/internal/config"
)

const testJWTSecret = "test-secret-key-thats-at-least-32-chars-long"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testJWTSecret,
		TokenLifetimeMinutes: 60,
		BcryptCost:           bcryptMinCostForTests,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Run("accepts a sufficiently long secret", func(t *testing.T) {
		svc, err := NewJWTService(testAuthConfig())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("rejects a short secret", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTSecret = "too-short"
		_, err := NewJWTService(cfg)
		require.Error(t, err)
	})
}

func TestJWTServiceRoundTrip(t *testing.T) {
	ctx := context.Background()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "ada@example.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, 60*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestJWTServiceExpiry(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// Fixed clock so expiry can be driven without sleeping.
	now := issuedAt
	svc := &hmacJWTService{
		signingKey:    []byte(testJWTSecret),
		tokenLifetime: 60 * time.Minute,
		timeFunc:      func() time.Time { return now },
		clockSkew:     2 * time.Minute,
	}

	token, err := svc.GenerateToken(ctx, "ada@example.com")
	require.NoError(t, err)

	t.Run("valid within lifetime", func(t *testing.T) {
		now = issuedAt.Add(30 * time.Minute)
		_, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
	})

	t.Run("still valid within clock skew leeway", func(t *testing.T) {
		now = issuedAt.Add(61 * time.Minute)
		_, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
	})

	t.Run("expired past lifetime and leeway", func(t *testing.T) {
		now = issuedAt.Add(63 * time.Minute)
		_, err := svc.ValidateToken(ctx, token)
		require.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestJWTServiceRejectsBadTokens(t *testing.T) {
	ctx := context.Background()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "not-a-jwt")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = "another-secret-key-also-32-chars-minimum"
		other, err := NewJWTService(otherCfg)
		require.NoError(t, err)

		token, err := other.GenerateToken(ctx, "ada@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := svc.GenerateToken(ctx, "ada@example.com")
		require.NoError(t, err)

		tampered := token[:len(token)-4] + "AAAA"
		_, err = svc.ValidateToken(ctx, tampered)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
