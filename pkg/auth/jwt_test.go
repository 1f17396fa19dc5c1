package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	const secret = "test-secret"
	manager := NewJWTManager(secret)

	t.Run("valid token round-trips claims", func(t *testing.T) {
		signed := signToken(t, secret, &Claims{
			UserID: "550e8400-e29b-41d4-a716-446655441111",
			Email:  "user@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := manager.ValidateToken(signed)
		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655441111", claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		signed := signToken(t, secret, &Claims{
			UserID: "550e8400-e29b-41d4-a716-446655441111",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		_, err := manager.ValidateToken(signed)
		assert.Error(t, err)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		signed := signToken(t, "another-secret", &Claims{
			UserID: "550e8400-e29b-41d4-a716-446655441111",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		_, err := manager.ValidateToken(signed)
		assert.Error(t, err)
	})
}
