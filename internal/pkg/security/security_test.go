package security

import (
	"Ronghua/internal/api/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hash)

	assert.NoError(t, CheckPasswordHash("p1", hash))
	assert.ErrorIs(t, CheckPasswordHash("p2", hash), ErrInvalidCredentials)

	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(config.JWTConfig{Secret: "s3cret", Issuer: "ronghua", ExpireMinutes: 10})

	token, err := m.GenerateToken(42, "alice")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, int64(600), m.ExpiresIn())
}

func TestTokenManager_RejectsForeignToken(t *testing.T) {
	a := NewTokenManager(config.JWTConfig{Secret: "a", Issuer: "ronghua", ExpireMinutes: 10})
	b := NewTokenManager(config.JWTConfig{Secret: "b", Issuer: "ronghua", ExpireMinutes: 10})

	token, err := a.GenerateToken(1, "alice")
	require.NoError(t, err)

	_, err = b.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = a.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("admin123", "admin123"))
	assert.False(t, SecureCompare("admin123", "admin124"))
	assert.False(t, SecureCompare("admin", ""))
}
