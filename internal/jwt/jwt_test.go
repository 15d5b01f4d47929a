package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPairRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	access, refresh, err := svc.GenerateTokenPair("user-1", "ada@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Email)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	access, refresh, err := svc.GenerateTokenPair("user-1", "ada@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	access, _, err := svc.GenerateTokenPair("user-1", "ada@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	access, _, err := NewJWTService("secret-a", time.Hour).GenerateTokenPair("user-1", "")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).ValidateAccessToken(access)
	assert.Error(t, err)
}
