package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, err := GenerateToken(secret, userID, "ama@example.com", "worker", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "ama@example.com", claims.Email)
	assert.Equal(t, "worker", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("right-secret"), uuid.New(), "a@b.com", "user", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken([]byte("wrong-secret"), token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, uuid.New(), "a@b.com", "user", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(secret, token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken([]byte("test-secret"), "not.a.token")
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	first := HashToken("some-token")
	assert.Len(t, first, 64)
	assert.Equal(t, first, HashToken("some-token"))
	assert.NotEqual(t, first, HashToken("other-token"))
}

func TestTokenStoreDisabled(t *testing.T) {
	ts := NewTokenStore(nil)

	assert.False(t, ts.Enabled())
	assert.NoError(t, ts.Revoke(context.Background(), "token", time.Hour))
	assert.False(t, ts.IsRevoked(context.Background(), "token"))
}

func TestAuthClaimsRoles(t *testing.T) {
	userID := uuid.New()
	claims := &AuthClaims{UserID: userID, Role: "admin"}

	assert.True(t, claims.IsAdmin())
	assert.False(t, claims.IsWorker())
	assert.True(t, claims.HasRole("admin"))
	assert.True(t, claims.IsOwner(userID))
	assert.False(t, claims.IsOwner(uuid.New()))
}
