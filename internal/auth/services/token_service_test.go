package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokens := NewTokenService()

	token, expiresAt, err := tokens.GenerateSessionToken("64b1f0c2a9e1d3f4b5a6c7d8", "player@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	user, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64b1f0c2a9e1d3f4b5a6c7d8", user.UserID)
	assert.Equal(t, "player@example.com", user.Email)
	assert.Equal(t, "player", user.Role)
	assert.False(t, user.IsAdmin())
}

func TestAdminTokenCarriesAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokens := NewTokenService()

	token, _, err := tokens.GenerateAdminToken("ops@example.com")
	require.NoError(t, err)

	user, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", user.Email)
	assert.Equal(t, "admin", user.Role)
	assert.True(t, user.IsAdmin())
	assert.Empty(t, user.UserID)
}

func TestRegistrationTokenCarriesRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokens := NewTokenService()

	token, _, err := tokens.GenerateRegistrationToken("64b1f0c2a9e1d3f4b5a6c7d8", "player")
	require.NoError(t, err)

	user, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64b1f0c2a9e1d3f4b5a6c7d8", user.UserID)
	assert.Equal(t, "player", user.Role)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokens := NewTokenService()

	token, _, err := tokens.GenerateSessionToken("64b1f0c2a9e1d3f4b5a6c7d8", "player@example.com")
	require.NoError(t, err)

	_, err = tokens.ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = tokens.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	issuer := NewTokenService()

	token, _, err := issuer.GenerateSessionToken("64b1f0c2a9e1d3f4b5a6c7d8", "player@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	verifier := NewTokenService()

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredSessionTokenFailsValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SESSION_TOKEN_TTL", "-1h")

	tokens := NewTokenService()

	token, _, err := tokens.GenerateSessionToken("64b1f0c2a9e1d3f4b5a6c7d8", "player@example.com")
	require.NoError(t, err)

	_, err = tokens.ValidateToken(token)
	assert.Error(t, err)
}
