package services

import (
	"testing"

	"fogexplore/internal/auth/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("operator-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	service := &Service{tokens: NewTokenService()}

	token, err := service.AdminLogin(dto.AdminLoginRequest{
		Email:    "ops@example.com",
		Password: "operator-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := service.tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
	assert.Equal(t, "ops@example.com", user.Email)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("operator-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	service := &Service{tokens: NewTokenService()}

	// Wrong email and wrong password answer identically
	_, err = service.AdminLogin(dto.AdminLoginRequest{Email: "other@example.com", Password: "operator-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.AdminLogin(dto.AdminLoginRequest{Email: "ops@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginUnconfigured(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	service := &Service{tokens: NewTokenService()}

	_, err := service.AdminLogin(dto.AdminLoginRequest{Email: "ops@example.com", Password: "anything"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
