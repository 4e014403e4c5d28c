package middleware

import (
	"errors"
	"testing"

	"fogexplore/internal/auth/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	user *models.AuthenticatedUser
	err  error
}

func (s *stubValidator) ValidateToken(token string) (*models.AuthenticatedUser, error) {
	return s.user, s.err
}

func TestExtractToken(t *testing.T) {
	m := NewAuthMiddleware(&stubValidator{})

	assert.Equal(t, "abc123", m.ExtractToken("Bearer abc123"))
	assert.Equal(t, "", m.ExtractToken("abc123"))
	assert.Equal(t, "", m.ExtractToken(""))
	assert.Equal(t, "", m.ExtractToken("Basic abc123"))
}

func TestRequireAuth(t *testing.T) {
	player := &models.AuthenticatedUser{UserID: "64b1f0c2a9e1d3f4b5a6c7d8", Role: "player"}

	m := NewAuthMiddleware(&stubValidator{user: player})

	user, err := m.RequireAuth("Bearer good-token")
	require.NoError(t, err)
	assert.Equal(t, player.UserID, user.UserID)

	_, err = m.RequireAuth("")
	assert.Error(t, err)

	_, err = m.RequireAuth("good-token")
	assert.Error(t, err)

	broken := NewAuthMiddleware(&stubValidator{err: errors.New("expired")})
	_, err = broken.RequireAuth("Bearer good-token")
	assert.Error(t, err)
}

func TestRequireAdmin(t *testing.T) {
	admin := &models.AuthenticatedUser{Email: "ops@example.com", Role: "admin"}
	player := &models.AuthenticatedUser{UserID: "64b1f0c2a9e1d3f4b5a6c7d8", Role: "player"}

	m := NewAuthMiddleware(&stubValidator{user: admin})
	user, err := m.RequireAdmin("Bearer admin-token")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	m = NewAuthMiddleware(&stubValidator{user: player})
	_, err = m.RequireAdmin("Bearer player-token")
	assert.Error(t, err)
}

func TestRequireSelfOrAdmin(t *testing.T) {
	player := &models.AuthenticatedUser{UserID: "64b1f0c2a9e1d3f4b5a6c7d8", Role: "player"}
	admin := &models.AuthenticatedUser{Email: "ops@example.com", Role: "admin"}

	m := NewAuthMiddleware(&stubValidator{user: player})

	_, err := m.RequireSelfOrAdmin("Bearer token", player.UserID)
	assert.NoError(t, err)

	_, err = m.RequireSelfOrAdmin("Bearer token", "someone-else")
	assert.Error(t, err)

	m = NewAuthMiddleware(&stubValidator{user: admin})
	_, err = m.RequireSelfOrAdmin("Bearer token", "someone-else")
	assert.NoError(t, err)
}
