package middleware

import (
	"strings"

	"fogexplore/internal/auth/models"

	"github.com/danielgtaylor/huma/v2"
)

// TokenValidator verifies a signed credential and returns the identity it
// carries. Implemented by the auth module's token service.
type TokenValidator interface {
	ValidateToken(token string) (*models.AuthenticatedUser, error)
}

// AuthMiddleware provides authentication utilities for Huma operations.
// Every protected route funnels its Authorization header through here
// before any handler logic runs.
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// ExtractToken pulls the bearer token out of an Authorization header string
func (m *AuthMiddleware) ExtractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// RequireAuth validates the bearer token and returns the authenticated user
func (m *AuthMiddleware) RequireAuth(authHeader string) (*models.AuthenticatedUser, error) {
	token := m.ExtractToken(authHeader)
	if token == "" {
		return nil, huma.Error401Unauthorized("Authentication required")
	}

	user, err := m.validator.ValidateToken(token)
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid authentication token", err)
	}

	return user, nil
}

// RequireAdmin validates the bearer token and additionally requires the
// admin role claim
func (m *AuthMiddleware) RequireAdmin(authHeader string) (*models.AuthenticatedUser, error) {
	user, err := m.RequireAuth(authHeader)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin() {
		return nil, huma.Error403Forbidden("Admin access required")
	}

	return user, nil
}

// RequireSelfOrAdmin validates the bearer token and requires it to belong
// to the given player or to an operator
func (m *AuthMiddleware) RequireSelfOrAdmin(authHeader, userID string) (*models.AuthenticatedUser, error) {
	user, err := m.RequireAuth(authHeader)
	if err != nil {
		return nil, err
	}

	if user.UserID != userID && !user.IsAdmin() {
		return nil, huma.Error403Forbidden("Access denied")
	}

	return user, nil
}
