package models

// AuthenticatedUser is the identity extracted from a verified token.
// Role comes from the token claims, not a fresh document read.
type AuthenticatedUser struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the token carried the operator role claim
func (u *AuthenticatedUser) IsAdmin() bool {
	return u.Role == "admin"
}
