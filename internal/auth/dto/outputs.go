package dto

import (
	"time"

	"fogexplore/internal/players/models"
)

// RegisterData couples the public projection of a new account with its
// first credential
type RegisterData struct {
	User  models.PublicPlayer `json:"user"`
	Token string              `json:"token"`
}

// RegisterResponse represents the registration response body
type RegisterResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    RegisterData `json:"data"`
}

// RegisterOutput represents the output for the registration operation
type RegisterOutput struct {
	Body RegisterResponse `json:"body"`
}

// LoginData couples the session token with the public user projection
type LoginData struct {
	Token string              `json:"token"`
	User  models.PublicPlayer `json:"user"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    models.PublicPlayer `json:"user"`
}

// LoginOutput represents the output for the login operation
type LoginOutput struct {
	Body LoginResponse `json:"body"`
}

// LogoutResponse returns the updated stats snapshot after a session closes
type LogoutResponse struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Stats      models.Stats `json:"stats"`
	LastLogin  *time.Time   `json:"lastLogin,omitempty"`
	LastLogout *time.Time   `json:"lastLogout,omitempty"`
	IsOnline   bool         `json:"isOnline"`
}

// LogoutOutput represents the output for the logout operation
type LogoutOutput struct {
	Body LogoutResponse `json:"body"`
}
