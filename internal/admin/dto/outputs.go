package dto

import "fogexplore/internal/players/models"

// AdminLoginResponse returns the minted operator token
type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// AdminLoginOutput represents the output for operator login
type AdminLoginOutput struct {
	Body AdminLoginResponse `json:"body"`
}

// AllUsersResponse lists every account, password hashes excluded
type AllUsersResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Users   []models.Player `json:"users"`
}

// AllUsersOutput represents the output for the account listing
type AllUsersOutput struct {
	Body AllUsersResponse `json:"body"`
}

// UserLookupOutput returns one account, password hash excluded
type UserLookupOutput struct {
	Body models.Player `json:"body"`
}

// DeleteUserResponse acknowledges an administrative removal
type DeleteUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteUserOutput represents the output for administrative removal
type DeleteUserOutput struct {
	Body DeleteUserResponse `json:"body"`
}
