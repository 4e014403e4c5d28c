package dto

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRequest carries the fields needed to create an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20" minLength:"3" maxLength:"20" doc:"Unique player name"`
	Email    string `json:"email" validate:"required,email" format:"email" doc:"Unique contact address"`
	Password string `json:"password" validate:"required,min=6" minLength:"6" doc:"Plaintext password, stored only as a bcrypt hash"`
}

// ValidateRegisterRequest validates the registration payload
func ValidateRegisterRequest(req *RegisterRequest) error {
	validate := validator.New()
	return validate.Struct(req)
}

// RegisterInput represents the input for the registration operation
type RegisterInput struct {
	Body RegisterRequest `json:"body"`
}

// LoginRequest carries the player credential pair
type LoginRequest struct {
	Email    string `json:"email" format:"email" doc:"Account e-mail"`
	Password string `json:"password" minLength:"1" doc:"Account password"`
}

// LoginInput represents the input for the login operation
type LoginInput struct {
	Body LoginRequest `json:"body"`
}

// LogoutRequest identifies the session to close
type LogoutRequest struct {
	UserID string `json:"userId" minLength:"1" doc:"Player document id"`
}

// LogoutInput represents the input for the logout operation
type LogoutInput struct {
	Body LogoutRequest `json:"body"`
}

// AdminLoginRequest carries the operator credential pair
type AdminLoginRequest struct {
	Email    string `json:"email" doc:"Operator e-mail"`
	Password string `json:"password" doc:"Operator password"`
}
