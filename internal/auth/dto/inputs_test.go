package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: RegisterRequest{
				Username: "explorer",
				Email:    "explorer@example.com",
				Password: "secret123",
			},
		},
		{
			name: "username too short",
			request: RegisterRequest{
				Username: "ab",
				Email:    "explorer@example.com",
				Password: "secret123",
			},
			wantErr: true,
		},
		{
			name: "username too long",
			request: RegisterRequest{
				Username: "this-username-is-way-too-long",
				Email:    "explorer@example.com",
				Password: "secret123",
			},
			wantErr: true,
		},
		{
			name: "invalid email",
			request: RegisterRequest{
				Username: "explorer",
				Email:    "not-an-email",
				Password: "secret123",
			},
			wantErr: true,
		},
		{
			name: "password too short",
			request: RegisterRequest{
				Username: "explorer",
				Email:    "explorer@example.com",
				Password: "short",
			},
			wantErr: true,
		},
		{
			name:    "all fields missing",
			request: RegisterRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegisterRequest(&tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
