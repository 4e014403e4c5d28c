package routes

import (
	"context"
	"errors"

	"fogexplore/internal/auth/dto"
	"fogexplore/internal/auth/services"
	"fogexplore/internal/players"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-playground/validator/v10"
)

// RegisterAuthRoutes registers the account lifecycle routes on the shared
// Huma API
func RegisterAuthRoutes(api huma.API, basePath string, service *services.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "auth-register",
		Method:        "POST",
		Path:          basePath + "/userRegister",
		Summary:       "Register a player account",
		Description:   "Creates an account, sends a best-effort welcome mail and returns a signed credential",
		Tags:          []string{"Auth"},
		DefaultStatus: 201,
	}, func(ctx context.Context, input *dto.RegisterInput) (*dto.RegisterOutput, error) {
		data, err := service.Register(ctx, input.Body)
		if err != nil {
			var verr validator.ValidationErrors
			switch {
			case errors.As(err, &verr):
				return nil, huma.Error422UnprocessableEntity("Invalid registration fields", err)
			case errors.Is(err, players.ErrDuplicateIdentity):
				return nil, huma.Error409Conflict("User or email already in use")
			default:
				return nil, huma.Error500InternalServerError("Something went wrong during registration", err)
			}
		}

		return &dto.RegisterOutput{
			Body: dto.RegisterResponse{
				Success: true,
				Message: "User registered successfully",
				Data:    *data,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "auth-login",
		Method:      "POST",
		Path:        basePath + "/userLogin",
		Summary:     "Player login",
		Description: "Verifies credentials, marks the player online and returns a session token",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *dto.LoginInput) (*dto.LoginOutput, error) {
		data, err := service.Login(ctx, input.Body)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return nil, huma.Error401Unauthorized("Invalid email or password")
			}
			return nil, huma.Error500InternalServerError("Server error", err)
		}

		return &dto.LoginOutput{
			Body: dto.LoginResponse{
				Message: "Login successful",
				Token:   data.Token,
				User:    data.User,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "auth-logout",
		Method:      "POST",
		Path:        basePath + "/userLogout",
		Summary:     "Player logout",
		Description: "Folds the session time into stats.timePlayed and flips presence offline",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *dto.LogoutInput) (*dto.LogoutOutput, error) {
		player, err := service.Logout(ctx, input.Body.UserID)
		if err != nil {
			switch {
			case errors.Is(err, players.ErrMalformedID):
				return nil, huma.Error400BadRequest("User ID required")
			case errors.Is(err, services.ErrNotLoggedIn):
				return nil, huma.Error400BadRequest("User not logged in")
			case errors.Is(err, players.ErrNotFound):
				return nil, huma.Error400BadRequest("User not logged in")
			default:
				return nil, huma.Error500InternalServerError("Server error", err)
			}
		}

		return &dto.LogoutOutput{
			Body: dto.LogoutResponse{
				Success:    true,
				Message:    "Logout successful",
				Stats:      player.Stats,
				LastLogin:  player.LastLogin,
				LastLogout: player.LastLogout,
				IsOnline:   player.IsOnline,
			},
		}, nil
	})
}
