package routes

import (
	"context"
	"errors"

	"fogexplore/internal/admin/dto"
	"fogexplore/internal/admin/services"
	authDto "fogexplore/internal/auth/dto"
	authServices "fogexplore/internal/auth/services"
	"fogexplore/internal/players"
	"fogexplore/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterAdminRoutes registers the operator routes on the shared Huma API.
// Everything except adminLogin requires an admin token.
func RegisterAdminRoutes(api huma.API, basePath string, service *services.Service, authService *authServices.Service, auth *middleware.AuthMiddleware) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-login",
		Method:      "POST",
		Path:        basePath + "/admin/adminLogin",
		Summary:     "Operator login",
		Description: "Checks the configured operator credential pair and mints a short-lived admin token",
		Tags:        []string{"Admin"},
	}, func(ctx context.Context, input *dto.AdminLoginInput) (*dto.AdminLoginOutput, error) {
		token, err := authService.AdminLogin(authDto.AdminLoginRequest{
			Email:    input.Body.Email,
			Password: input.Body.Password,
		})
		if err != nil {
			if errors.Is(err, authServices.ErrInvalidCredentials) {
				return nil, huma.Error401Unauthorized("Invalid email or password")
			}
			return nil, huma.Error500InternalServerError("Server error", err)
		}

		return &dto.AdminLoginOutput{
			Body: dto.AdminLoginResponse{
				Success: true,
				Message: "Admin login successful",
				Token:   token,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "admin-all-users",
		Method:      "GET",
		Path:        basePath + "/admin/allUsers",
		Summary:     "List every account",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearerAuth": {}}},
	}, func(ctx context.Context, input *dto.AllUsersInput) (*dto.AllUsersOutput, error) {
		if _, err := auth.RequireAdmin(input.Authorization); err != nil {
			return nil, err
		}

		users, err := service.ListUsers(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("Error fetching users", err)
		}

		return &dto.AllUsersOutput{
			Body: dto.AllUsersResponse{
				Success: true,
				Count:   len(users),
				Users:   users,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "admin-get-user",
		Method:      "GET",
		Path:        basePath + "/admin/user/{id}",
		Summary:     "Inspect one account",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearerAuth": {}}},
	}, func(ctx context.Context, input *dto.UserLookupInput) (*dto.UserLookupOutput, error) {
		if _, err := auth.RequireAdmin(input.Authorization); err != nil {
			return nil, err
		}

		user, err := service.GetUser(ctx, input.ID)
		if err != nil {
			switch {
			case errors.Is(err, players.ErrMalformedID):
				return nil, huma.Error400BadRequest("Invalid User ID format")
			case errors.Is(err, players.ErrNotFound):
				return nil, huma.Error404NotFound("User not found")
			default:
				return nil, huma.Error500InternalServerError("Server error", err)
			}
		}

		return &dto.UserLookupOutput{Body: *user}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "admin-delete-user",
		Method:      "DELETE",
		Path:        basePath + "/admin/deleteUser/{id}",
		Summary:     "Remove an account",
		Tags:        []string{"Admin"},
		Security:    []map[string][]string{{"bearerAuth": {}}},
	}, func(ctx context.Context, input *dto.DeleteUserInput) (*dto.DeleteUserOutput, error) {
		if _, err := auth.RequireAdmin(input.Authorization); err != nil {
			return nil, err
		}

		if err := service.DeleteUser(ctx, input.ID); err != nil {
			switch {
			case errors.Is(err, players.ErrMalformedID):
				return nil, huma.Error400BadRequest("Invalid User ID format")
			case errors.Is(err, players.ErrNotFound):
				return nil, huma.Error404NotFound("User not found")
			default:
				return nil, huma.Error500InternalServerError("Server error", err)
			}
		}

		return &dto.DeleteUserOutput{
			Body: dto.DeleteUserResponse{
				Success: true,
				Message: "User deleted successfully",
			},
		}, nil
	})
}
