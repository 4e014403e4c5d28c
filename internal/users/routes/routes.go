package routes

import (
	"context"
	"errors"

	"fogexplore/internal/players"
	"fogexplore/internal/users/dto"
	"fogexplore/internal/users/services"
	"fogexplore/pkg/middleware"
	"fogexplore/pkg/routing"

	"github.com/danielgtaylor/huma/v2"
)

// mapPlayerError converts the shared id/lookup errors to transport errors
func mapPlayerError(err error) error {
	switch {
	case errors.Is(err, players.ErrMalformedID):
		return huma.Error400BadRequest("Invalid User ID format")
	case errors.Is(err, players.ErrNotFound):
		return huma.Error404NotFound("User not found")
	default:
		return nil
	}
}

// RegisterUserRoutes registers the profile and checkpoint routes on the
// shared Huma API. The mutating account routes require the caller to be
// the player itself or an operator.
func RegisterUserRoutes(api huma.API, basePath string, service *services.Service, auth *middleware.AuthMiddleware) {
	huma.Register(api, huma.Operation{
		OperationID: "users-get-profile",
		Method:      "GET",
		Path:        basePath + "/user/userProfile/{id}",
		Summary:     "Fetch a player profile",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *dto.ProfileInput) (*dto.ProfileOutput, error) {
		player, err := service.GetProfile(ctx, input.ID)
		if err != nil {
			if mapped := mapPlayerError(err); mapped != nil {
				return nil, mapped
			}
			return nil, huma.Error500InternalServerError("Server error", err)
		}
		return &dto.ProfileOutput{Body: *player}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "users-update-user",
		Method:      "PUT",
		Path:        basePath + "/user/updateUser/{id}",
		Summary:     "Generic partial update of a player document",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearerAuth": {}}},
	}, func(ctx context.Context, input *dto.UpdateUserInput) (*dto.UpdateUserOutput, error) {
		if _, err := auth.RequireSelfOrAdmin(input.Authorization, input.ID); err != nil {
			return nil, err
		}

		player, err := service.UpdateProfile(ctx, input.ID, input.Body)
		if err != nil {
			if mapped := mapPlayerError(err); mapped != nil {
				return nil, mapped
			}
			if errors.Is(err, services.ErrNoUpdatableFields) {
				return nil, huma.Error400BadRequest("No updatable fields in payload")
			}
			return nil, huma.Error500InternalServerError("Error updating user", err)
		}
		return &dto.UpdateUserOutput{Body: *player}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "users-delete-checkpoint",
		Method:      "DELETE",
		Path:        basePath + "/user/deleteCheckpoint",
		Summary:     "Remove checkpoints by index or coordinate match",
		Description: "Either deletion path re-syncs stats.totalCheckpoints to the surviving length",
		Tags:        []string{"Checkpoints"},
	}, func(ctx context.Context, input *dto.DeleteCheckpointInput) (*dto.DeleteCheckpointOutput, error) {
		checkpoints, err := service.DeleteCheckpoint(ctx, input.Body)
		if err != nil {
			if mapped := mapPlayerError(err); mapped != nil {
				return nil, mapped
			}
			switch {
			case errors.Is(err, services.ErrInvalidCheckpointIndex):
				return nil, huma.Error400BadRequest("Invalid checkpoint index")
			case errors.Is(err, services.ErrCheckpointSelector):
				return nil, huma.Error400BadRequest("Either index or lat/lng is required")
			default:
				return nil, huma.Error500InternalServerError("Internal server error", err)
			}
		}

		return &dto.DeleteCheckpointOutput{
			Body: dto.DeleteCheckpointResponse{
				Message:     "Checkpoint deleted successfully",
				Checkpoints: checkpoints,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "users-path-to-checkpoint",
		Method:      "GET",
		Path:        basePath + "/user/path",
		Summary:     "Route from the player's position to a checkpoint",
		Description: "Delegates to the directions provider and returns geometry, distance and duration verbatim",
		Tags:        []string{"Checkpoints"},
	}, func(ctx context.Context, input *dto.PathInput) (*dto.PathOutput, error) {
		route, err := service.PathToCheckpoint(ctx, input.UserID, input.Lat, input.Lng, input.CheckpointIndex)
		if err != nil {
			if mapped := mapPlayerError(err); mapped != nil {
				return nil, mapped
			}
			switch {
			case errors.Is(err, services.ErrCheckpointNotFound):
				return nil, huma.Error404NotFound("Checkpoint not found")
			case errors.Is(err, routing.ErrUpstream):
				return nil, huma.Error502BadGateway("Error fetching path")
			default:
				return nil, huma.Error500InternalServerError("Error fetching path", err)
			}
		}
		return &dto.PathOutput{Body: *route}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "users-status-update",
		Method:      "POST",
		Path:        basePath + "/user/statusUpdate",
		Summary:     "Toggle a player's presence flag",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *dto.StatusUpdateInput) (*dto.StatusUpdateOutput, error) {
		player, err := service.SetPresence(ctx, input.Body.UserID, input.Body.IsOnline)
		if err != nil {
			if mapped := mapPlayerError(err); mapped != nil {
				return nil, mapped
			}
			return nil, huma.Error500InternalServerError("Server error", err)
		}
		return &dto.StatusUpdateOutput{
			Body: dto.StatusUpdateResponse{Success: true, User: *player},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "users-delete-profile",
		Method:      "POST",
		Path:        basePath + "/user/deleteProfile/{id}",
		Summary:     "Delete an account",
		Description: "Unconditional, non-recoverable document removal",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearerAuth": {}}},
	}, func(ctx context.Context, input *dto.DeleteProfileInput) (*dto.DeleteProfileOutput, error) {
		if _, err := auth.RequireSelfOrAdmin(input.Authorization, input.ID); err != nil {
			return nil, err
		}

		if err := service.DeleteProfile(ctx, input.ID); err != nil {
			if mapped := mapPlayerError(err); mapped != nil {
				return nil, mapped
			}
			return nil, huma.Error500InternalServerError("Server error", err)
		}
		return &dto.DeleteProfileOutput{
			Body: dto.DeleteProfileResponse{Message: "User deleted successfully"},
		}, nil
	})
}
