package routes

import (
	"context"
	"errors"

	"fogexplore/internal/game/dto"
	"fogexplore/internal/game/services"
	"fogexplore/internal/players"
	"fogexplore/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterGameRoutes registers the map-state routes on the shared Huma API.
// Both operations require a valid player token.
func RegisterGameRoutes(api huma.API, basePath string, service *services.Service, auth *middleware.AuthMiddleware) {
	huma.Register(api, huma.Operation{
		OperationID: "game-save-map-data",
		Method:      "POST",
		Path:        basePath + "/mapData/save-map-data",
		Summary:     "Persist game state",
		Description: "Partial update: only fields present in the payload are applied; play time accrues from the session baseline",
		Tags:        []string{"Game State"},
		Security:    []map[string][]string{{"bearerAuth": {}}},
	}, func(ctx context.Context, input *dto.SaveMapDataInput) (*dto.SaveMapDataOutput, error) {
		user, err := auth.RequireAuth(input.Authorization)
		if err != nil {
			return nil, err
		}

		userID := input.Body.UserID
		if userID == "" {
			userID = user.UserID
		}
		if userID == "" {
			return nil, huma.Error400BadRequest("User ID is required")
		}

		stats, err := service.Save(ctx, userID, input.Body)
		if err != nil {
			switch {
			case errors.Is(err, players.ErrMalformedID):
				return nil, huma.Error400BadRequest("Invalid User ID format")
			case errors.Is(err, players.ErrNotFound):
				return nil, huma.Error404NotFound("User not found")
			default:
				return nil, huma.Error500InternalServerError("Failed to save map data", err)
			}
		}

		return &dto.SaveMapDataOutput{
			Body: dto.SaveMapDataResponse{
				Message: "Map data updated successfully",
				Stats:   *stats,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "game-get-map-data",
		Method:      "GET",
		Path:        basePath + "/mapData/get-map-data",
		Summary:     "Load game state",
		Description: "Returns location, path history, checkpoints, stats and fog-cleared area",
		Tags:        []string{"Game State"},
		Security:    []map[string][]string{{"bearerAuth": {}}},
	}, func(ctx context.Context, input *dto.GetMapDataInput) (*dto.GetMapDataOutput, error) {
		user, err := auth.RequireAuth(input.Authorization)
		if err != nil {
			return nil, err
		}

		userID := input.UserID
		if userID == "" {
			userID = user.UserID
		}
		if userID == "" {
			return nil, huma.Error400BadRequest("User ID is required")
		}

		data, err := service.Load(ctx, userID)
		if err != nil {
			switch {
			case errors.Is(err, players.ErrMalformedID):
				return nil, huma.Error400BadRequest("Invalid User ID format")
			case errors.Is(err, players.ErrNotFound):
				return nil, huma.Error404NotFound("User not found")
			default:
				return nil, huma.Error500InternalServerError("Failed to load map data", err)
			}
		}

		return &dto.GetMapDataOutput{Body: *data}, nil
	})
}
