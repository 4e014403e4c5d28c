package dto

import (
	"fogexplore/internal/players/models"
	"fogexplore/pkg/routing"
)

// ProfileOutput returns the full player document, password excluded
type ProfileOutput struct {
	Body models.Player `json:"body"`
}

// UpdateUserOutput returns the updated player document
type UpdateUserOutput struct {
	Body models.Player `json:"body"`
}

// DeleteCheckpointResponse returns the surviving checkpoints after a
// deletion
type DeleteCheckpointResponse struct {
	Message     string              `json:"message"`
	Checkpoints []models.Checkpoint `json:"checkpoints"`
}

// DeleteCheckpointOutput represents the output for checkpoint deletion
type DeleteCheckpointOutput struct {
	Body DeleteCheckpointResponse `json:"body"`
}

// PathOutput returns the provider route verbatim
type PathOutput struct {
	Body routing.Route `json:"body"`
}

// StatusUpdateResponse returns the player after a presence toggle
type StatusUpdateResponse struct {
	Success bool          `json:"success"`
	User    models.Player `json:"user"`
}

// StatusUpdateOutput represents the output for the presence toggle
type StatusUpdateOutput struct {
	Body StatusUpdateResponse `json:"body"`
}

// DeleteProfileResponse acknowledges an account removal
type DeleteProfileResponse struct {
	Message string `json:"message"`
}

// DeleteProfileOutput represents the output for account removal
type DeleteProfileOutput struct {
	Body DeleteProfileResponse `json:"body"`
}
