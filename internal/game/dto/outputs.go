package dto

import (
	"fogexplore/internal/players/models"
)

// SaveMapDataResponse returns the stats snapshot after a save, including
// the freshly accrued play time
type SaveMapDataResponse struct {
	Message string       `json:"message"`
	Stats   models.Stats `json:"stats"`
}

// SaveMapDataOutput represents the output for the save operation
type SaveMapDataOutput struct {
	Body SaveMapDataResponse `json:"body"`
}

// MapDataResponse is the field subset needed to reconstruct client state
type MapDataResponse struct {
	Location       *models.Location    `json:"location,omitempty"`
	PathHistory    [][]float64         `json:"pathHistory"`
	Checkpoints    []models.Checkpoint `json:"checkpoints"`
	Stats          models.Stats        `json:"stats"`
	FogClearedArea [][]float64         `json:"fogClearedArea"`
}

// GetMapDataOutput represents the output for the load operation
type GetMapDataOutput struct {
	Body MapDataResponse `json:"body"`
}
