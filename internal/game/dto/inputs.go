package dto

import (
	"fogexplore/internal/players/models"
)

// StatsPatch carries the client-maintained counters. Pointers keep absent
// fields distinguishable from zero values.
type StatsPatch struct {
	DistanceTravelled *float64 `json:"distanceTravelled,omitempty" doc:"Cumulative distance in meters"`
	TotalCheckpoints  *int     `json:"totalCheckpoints,omitempty" doc:"Checkpoint count"`
}

// SaveMapDataRequest is a partial state payload: only present fields are
// applied, absent fields are left unchanged
type SaveMapDataRequest struct {
	UserID         string              `json:"userId,omitempty" doc:"Player id; defaults to the token subject"`
	Location       *models.Location    `json:"location,omitempty"`
	PathHistory    [][]float64         `json:"pathHistory,omitempty" doc:"[lng, lat] pairs of visited points"`
	Checkpoints    []models.Checkpoint `json:"checkpoints,omitempty"`
	Stats          *StatsPatch         `json:"stats,omitempty"`
	FogClearedArea [][]float64         `json:"fogClearedArea,omitempty"`
}

// SaveMapDataInput represents the input for the save operation
type SaveMapDataInput struct {
	Authorization string             `header:"Authorization" doc:"Bearer token"`
	Body          SaveMapDataRequest `json:"body"`
}

// GetMapDataInput represents the input for the load operation
type GetMapDataInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	UserID        string `query:"userId" doc:"Player id; defaults to the token subject"`
}
