package dto

// ProfileInput identifies a player profile to fetch
type ProfileInput struct {
	ID string `path:"id" doc:"Player document id"`
}

// UpdateUserInput carries a generic partial update. Protected fields
// (id, password hash, timestamps) are stripped before the write. The
// caller must present a token for the same player or an admin token.
type UpdateUserInput struct {
	Authorization string                 `header:"Authorization" doc:"Bearer token"`
	ID            string                 `path:"id" doc:"Player document id"`
	Body          map[string]interface{} `json:"body" doc:"Fields to set on the player document"`
}

// DeleteCheckpointRequest selects checkpoints either by index or by exact
// coordinate match
type DeleteCheckpointRequest struct {
	UserID string   `json:"userId" minLength:"1" doc:"Player document id"`
	Index  *int     `json:"index,omitempty" doc:"Checkpoint position to remove"`
	Lat    *float64 `json:"lat,omitempty" doc:"Latitude for coordinate match"`
	Lng    *float64 `json:"lng,omitempty" doc:"Longitude for coordinate match"`
}

// DeleteCheckpointInput represents the input for checkpoint deletion
type DeleteCheckpointInput struct {
	Body DeleteCheckpointRequest `json:"body"`
}

// PathInput asks for a route from the player's position to a checkpoint
type PathInput struct {
	UserID          string  `query:"userId" doc:"Player document id"`
	Lat             float64 `query:"lat" doc:"Current latitude"`
	Lng             float64 `query:"lng" doc:"Current longitude"`
	CheckpointIndex int     `query:"checkpointIndex" doc:"Index into the player's checkpoints"`
}

// StatusUpdateRequest sets the presence flag directly
type StatusUpdateRequest struct {
	UserID   string `json:"userId" minLength:"1" doc:"Player document id"`
	IsOnline bool   `json:"isOnline"`
}

// StatusUpdateInput represents the input for the presence toggle
type StatusUpdateInput struct {
	Body StatusUpdateRequest `json:"body"`
}

// DeleteProfileInput identifies the account to remove. The caller must
// present a token for the same player or an admin token.
type DeleteProfileInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	ID            string `path:"id" doc:"Player document id"`
}
