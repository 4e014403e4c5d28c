package services

import (
	"context"
	"errors"
	"time"

	"fogexplore/internal/players"
	"fogexplore/internal/players/models"
	"fogexplore/internal/users/dto"
	"fogexplore/pkg/database"
	"fogexplore/pkg/routing"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrInvalidCheckpointIndex means the index is outside the current
	// bounds of the checkpoints sequence
	ErrInvalidCheckpointIndex = errors.New("invalid checkpoint index")

	// ErrCheckpointSelector means neither an index nor a coordinate pair
	// was supplied
	ErrCheckpointSelector = errors.New("either index or lat/lng is required")

	// ErrCheckpointNotFound means the referenced checkpoint does not exist
	ErrCheckpointNotFound = errors.New("checkpoint not found")

	// ErrNoUpdatableFields means a generic update stripped down to nothing
	ErrNoUpdatableFields = errors.New("no updatable fields in payload")
)

// protectedFields can never be set through the generic update endpoint
var protectedFields = map[string]struct{}{
	"_id":       {},
	"id":        {},
	"password":  {},
	"createdAt": {},
	"updatedAt": {},
}

// Service implements profile, checkpoint and path-query operations
type Service struct {
	repository *Repository
	router     *routing.Client
}

// NewService creates a new users service
func NewService(mongodb *database.MongoDB, router *routing.Client) *Service {
	return &Service{
		repository: NewRepository(mongodb),
		router:     router,
	}
}

// GetProfile loads a full player document, password excluded
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.Player, error) {
	oid, err := players.ParseID(userID)
	if err != nil {
		return nil, err
	}
	return s.repository.GetByID(ctx, oid)
}

// UpdateProfile applies a generic partial update after stripping protected
// fields
func (s *Service) UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.Player, error) {
	oid, err := players.ParseID(userID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	for key, value := range fields {
		if _, protected := protectedFields[key]; protected {
			continue
		}
		set[key] = value
	}
	if len(set) == 0 {
		return nil, ErrNoUpdatableFields
	}
	set["updatedAt"] = time.Now()

	return s.repository.UpdateFields(ctx, oid, set)
}

// DeleteCheckpoint removes checkpoints by index or by exact coordinate
// match and re-syncs stats.totalCheckpoints to the new length
func (s *Service) DeleteCheckpoint(ctx context.Context, req dto.DeleteCheckpointRequest) ([]models.Checkpoint, error) {
	oid, err := players.ParseID(req.UserID)
	if err != nil {
		return nil, err
	}

	checkpoints, err := s.repository.GetCheckpoints(ctx, oid)
	if err != nil {
		return nil, err
	}

	remaining, err := removeCheckpoints(checkpoints, req)
	if err != nil {
		return nil, err
	}

	if err := s.repository.SetCheckpoints(ctx, oid, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// removeCheckpoints applies the deletion selector: a positional index wins
// over a coordinate match, and a request carrying neither is rejected
func removeCheckpoints(checkpoints []models.Checkpoint, req dto.DeleteCheckpointRequest) ([]models.Checkpoint, error) {
	switch {
	case req.Index != nil:
		idx := *req.Index
		if idx < 0 || idx >= len(checkpoints) {
			return nil, ErrInvalidCheckpointIndex
		}
		checkpoints = append(checkpoints[:idx], checkpoints[idx+1:]...)

	case req.Lat != nil && req.Lng != nil:
		kept := checkpoints[:0]
		for _, cp := range checkpoints {
			if !(cp.Lat == *req.Lat && cp.Lng == *req.Lng) {
				kept = append(kept, cp)
			}
		}
		checkpoints = kept

	default:
		return nil, ErrCheckpointSelector
	}

	if checkpoints == nil {
		checkpoints = []models.Checkpoint{}
	}
	return checkpoints, nil
}

// PathToCheckpoint resolves the checkpoint and delegates to the routing
// provider for a driving route from the player's current position
func (s *Service) PathToCheckpoint(ctx context.Context, userID string, lat, lng float64, checkpointIndex int) (*routing.Route, error) {
	oid, err := players.ParseID(userID)
	if err != nil {
		return nil, err
	}

	checkpoints, err := s.repository.GetCheckpoints(ctx, oid)
	if err != nil {
		return nil, err
	}
	if checkpointIndex < 0 || checkpointIndex >= len(checkpoints) {
		return nil, ErrCheckpointNotFound
	}
	checkpoint := checkpoints[checkpointIndex]

	return s.router.DrivingRoute(ctx, lng, lat, checkpoint.Lng, checkpoint.Lat)
}

// SetPresence writes the online flag directly
func (s *Service) SetPresence(ctx context.Context, userID string, online bool) (*models.Player, error) {
	oid, err := players.ParseID(userID)
	if err != nil {
		return nil, err
	}
	return s.repository.SetPresence(ctx, oid, online)
}

// DeleteProfile removes an account unconditionally
func (s *Service) DeleteProfile(ctx context.Context, userID string) error {
	oid, err := players.ParseID(userID)
	if err != nil {
		return err
	}
	return s.repository.Delete(ctx, oid)
}
