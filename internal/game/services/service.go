package services

import (
	"context"
	"time"

	"fogexplore/internal/game/dto"
	"fogexplore/internal/players"
	"fogexplore/internal/players/models"
	"fogexplore/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
)

// Service implements map-state save and load
type Service struct {
	repository *Repository
}

// NewService creates a new game-state service
func NewService(mongodb *database.MongoDB) *Service {
	return &Service{repository: NewRepository(mongodb)}
}

// Save applies a partial state payload. Only fields present in the request
// are written; everything else on the document is left untouched. Elapsed
// time since the last baseline is folded into stats.timePlayed and the
// baseline reset.
func (s *Service) Save(ctx context.Context, userID string, req dto.SaveMapDataRequest) (*models.Stats, error) {
	oid, err := players.ParseID(userID)
	if err != nil {
		return nil, err
	}

	baseline, err := s.repository.GetSessionBaseline(ctx, oid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return s.repository.ApplyState(ctx, oid, buildStateSet(req, now), sessionDelta(baseline, now))
}

// buildStateSet translates a partial payload into the $set map. Only the
// fields present in the request appear as keys; an absent field never
// overwrites document state. The session baseline is always restamped.
func buildStateSet(req dto.SaveMapDataRequest, now time.Time) bson.M {
	set := bson.M{
		"lastLogin": now,
		"updatedAt": now,
	}

	if req.Location != nil {
		if req.Location.Type == "" {
			req.Location.Type = "Point"
		}
		if req.Location.LastUpdated.IsZero() {
			req.Location.LastUpdated = now
		}
		set["location"] = req.Location
	}
	if req.PathHistory != nil {
		set["pathHistory"] = req.PathHistory
	}
	if req.Checkpoints != nil {
		set["checkpoints"] = req.Checkpoints
	}
	if req.FogClearedArea != nil {
		set["fogClearedArea"] = req.FogClearedArea
	}
	if req.Stats != nil {
		if req.Stats.DistanceTravelled != nil {
			set["stats.distanceTravelled"] = *req.Stats.DistanceTravelled
		}
		if req.Stats.TotalCheckpoints != nil {
			set["stats.totalCheckpoints"] = *req.Stats.TotalCheckpoints
		}
	}

	return set
}

// sessionDelta returns the whole seconds elapsed since the baseline. A
// missing baseline means the first save of a session, which only
// initializes it; a clock that went backwards clamps to zero.
func sessionDelta(baseline *time.Time, now time.Time) int64 {
	if baseline == nil {
		return 0
	}
	delta := int64(now.Sub(*baseline).Seconds())
	if delta < 0 {
		return 0
	}
	return delta
}

// Load returns the field subset needed to reconstruct client state
func (s *Service) Load(ctx context.Context, userID string) (*dto.MapDataResponse, error) {
	oid, err := players.ParseID(userID)
	if err != nil {
		return nil, err
	}

	player, err := s.repository.GetMapData(ctx, oid)
	if err != nil {
		return nil, err
	}

	resp := &dto.MapDataResponse{
		Location:       player.Location,
		PathHistory:    player.PathHistory,
		Checkpoints:    player.Checkpoints,
		Stats:          player.Stats,
		FogClearedArea: player.FogClearedArea,
	}
	if resp.PathHistory == nil {
		resp.PathHistory = [][]float64{}
	}
	if resp.Checkpoints == nil {
		resp.Checkpoints = []models.Checkpoint{}
	}
	if resp.FogClearedArea == nil {
		resp.FogClearedArea = [][]float64{}
	}
	return resp, nil
}
