package services

import (
	"context"
	"fmt"
	"time"

	"fogexplore/internal/players"
	"fogexplore/internal/players/models"
	"fogexplore/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles the map-state reads/writes on the users collection
type Repository struct {
	mongodb *database.MongoDB
}

// NewRepository creates a new repository instance
func NewRepository(mongodb *database.MongoDB) *Repository {
	return &Repository{mongodb: mongodb}
}

func (r *Repository) collection() *mongo.Collection {
	return r.mongodb.Collection(models.Player{}.CollectionName())
}

// GetSessionBaseline returns the player's lastLogin timestamp, or nil when
// the player has never logged in. ErrNotFound when the id does not resolve.
func (r *Repository) GetSessionBaseline(ctx context.Context, id primitive.ObjectID) (*time.Time, error) {
	var doc struct {
		LastLogin *time.Time `bson:"lastLogin"`
	}

	opts := options.FindOne().SetProjection(bson.M{"lastLogin": 1})
	err := r.collection().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, players.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session baseline: %w", err)
	}
	return doc.LastLogin, nil
}

// ApplyState writes the provided field set in one update, atomically
// folding deltaSeconds into stats.timePlayed, and returns the updated
// stats snapshot
func (r *Repository) ApplyState(ctx context.Context, id primitive.ObjectID, set bson.M, deltaSeconds int64) (*models.Stats, error) {
	update := bson.M{"$set": set}
	if deltaSeconds > 0 {
		update["$inc"] = bson.M{"stats.timePlayed": deltaSeconds}
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"stats": 1})

	var doc struct {
		Stats models.Stats `bson:"stats"`
	}
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, players.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save map state: %w", err)
	}
	return &doc.Stats, nil
}

// GetMapData loads the field subset needed to reconstruct client state
func (r *Repository) GetMapData(ctx context.Context, id primitive.ObjectID) (*models.Player, error) {
	opts := options.FindOne().SetProjection(bson.M{
		"location":       1,
		"pathHistory":    1,
		"checkpoints":    1,
		"stats":          1,
		"fogClearedArea": 1,
	})

	var player models.Player
	err := r.collection().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&player)
	if err == mongo.ErrNoDocuments {
		return nil, players.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load map state: %w", err)
	}
	return &player, nil
}
