package services

import (
	"context"
	"fmt"

	"fogexplore/internal/players"
	"fogexplore/internal/players/models"
	"fogexplore/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles the profile-level reads/writes on the users collection
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

// GetByID loads a player with the password projected away
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Player, error) {
	var player models.Player
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	err := r.collection().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&player)
	if err == mongo.ErrNoDocuments {
		return nil, players.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find player: %w", err)
	}
	return &player, nil
}

// UpdateFields applies a $set of arbitrary sanitized fields and returns
// the updated document
func (r *Repository) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Player, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})

	var player models.Player
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&player)
	if err == mongo.ErrNoDocuments {
		return nil, players.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return &player, nil
}

// GetCheckpoints loads just the checkpoints sequence
func (r *Repository) GetCheckpoints(ctx context.Context, id primitive.ObjectID) ([]models.Checkpoint, error) {
	var doc struct {
		Checkpoints []models.Checkpoint `bson:"checkpoints"`
	}

	opts := options.FindOne().SetProjection(bson.M{"checkpoints": 1})
	err := r.collection().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, players.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoints: %w", err)
	}
	return doc.Checkpoints, nil
}

// SetCheckpoints replaces the checkpoints sequence and keeps
// stats.totalCheckpoints in sync with its new length
func (r *Repository) SetCheckpoints(ctx context.Context, id primitive.ObjectID, checkpoints []models.Checkpoint) error {
	update := bson.M{"$set": bson.M{
		"checkpoints":            checkpoints,
		"stats.totalCheckpoints": len(checkpoints),
	}}

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to save checkpoints: %w", err)
	}
	if result.MatchedCount == 0 {
		return players.ErrNotFound
	}
	return nil
}

// SetPresence writes the online flag directly and returns the updated
// document
func (r *Repository) SetPresence(ctx context.Context, id primitive.ObjectID, online bool) (*models.Player, error) {
	return r.UpdateFields(ctx, id, bson.M{"isOnline": online})
}

// Delete removes a player document unconditionally
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if result.DeletedCount == 0 {
		return players.ErrNotFound
	}
	return nil
}
