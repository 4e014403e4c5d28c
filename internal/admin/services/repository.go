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

// Repository handles administrative reads/writes on the users collection
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

// ListAll returns every account, newest first, password hashes excluded
func (r *Repository) ListAll(ctx context.Context) ([]models.Player, error) {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer cursor.Close(ctx)

	list := []models.Player{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("failed to decode players: %w", err)
	}
	return list, nil
}

// GetByID loads one account with the password projected away
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

// Delete removes an account document
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
