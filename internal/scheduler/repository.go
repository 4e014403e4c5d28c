package scheduler

import (
	"context"
	"fmt"
	"time"

	"fogexplore/internal/players/models"
	"fogexplore/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository performs the collection-wide maintenance writes
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

// ExpirePowerUps pulls every power-up whose expiry has passed. Returns the
// number of documents touched.
func (r *Repository) ExpirePowerUps(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{"powerUps.expiresAt": bson.M{"$lte": now}}
	update := bson.M{"$pull": bson.M{
		"powerUps": bson.M{"expiresAt": bson.M{"$lte": now}},
	}}

	result, err := r.collection().UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire power-ups: %w", err)
	}
	return result.ModifiedCount, nil
}

// MarkStalePresence flips players offline when they are flagged online but
// their session baseline predates the cutoff. Covers clients that vanished
// without calling logout.
func (r *Repository) MarkStalePresence(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"isOnline":  true,
		"lastLogin": bson.M{"$lt": cutoff},
	}
	update := bson.M{"$set": bson.M{"isOnline": false}}

	result, err := r.collection().UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stale presence: %w", err)
	}
	return result.ModifiedCount, nil
}
