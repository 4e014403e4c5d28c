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

// Repository handles the identity and session reads/writes on the users
// collection
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

// IdentityTaken reports whether a player already holds the username or email
func (r *Repository) IdentityTaken(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}}

	err := r.collection().FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check identity: %w", err)
	}
	return true, nil
}

// Insert stores a freshly registered player document
func (r *Repository) Insert(ctx context.Context, player *models.Player) (primitive.ObjectID, error) {
	result, err := r.collection().InsertOne(ctx, player)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, players.ErrDuplicateIdentity
		}
		return primitive.NilObjectID, fmt.Errorf("failed to insert player: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

// FindByEmailWithPassword loads a player by email including the password
// hash, which default reads exclude
func (r *Repository) FindByEmailWithPassword(ctx context.Context, email string) (*models.Player, error) {
	var player models.Player
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&player)
	if err == mongo.ErrNoDocuments {
		return nil, players.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find player by email: %w", err)
	}
	return &player, nil
}

// GetByID loads a player by object id with the password projected away
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

// MarkLoggedIn flips presence online and stamps the session baseline
func (r *Repository) MarkLoggedIn(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"isOnline":  true,
		"lastLogin": at,
		"updatedAt": at,
	}}

	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark player online: %w", err)
	}
	if result.MatchedCount == 0 {
		return players.ErrNotFound
	}
	return nil
}

// CloseSession atomically folds the session delta into timePlayed, flips
// presence offline and stamps lastLogout, returning the updated document.
// The $inc keeps concurrent saves from dropping accrued seconds.
func (r *Repository) CloseSession(ctx context.Context, id primitive.ObjectID, deltaSeconds int64, at time.Time) (*models.Player, error) {
	update := bson.M{
		"$inc": bson.M{"stats.timePlayed": deltaSeconds},
		"$set": bson.M{
			"isOnline":   false,
			"lastLogout": at,
			"updatedAt":  at,
		},
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})

	var player models.Player
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&player)
	if err == mongo.ErrNoDocuments {
		return nil, players.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}
	return &player, nil
}
