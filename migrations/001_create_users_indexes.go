package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "001_create_users_indexes",
		Description: "Create indexes for users collection",
		Up:          up001,
		Down:        down001,
	})
}

func up001(ctx context.Context, db *mongo.Database) error {
	usersCollection := db.Collection("users")

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "lastLogin", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "isOnline", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "powerUps.expiresAt", Value: 1}},
		},
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}

	return nil
}

func down001(ctx context.Context, db *mongo.Database) error {
	usersCollection := db.Collection("users")
	if _, err := usersCollection.Indexes().DropAll(ctx); err != nil {
		return err
	}
	return nil
}
