package migrations

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "001_create_profiles_indexes",
		Description: "Create indexes for profiles collection",
		Up:          up001,
		Down:        down001,
	})
}

func up001(ctx context.Context, db *mongo.Database) error {
	profilesCollection := db.Collection("profiles")

	indexes := []mongo.IndexModel{
		// Seeding races collapse to duplicate-key errors on this pair.
		{
			Keys:    bson.D{{Key: "realm_key", Value: 1}, {Key: "pseudo", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "realm_key", Value: 1}, {Key: "created_at", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "house", Value: 1}},
		},
		// At most one crowned profile per realm.
		{
			Keys: bson.D{{Key: "realm_key", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_monarch": true}).
				SetName("realm_monarch_unique"),
		},
	}

	opts := options.CreateIndexes().SetMaxTime(30 * time.Second)
	_, err := profilesCollection.Indexes().CreateMany(ctx, indexes, opts)
	if err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func down001(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("profiles").Indexes().DropAll(ctx)
	return err
}
