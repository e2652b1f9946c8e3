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
		Version:     "002_create_conflicts_indexes",
		Description: "Create indexes for conflicts collection",
		Up:          up002,
		Down:        down002,
	})
}

func up002(ctx context.Context, db *mongo.Database) error {
	conflictsCollection := db.Collection("conflicts")

	indexes := []mongo.IndexModel{
		// The sweeper scans marching conflicts by ETA.
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "eta_arrival", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "realm_key", Value: 1}, {Key: "attacker_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "realm_key", Value: 1}, {Key: "defender_id", Value: 1}},
		},
	}

	opts := options.CreateIndexes().SetMaxTime(30 * time.Second)
	_, err := conflictsCollection.Indexes().CreateMany(ctx, indexes, opts)
	if err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func down002(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("conflicts").Indexes().DropAll(ctx)
	return err
}
