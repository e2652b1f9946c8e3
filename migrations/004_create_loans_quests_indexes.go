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
		Version:     "004_create_loans_quests_indexes",
		Description: "Create indexes for loans and quests collections",
		Up:          up004,
		Down:        down004,
	})
}

func up004(ctx context.Context, db *mongo.Database) error {
	opts := options.CreateIndexes().SetMaxTime(30 * time.Second)

	loanIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "borrower_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "realm_key", Value: 1}, {Key: "status", Value: 1}},
		},
	}
	if _, err := db.Collection("loans").Indexes().CreateMany(ctx, loanIndexes, opts); err != nil && !isIndexExistsError(err) {
		return err
	}

	questIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "realm_key", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	if _, err := db.Collection("quests").Indexes().CreateMany(ctx, questIndexes, opts); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func down004(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection("loans").Indexes().DropAll(ctx); err != nil {
		return err
	}
	_, err := db.Collection("quests").Indexes().DropAll(ctx)
	return err
}
