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
		Version:     "003_create_messages_indexes",
		Description: "Create indexes for messages collection",
		Up:          up003,
		Down:        down003,
	})
}

func up003(ctx context.Context, db *mongo.Database) error {
	messagesCollection := db.Collection("messages")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "realm_key", Value: 1}, {Key: "channel", Value: 1}, {Key: "created_at", Value: 1}},
		},
		// Private conversation pair lookups.
		{
			Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "recipient_id", Value: 1}},
		},
	}

	opts := options.CreateIndexes().SetMaxTime(30 * time.Second)
	_, err := messagesCollection.Indexes().CreateMany(ctx, indexes, opts)
	if err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func down003(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("messages").Indexes().DropAll(ctx)
	return err
}
