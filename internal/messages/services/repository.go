package services

import (
	"context"
	"time"

	"go-westeros/internal/messages/models"
	"go-westeros/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for the raven message log
type Repository struct {
	mongodb    *database.MongoDB
	collection *mongo.Collection
}

// NewRepository creates a new message repository
func NewRepository(mongodb *database.MongoDB) *Repository {
	return &Repository{
		mongodb:    mongodb,
		collection: mongodb.Collection(models.MessageCollection),
	}
}

// Insert appends a message to the log
func (r *Repository) Insert(ctx context.Context, message *models.Message) error {
	message.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, message)
	return err
}

// ListChannel returns a realm channel's messages, oldest first.
func (r *Repository) ListChannel(ctx context.Context, realmKey, channel string, limit int64) ([]models.Message, error) {
	filter := bson.M{"realm_key": realmKey, "channel": channel}
	return r.find(ctx, filter, limit)
}

// ListPrivatePair returns the private conversation between two profiles,
// regardless of direction, oldest first.
func (r *Repository) ListPrivatePair(ctx context.Context, realmKey, profileA, profileB string, limit int64) ([]models.Message, error) {
	filter := bson.M{
		"realm_key": realmKey,
		"channel":   models.ChannelPrivate,
		"$or": bson.A{
			bson.M{"sender_id": profileA, "recipient_id": profileB},
			bson.M{"sender_id": profileB, "recipient_id": profileA},
		},
	}
	return r.find(ctx, filter, limit)
}

func (r *Repository) find(ctx context.Context, filter bson.M, limit int64) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateIndexes creates the indexes the message queries depend on
func (r *Repository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "realm_key", Value: 1}, {Key: "channel", Value: 1}, {Key: "created_at", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "recipient_id", Value: 1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
