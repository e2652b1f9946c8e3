package services

import (
	"context"
	"errors"
	"time"

	"go-westeros/internal/conflicts/models"
	"go-westeros/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrConflictNotFound is returned when a conflict lookup matches nothing.
var ErrConflictNotFound = errors.New("conflict not found")

// Repository handles database operations for conflicts
type Repository struct {
	mongodb    *database.MongoDB
	collection *mongo.Collection
}

// NewRepository creates a new conflict repository
func NewRepository(mongodb *database.MongoDB) *Repository {
	return &Repository{
		mongodb:    mongodb,
		collection: mongodb.Collection(models.ConflictCollection),
	}
}

// Insert creates a new conflict record
func (r *Repository) Insert(ctx context.Context, conflict *models.Conflict) error {
	now := time.Now().UTC()
	conflict.CreatedAt = now
	conflict.UpdatedAt = now
	if conflict.AckedBy == nil {
		conflict.AckedBy = []string{}
	}

	_, err := r.collection.InsertOne(ctx, conflict)
	return err
}

// GetByID retrieves a conflict by its ID
func (r *Repository) GetByID(ctx context.Context, conflictID string) (*models.Conflict, error) {
	var conflict models.Conflict
	err := r.collection.FindOne(ctx, bson.M{"_id": conflictID}).Decode(&conflict)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrConflictNotFound
		}
		return nil, err
	}
	return &conflict, nil
}

// ListByParticipant returns the realm conflicts a profile is a side of,
// newest first.
func (r *Repository) ListByParticipant(ctx context.Context, realmKey, profileID string) ([]models.Conflict, error) {
	filter := bson.M{
		"realm_key": realmKey,
		"$or": bson.A{
			bson.M{"attacker_id": profileID},
			bson.M{"defender_id": profileID},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conflicts []models.Conflict
	if err := cursor.All(ctx, &conflicts); err != nil {
		return nil, err
	}
	return conflicts, nil
}

// ListDue returns marching conflicts whose ETA has passed.
func (r *Repository) ListDue(ctx context.Context, now time.Time) ([]models.Conflict, error) {
	filter := bson.M{
		"status":      models.StatusMarching,
		"eta_arrival": bson.M{"$lte": now},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conflicts []models.Conflict
	if err := cursor.All(ctx, &conflicts); err != nil {
		return nil, err
	}
	return conflicts, nil
}

// Resolve flips a marching conflict to a terminal status. The filter
// includes the current status, so a conflict already resolved by a
// sibling instance is left untouched and reported as resolved=false.
func (r *Repository) Resolve(ctx context.Context, conflictID, status string) (bool, error) {
	filter := bson.M{"_id": conflictID, "status": models.StatusMarching}
	update := bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// ListUnackedReports returns terminal conflicts involving a profile that
// it has not acknowledged yet.
func (r *Repository) ListUnackedReports(ctx context.Context, realmKey, profileID string) ([]models.Conflict, error) {
	filter := bson.M{
		"realm_key": realmKey,
		"status":    bson.M{"$in": bson.A{models.StatusVictory, models.StatusDefeat}},
		"$or": bson.A{
			bson.M{"attacker_id": profileID},
			bson.M{"defender_id": profileID},
		},
		"acked_by": bson.M{"$ne": profileID},
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conflicts []models.Conflict
	if err := cursor.All(ctx, &conflicts); err != nil {
		return nil, err
	}
	return conflicts, nil
}

// Acknowledge records that a profile has seen a terminal conflict's
// battle report. $addToSet keeps repeated acks idempotent.
func (r *Repository) Acknowledge(ctx context.Context, conflictID, profileID string) error {
	filter := bson.M{
		"_id":    conflictID,
		"status": bson.M{"$in": bson.A{models.StatusVictory, models.StatusDefeat}},
	}
	update := bson.M{
		"$addToSet": bson.M{"acked_by": profileID},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrConflictNotFound
	}
	return nil
}

// CreateIndexes creates the indexes the conflict queries depend on
func (r *Repository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
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

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
