package services

import (
	"context"
	"errors"
	"time"

	"go-westeros/internal/profiles/models"
	"go-westeros/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInsufficientGold is returned when a conditional debit matches no
// document because the profile's gold is below the requested amount.
var ErrInsufficientGold = errors.New("insufficient gold")

// ErrProfileNotFound is returned when a profile lookup matches nothing.
var ErrProfileNotFound = errors.New("profile not found")

// Repository handles database operations for profiles. All resource
// mutations are either conditional single round trips or run inside a
// session transaction so concurrent actions cannot observe partial state.
type Repository struct {
	mongodb    *database.MongoDB
	collection *mongo.Collection
}

// NewRepository creates a new profile repository
func NewRepository(mongodb *database.MongoDB) *Repository {
	return &Repository{
		mongodb:    mongodb,
		collection: mongodb.Collection(models.ProfileCollection),
	}
}

// GetByID retrieves a profile by its ID
func (r *Repository) GetByID(ctx context.Context, profileID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": profileID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ListByRealm returns every profile in a realm, oldest first.
func (r *Repository) ListByRealm(ctx context.Context, realmKey string) ([]models.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"realm_key": realmKey}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Insert creates a new profile record
func (r *Repository) Insert(ctx context.Context, profile *models.Profile) error {
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

// InsertMany creates a batch of profiles (bot seeding). Ordered is
// disabled so a duplicate pseudo skips one document, not the batch.
func (r *Repository) InsertMany(ctx context.Context, profiles []models.Profile) error {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(profiles))
	for i := range profiles {
		profiles[i].CreatedAt = now
		profiles[i].UpdatedAt = now
		docs = append(docs, profiles[i])
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// DebitGold subtracts amount from a profile's gold only if it has at
// least that much. Filter and decrement travel in one round trip, so two
// concurrent debits can never push the balance negative.
func (r *Repository) DebitGold(ctx context.Context, profileID string, amount int64) error {
	filter := bson.M{"_id": profileID, "gold": bson.M{"$gte": amount}}
	update := bson.M{
		"$inc": bson.M{"gold": -amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrInsufficientGold
	}
	return nil
}

// CreditGold adds amount to a profile's gold.
func (r *Repository) CreditGold(ctx context.Context, profileID string, amount int64) error {
	update := bson.M{
		"$inc": bson.M{"gold": amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": profileID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// AddSoldiers increments a profile's soldier count.
func (r *Repository) AddSoldiers(ctx context.Context, profileID string, count int64) error {
	update := bson.M{
		"$inc": bson.M{"soldiers": count},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": profileID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// BribeSoldiers debits the briber and makes 1/share of the target's
// garrison desert, both inside one session transaction. The desertion
// count is computed server-side from the garrison at update time via an
// aggregation pipeline, not from any earlier read, and floored at zero.
// Returns the number of deserters.
func (r *Repository) BribeSoldiers(ctx context.Context, briberID, targetID string, cost, share int64) (int64, error) {
	var deserted int64
	err := r.mongodb.WithTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := r.DebitGold(sc, briberID, cost); err != nil {
			return err
		}

		update := mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"soldiers": bson.M{"$max": bson.A{0, bson.M{"$subtract": bson.A{
					"$soldiers", bson.M{"$floor": bson.M{"$divide": bson.A{"$soldiers", share}}},
				}}}},
				"updated_at": time.Now().UTC(),
			}}},
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
		var before models.Profile
		if err := r.collection.FindOneAndUpdate(sc, bson.M{"_id": targetID}, update, opts).Decode(&before); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrProfileNotFound
			}
			return err
		}
		deserted = before.Soldiers / share
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deserted, nil
}

// HireSoldiers debits the levy cost and adds the soldiers inside one
// session transaction, so a failure between the two legs changes nothing.
func (r *Repository) HireSoldiers(ctx context.Context, profileID string, cost, count int64) error {
	return r.mongodb.WithTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := r.DebitGold(sc, profileID, cost); err != nil {
			return err
		}
		return r.AddSoldiers(sc, profileID, count)
	})
}

// TransferGold moves amount from one profile to another inside a session
// transaction: the debit is conditional on sufficient funds and the
// credit only happens if the debit matched, so the pair's total gold is
// conserved or nothing changes at all.
func (r *Repository) TransferGold(ctx context.Context, fromID, toID string, amount int64) error {
	return r.mongodb.WithTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := r.DebitGold(sc, fromID, amount); err != nil {
			return err
		}
		return r.CreditGold(sc, toID, amount)
	})
}

// SetRebel marks a profile as rebel and appends the rebel epithet to its
// pseudo. The filter excludes profiles that already rebelled, keeping the
// suffix single even under repeated calls.
func (r *Repository) SetRebel(ctx context.Context, profileID, epithet string) (bool, error) {
	filter := bson.M{"_id": profileID, "is_rebel": false}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"is_rebel":   true,
			"pseudo":     bson.M{"$concat": bson.A{"$pseudo", " ", epithet}},
			"updated_at": time.Now().UTC(),
		}}},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// FindMonarch returns the realm's crowned profile, if any.
func (r *Repository) FindMonarch(ctx context.Context, realmKey string) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"realm_key": realmKey, "is_monarch": true}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// HasMonarch reports whether any profile in the realm holds the crown.
func (r *Repository) HasMonarch(ctx context.Context, realmKey string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"realm_key": realmKey, "is_monarch": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ClaimMonarch crowns a profile. A partial unique index on
// (realm_key, is_monarch=true) makes a second concurrent claim fail with
// a duplicate key, which is reported as claimed=false rather than an error.
func (r *Repository) ClaimMonarch(ctx context.Context, profileID string) (bool, error) {
	filter := bson.M{"_id": profileID, "is_monarch": false}
	update := bson.M{
		"$set": bson.M{"is_monarch": true, "updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// HasBots reports whether the realm already contains bot profiles.
func (r *Repository) HasBots(ctx context.Context, realmKey string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"realm_key": realmKey, "is_bot": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateIndexes creates the indexes the profile rules depend on. The
// unique (realm_key, pseudo) pair makes concurrent bot seeding benign and
// the partial monarch index makes double coronation impossible.
func (r *Repository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
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
		{
			Keys: bson.D{{Key: "realm_key", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_monarch": true}).
				SetName("realm_monarch_unique"),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
