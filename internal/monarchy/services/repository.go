package services

import (
	"context"
	"errors"
	"time"

	"go-westeros/internal/monarchy/models"
	"go-westeros/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrLoanNotFound is returned when a loan lookup matches nothing.
var ErrLoanNotFound = errors.New("loan not found")

// ErrQuestNotFound is returned when a quest lookup matches nothing.
var ErrQuestNotFound = errors.New("quest not found")

// Repository handles database operations for loans and quests
type Repository struct {
	mongodb *database.MongoDB
	loans   *mongo.Collection
	quests  *mongo.Collection
}

// NewRepository creates a new monarchy repository
func NewRepository(mongodb *database.MongoDB) *Repository {
	return &Repository{
		mongodb: mongodb,
		loans:   mongodb.Collection(models.LoanCollection),
		quests:  mongodb.Collection(models.QuestCollection),
	}
}

// InsertLoan records a freshly issued loan
func (r *Repository) InsertLoan(ctx context.Context, loan *models.Loan) error {
	now := time.Now().UTC()
	loan.CreatedAt = now
	loan.UpdatedAt = now

	_, err := r.loans.InsertOne(ctx, loan)
	return err
}

// GetLoanByID retrieves a loan by its ID
func (r *Repository) GetLoanByID(ctx context.Context, loanID string) (*models.Loan, error) {
	var loan models.Loan
	err := r.loans.FindOne(ctx, bson.M{"_id": loanID}).Decode(&loan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	return &loan, nil
}

// ListLoansByBorrower returns a borrower's loans, newest first.
func (r *Repository) ListLoansByBorrower(ctx context.Context, borrowerID string) ([]models.Loan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.loans.Find(ctx, bson.M{"borrower_id": borrowerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var loans []models.Loan
	if err := cursor.All(ctx, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

// SetLoanStatus flips a loan between statuses conditionally. Returns
// false when the loan was not in the expected status, so two concurrent
// repayments settle only once.
func (r *Repository) SetLoanStatus(ctx context.Context, loanID, from, to string) (bool, error) {
	filter := bson.M{"_id": loanID, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}

	result, err := r.loans.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// InsertQuest records a new bounty
func (r *Repository) InsertQuest(ctx context.Context, quest *models.Quest) error {
	now := time.Now().UTC()
	quest.CreatedAt = now
	quest.UpdatedAt = now

	_, err := r.quests.InsertOne(ctx, quest)
	return err
}

// GetQuestByID retrieves a quest by its ID
func (r *Repository) GetQuestByID(ctx context.Context, questID string) (*models.Quest, error) {
	var quest models.Quest
	err := r.quests.FindOne(ctx, bson.M{"_id": questID}).Decode(&quest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuestNotFound
		}
		return nil, err
	}
	return &quest, nil
}

// ListActiveQuests returns a realm's open bounties, newest first.
func (r *Repository) ListActiveQuests(ctx context.Context, realmKey string) ([]models.Quest, error) {
	filter := bson.M{"realm_key": realmKey, "status": models.QuestActive}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.quests.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quests []models.Quest
	if err := cursor.All(ctx, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

// ClaimQuest marks an active quest claimed by a profile. Conditional on
// the quest still being active, so only one claimant ever wins it.
func (r *Repository) ClaimQuest(ctx context.Context, questID, claimantID string) (bool, error) {
	filter := bson.M{"_id": questID, "status": models.QuestActive}
	update := bson.M{"$set": bson.M{
		"status":     models.QuestClaimed,
		"claimed_by": claimantID,
		"updated_at": time.Now().UTC(),
	}}

	result, err := r.quests.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// ReleaseQuest reopens a claimed quest after a failed payout.
func (r *Repository) ReleaseQuest(ctx context.Context, questID string) error {
	update := bson.M{
		"$set":   bson.M{"status": models.QuestActive, "updated_at": time.Now().UTC()},
		"$unset": bson.M{"claimed_by": ""},
	}

	_, err := r.quests.UpdateOne(ctx, bson.M{"_id": questID}, update)
	return err
}

// CreateIndexes creates the indexes the crown's ledgers depend on
func (r *Repository) CreateIndexes(ctx context.Context) error {
	loanIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "borrower_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "realm_key", Value: 1}, {Key: "status", Value: 1}}},
	}
	if _, err := r.loans.Indexes().CreateMany(ctx, loanIndexes); err != nil {
		return err
	}

	questIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "realm_key", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	_, err := r.quests.Indexes().CreateMany(ctx, questIndexes)
	return err
}
