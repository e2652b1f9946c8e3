package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	messageServices "go-westeros/internal/messages/services"
	"go-westeros/internal/monarchy/models"
	profileModels "go-westeros/internal/profiles/models"
	profileServices "go-westeros/internal/profiles/services"
	"go-westeros/pkg/database"
	"go-westeros/pkg/events"

	"github.com/google/uuid"
)

// electionLockTTL bounds how long a crashed instance can hold a realm's
// election lock.
const electionLockTTL = 10 * time.Second

// Service implements monarchy succession, taxation and the banker's
// loan and quest ledgers.
type Service struct {
	repository *Repository
	profiles   *profileServices.Repository
	messages   *messageServices.Service
	redis      *database.Redis
	events     *events.Publisher
}

// NewService creates a new monarchy service
func NewService(repository *Repository, profiles *profileServices.Repository, messages *messageServices.Service, redis *database.Redis, publisher *events.Publisher) *Service {
	return &Service{
		repository: repository,
		profiles:   profiles,
		messages:   messages,
		redis:      redis,
		events:     publisher,
	}
}

// TotalDue computes a loan's fixed repayment amount.
func TotalDue(amount int64, rate float64) int64 {
	return int64(math.Floor(float64(amount) * (1 + rate/100)))
}

// EnsureMonarch crowns a uniformly random realm member when the realm
// has none. The per-realm Redis lock serializes concurrent elections
// across instances; the claim itself is still conditional, so even a
// lost lock cannot produce two crowns.
func (s *Service) EnsureMonarch(ctx context.Context, realmKey string) (*profileModels.Profile, error) {
	crowned, err := s.profiles.HasMonarch(ctx, realmKey)
	if err != nil {
		return nil, err
	}
	if crowned {
		return nil, nil
	}

	lockKey := "monarchy:election:" + realmKey
	owner := uuid.New().String()
	acquired, err := s.redis.AcquireLock(ctx, lockKey, owner, electionLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		// Another instance is holding the election.
		return nil, nil
	}
	defer func() {
		if err := s.redis.ReleaseLock(context.WithoutCancel(ctx), lockKey, owner); err != nil {
			slog.ErrorContext(ctx, "Failed to release election lock", "error", err, "realm", realmKey)
		}
	}()

	// Re-check under the lock.
	crowned, err = s.profiles.HasMonarch(ctx, realmKey)
	if err != nil {
		return nil, err
	}
	if crowned {
		return nil, nil
	}

	members, err := s.profiles.ListByRealm(ctx, realmKey)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	chosen := members[rand.Intn(len(members))]
	claimed, err := s.profiles.ClaimMonarch(ctx, chosen.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, nil
	}

	slog.InfoContext(ctx, "Monarch crowned", "realm", realmKey, "monarch", chosen.Pseudo)
	s.events.Publish(ctx, events.Event{
		Kind:      events.KindProfileUpdated,
		RealmKey:  realmKey,
		SubjectID: chosen.ID,
		Detail:    "coronation",
	})

	if _, err := s.messages.Broadcast(ctx, realmKey, chosen.ID, chosen.Pseudo,
		fmt.Sprintf("%s has been crowned ruler of the realm. Long may they reign!", chosen.Pseudo)); err != nil {
		slog.ErrorContext(ctx, "Failed to announce coronation", "error", err, "realm", realmKey)
	}

	chosen.IsMonarch = true
	return &chosen, nil
}

// PayTax moves the fixed tribute from a vassal to the realm's monarch.
// Both sides move in one transaction or not at all.
func (s *Service) PayTax(ctx context.Context, payerID string) (*profileModels.Profile, error) {
	payer, err := s.profiles.GetByID(ctx, payerID)
	if err != nil {
		return nil, err
	}
	if payer.IsMonarch {
		return nil, fmt.Errorf("the monarch pays no tribute")
	}

	monarch, err := s.profiles.FindMonarch(ctx, payer.RealmKey)
	if err != nil {
		if err == profileServices.ErrProfileNotFound {
			return nil, fmt.Errorf("the realm has no monarch to pay")
		}
		return nil, err
	}

	if err := s.profiles.TransferGold(ctx, payer.ID, monarch.ID, models.TaxAmount); err != nil {
		if err == profileServices.ErrInsufficientGold {
			return nil, fmt.Errorf("tribute is %d gold and your coffers are short", models.TaxAmount)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "Tax paid", "payer", payer.Pseudo, "monarch", monarch.Pseudo, "amount", models.TaxAmount)
	s.events.Publish(ctx, events.Event{
		Kind:      events.KindProfileUpdated,
		RealmKey:  payer.RealmKey,
		SubjectID: payer.ID,
		Detail:    "tax",
	})

	return monarch, nil
}

// IssueLoan advances gold from the banker to a borrower and records the
// debt. The interest rate is drawn at issuance and the total due never
// changes afterwards.
func (s *Service) IssueLoan(ctx context.Context, lenderID, borrowerID string, amount int64) (*models.Loan, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("loan amount must be positive")
	}
	if lenderID == borrowerID {
		return nil, fmt.Errorf("the banker cannot lend to themselves")
	}

	lender, err := s.profiles.GetByID(ctx, lenderID)
	if err != nil {
		return nil, err
	}
	if !lender.IsBanker {
		return nil, fmt.Errorf("only the Iron Bank's agent can issue loans")
	}

	borrower, err := s.profiles.GetByID(ctx, borrowerID)
	if err != nil {
		if err == profileServices.ErrProfileNotFound {
			return nil, fmt.Errorf("no such borrower")
		}
		return nil, err
	}
	if borrower.RealmKey != lender.RealmKey {
		return nil, fmt.Errorf("the bank does not lend across realms")
	}

	if err := s.profiles.TransferGold(ctx, lender.ID, borrower.ID, amount); err != nil {
		if err == profileServices.ErrInsufficientGold {
			return nil, fmt.Errorf("the bank's coffers cannot cover %d gold", amount)
		}
		return nil, err
	}

	rate := models.LoanRateMin + rand.Float64()*(models.LoanRateMax-models.LoanRateMin)
	loan := &models.Loan{
		ID:         uuid.New().String(),
		RealmKey:   lender.RealmKey,
		LenderID:   lender.ID,
		BorrowerID: borrower.ID,
		Amount:     amount,
		Rate:       rate,
		TotalDue:   TotalDue(amount, rate),
		Status:     models.LoanActive,
	}

	if err := s.repository.InsertLoan(ctx, loan); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Loan issued",
		"lender", lender.Pseudo, "borrower", borrower.Pseudo, "amount", amount, "total_due", loan.TotalDue)
	s.events.Publish(ctx, events.Event{
		Kind:      events.KindProfileUpdated,
		RealmKey:  loan.RealmKey,
		SubjectID: borrower.ID,
		Detail:    "loan",
	})

	return loan, nil
}

// ListLoans returns a borrower's loans.
func (s *Service) ListLoans(ctx context.Context, borrowerID string) ([]models.Loan, error) {
	return s.repository.ListLoansByBorrower(ctx, borrowerID)
}

// RepayLoan settles an active loan: the status flip is the claim, the
// transfer follows, and a failed transfer reopens the loan.
func (s *Service) RepayLoan(ctx context.Context, loanID, borrowerID string) (*models.Loan, error) {
	loan, err := s.repository.GetLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.BorrowerID != borrowerID {
		return nil, fmt.Errorf("this debt is not yours to settle")
	}
	if loan.Status != models.LoanActive {
		return nil, fmt.Errorf("this loan is already settled")
	}

	settled, err := s.repository.SetLoanStatus(ctx, loan.ID, models.LoanActive, models.LoanRepaid)
	if err != nil {
		return nil, err
	}
	if !settled {
		return nil, fmt.Errorf("this loan is already settled")
	}

	if err := s.profiles.TransferGold(ctx, loan.BorrowerID, loan.LenderID, loan.TotalDue); err != nil {
		if _, revertErr := s.repository.SetLoanStatus(ctx, loan.ID, models.LoanRepaid, models.LoanActive); revertErr != nil {
			slog.ErrorContext(ctx, "Failed to reopen loan after failed repayment", "error", revertErr, "loan_id", loan.ID)
		}
		if err == profileServices.ErrInsufficientGold {
			return nil, fmt.Errorf("repayment is %d gold and your coffers are short", loan.TotalDue)
		}
		return nil, err
	}

	loan.Status = models.LoanRepaid
	slog.InfoContext(ctx, "Loan repaid", "loan_id", loan.ID, "total_due", loan.TotalDue)
	s.events.Publish(ctx, events.Event{
		Kind:      events.KindProfileUpdated,
		RealmKey:  loan.RealmKey,
		SubjectID: loan.BorrowerID,
		Detail:    "loan-repaid",
	})

	return loan, nil
}

// CreateQuest posts a bounty on the banker's board.
func (s *Service) CreateQuest(ctx context.Context, creatorID, title, description string, rewardGold int64) (*models.Quest, error) {
	if rewardGold <= 0 {
		return nil, fmt.Errorf("quest reward must be positive")
	}

	creator, err := s.profiles.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if !creator.IsBanker {
		return nil, fmt.Errorf("only the Iron Bank's agent can post quests")
	}

	quest := &models.Quest{
		ID:          uuid.New().String(),
		RealmKey:    creator.RealmKey,
		CreatorID:   creator.ID,
		Title:       title,
		Description: description,
		RewardGold:  rewardGold,
		Status:      models.QuestActive,
	}

	if err := s.repository.InsertQuest(ctx, quest); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Quest posted", "creator", creator.Pseudo, "title", title, "reward", rewardGold)
	return quest, nil
}

// ListQuests returns a realm's open bounties.
func (s *Service) ListQuests(ctx context.Context, realmKey string) ([]models.Quest, error) {
	return s.repository.ListActiveQuests(ctx, realmKey)
}

// ClaimQuest awards a bounty: the conditional claim picks the single
// winner, the payout follows, and a failed payout reopens the quest.
func (s *Service) ClaimQuest(ctx context.Context, questID, claimantID string) (*models.Quest, error) {
	quest, err := s.repository.GetQuestByID(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest.CreatorID == claimantID {
		return nil, fmt.Errorf("you cannot claim your own bounty")
	}
	if quest.Status != models.QuestActive {
		return nil, fmt.Errorf("this quest is already claimed")
	}

	claimed, err := s.repository.ClaimQuest(ctx, quest.ID, claimantID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, fmt.Errorf("this quest is already claimed")
	}

	if err := s.profiles.TransferGold(ctx, quest.CreatorID, claimantID, quest.RewardGold); err != nil {
		if releaseErr := s.repository.ReleaseQuest(ctx, quest.ID); releaseErr != nil {
			slog.ErrorContext(ctx, "Failed to reopen quest after failed payout", "error", releaseErr, "quest_id", quest.ID)
		}
		if err == profileServices.ErrInsufficientGold {
			return nil, fmt.Errorf("the quest giver cannot cover the reward")
		}
		return nil, err
	}

	quest.Status = models.QuestClaimed
	quest.ClaimedBy = claimantID
	slog.InfoContext(ctx, "Quest claimed", "quest_id", quest.ID, "claimant", claimantID)
	s.events.Publish(ctx, events.Event{
		Kind:      events.KindProfileUpdated,
		RealmKey:  quest.RealmKey,
		SubjectID: claimantID,
		Detail:    "quest",
	})

	return quest, nil
}
