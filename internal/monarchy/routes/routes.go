package routes

import (
	"context"

	"go-westeros/internal/monarchy/dto"
	"go-westeros/internal/monarchy/models"
	"go-westeros/internal/monarchy/services"
	"go-westeros/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the monarchy routes module
type Module struct {
	service *services.Service
	auth    *middleware.SessionAuth
}

// NewModule creates a new monarchy routes module
func NewModule(service *services.Service, auth *middleware.SessionAuth) *Module {
	return &Module{
		service: service,
		auth:    auth,
	}
}

// RegisterUnifiedRoutes registers all monarchy routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	// Election
	huma.Register(api, huma.Operation{
		OperationID: "monarchy-elect",
		Method:      "POST",
		Path:        basePath + "/elect",
		Summary:     "Elect Monarch",
		Description: "Crown a uniformly random realm member if the realm has none. Safe under concurrent invocation; at most one profile ever holds the crown.",
		Tags:        []string{"Monarchy"},
	}, func(ctx context.Context, input *dto.ElectInput) (*dto.ElectOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		monarch, err := m.service.EnsureMonarch(ctx, claims.RealmKey)
		if err != nil {
			return nil, huma.Error500InternalServerError("Election failed", err)
		}
		return &dto.ElectOutput{Body: dto.ElectResponse{Elected: monarch != nil, Monarch: monarch}}, nil
	})

	// Taxation
	huma.Register(api, huma.Operation{
		OperationID: "monarchy-pay-tax",
		Method:      "POST",
		Path:        basePath + "/tax",
		Summary:     "Pay Tax",
		Description: "Pay the fixed tribute to the realm's monarch. The transfer is atomic: both balances move or neither does.",
		Tags:        []string{"Monarchy"},
	}, func(ctx context.Context, input *dto.PayTaxInput) (*dto.PayTaxOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		monarch, err := m.service.PayTax(ctx, claims.ProfileID)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return &dto.PayTaxOutput{Body: dto.TaxResponse{
			Amount:      models.TaxAmount,
			MonarchID:   monarch.ID,
			MonarchName: monarch.Pseudo,
		}}, nil
	})

	// Loan issuance (banker only)
	huma.Register(api, huma.Operation{
		OperationID: "monarchy-issue-loan",
		Method:      "POST",
		Path:        basePath + "/loans",
		Summary:     "Issue Loan",
		Description: "Advance gold from the banker to a borrower. Interest is drawn at issuance and the total due never changes.",
		Tags:        []string{"Monarchy"},
	}, func(ctx context.Context, input *dto.IssueLoanInput) (*dto.LoanOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		loan, err := m.service.IssueLoan(ctx, claims.ProfileID, input.Body.BorrowerID, input.Body.Amount)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return &dto.LoanOutput{Body: *loan}, nil
	})

	// Borrower's loans
	huma.Register(api, huma.Operation{
		OperationID: "monarchy-list-loans",
		Method:      "GET",
		Path:        basePath + "/loans",
		Summary:     "List Loans",
		Description: "Retrieve the caller's loans, newest first.",
		Tags:        []string{"Monarchy"},
	}, func(ctx context.Context, input *dto.ListLoansInput) (*dto.LoanListOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		loans, err := m.service.ListLoans(ctx, claims.ProfileID)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to list loans", err)
		}
		return &dto.LoanListOutput{Body: loans}, nil
	})

	// Loan repayment
	huma.Register(api, huma.Operation{
		OperationID: "monarchy-repay-loan",
		Method:      "POST",
		Path:        basePath + "/loans/{loan_id}/repay",
		Summary:     "Repay Loan",
		Description: "Settle an active loan by paying the fixed total due back to the lender.",
		Tags:        []string{"Monarchy"},
	}, func(ctx context.Context, input *dto.RepayLoanInput) (*dto.LoanOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		loan, err := m.service.RepayLoan(ctx, input.LoanID, claims.ProfileID)
		if err != nil {
			if err == services.ErrLoanNotFound {
				return nil, huma.Error404NotFound("Loan not found")
			}
			return nil, huma.Error400BadRequest(err.Error())
		}
		return &dto.LoanOutput{Body: *loan}, nil
	})

	// Quest creation (banker only)
	huma.Register(api, huma.Operation{
		OperationID: "monarchy-create-quest",
		Method:      "POST",
		Path:        basePath + "/quests",
		Summary:     "Create Quest",
		Description: "Post a bounty paid out in gold to whoever claims it first.",
		Tags:        []string{"Monarchy"},
	}, func(ctx context.Context, input *dto.CreateQuestInput) (*dto.QuestOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		quest, err := m.service.CreateQuest(ctx, claims.ProfileID, input.Body.Title, input.Body.Description, input.Body.RewardGold)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return &dto.QuestOutput{Body: *quest}, nil
	})

	// Open quests
	huma.Register(api, huma.Operation{
		OperationID: "monarchy-list-quests",
		Method:      "GET",
		Path:        basePath + "/quests",
		Summary:     "List Quests",
		Description: "Retrieve the realm's open bounties, newest first.",
		Tags:        []string{"Monarchy"},
	}, func(ctx context.Context, input *dto.ListQuestsInput) (*dto.QuestListOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		quests, err := m.service.ListQuests(ctx, claims.RealmKey)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to list quests", err)
		}
		return &dto.QuestListOutput{Body: quests}, nil
	})

	// Quest claim
	huma.Register(api, huma.Operation{
		OperationID: "monarchy-claim-quest",
		Method:      "POST",
		Path:        basePath + "/quests/{quest_id}/claim",
		Summary:     "Claim Quest",
		Description: "Claim an open bounty. Only the first claimant wins; the reward moves atomically from the quest giver.",
		Tags:        []string{"Monarchy"},
	}, func(ctx context.Context, input *dto.ClaimQuestInput) (*dto.QuestOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		quest, err := m.service.ClaimQuest(ctx, input.QuestID, claims.ProfileID)
		if err != nil {
			if err == services.ErrQuestNotFound {
				return nil, huma.Error404NotFound("Quest not found")
			}
			return nil, huma.Error400BadRequest(err.Error())
		}
		return &dto.QuestOutput{Body: *quest}, nil
	})

	// Status endpoint (public, no auth required)
	huma.Register(api, huma.Operation{
		OperationID: "monarchy-get-status",
		Method:      "GET",
		Path:        basePath + "/status",
		Summary:     "Get monarchy module status",
		Description: "Returns the health status of the monarchy module",
		Tags:        []string{"Module Status"},
	}, func(ctx context.Context, input *struct{}) (*dto.StatusOutput, error) {
		return &dto.StatusOutput{Body: dto.StatusResponse{Module: "monarchy", Status: "healthy"}}, nil
	})
}
