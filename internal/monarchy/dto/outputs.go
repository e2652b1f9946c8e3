package dto

import (
	"go-westeros/internal/monarchy/models"
	profileModels "go-westeros/internal/profiles/models"
)

// ElectResponse reports an election's outcome
type ElectResponse struct {
	Elected bool                   `json:"elected" description:"Whether this call crowned a monarch"`
	Monarch *profileModels.Profile `json:"monarch,omitempty" description:"The crowned profile, when this call elected one"`
}

// ElectOutput represents the election response (Huma wrapper)
type ElectOutput struct {
	Body ElectResponse `json:"body"`
}

// TaxResponse reports a paid tribute
type TaxResponse struct {
	Amount      int64  `json:"amount" example:"200"`
	MonarchID   string `json:"monarch_id"`
	MonarchName string `json:"monarch_name"`
}

// PayTaxOutput represents the tax response (Huma wrapper)
type PayTaxOutput struct {
	Body TaxResponse `json:"body"`
}

// LoanOutput represents a single loan response (Huma wrapper)
type LoanOutput struct {
	Body models.Loan `json:"body"`
}

// LoanListOutput represents the borrower's loans
type LoanListOutput struct {
	Body []models.Loan `json:"body" description:"Loans newest first"`
}

// QuestOutput represents a single quest response (Huma wrapper)
type QuestOutput struct {
	Body models.Quest `json:"body"`
}

// QuestListOutput represents a realm's open quests
type QuestListOutput struct {
	Body []models.Quest `json:"body" description:"Active quests newest first"`
}

// StatusResponse represents the monarchy module status
type StatusResponse struct {
	Module string `json:"module" example:"monarchy"`
	Status string `json:"status" example:"healthy"`
}

// StatusOutput represents the status response (Huma wrapper)
type StatusOutput struct {
	Body StatusResponse `json:"body"`
}
