package dto

// ElectInput represents the election endpoint input
type ElectInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
}

// PayTaxInput represents the tax endpoint input
type PayTaxInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
}

// IssueLoanRequest is the payload for issuing a loan
type IssueLoanRequest struct {
	BorrowerID string `json:"borrower_id" validate:"required" minLength:"1" description:"Borrower profile ID"`
	Amount     int64  `json:"amount" validate:"required,gt=0" minimum:"1" description:"Principal in gold" example:"1000"`
}

// IssueLoanInput represents the loan issuance input
type IssueLoanInput struct {
	Authorization string           `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string           `header:"Cookie" doc:"Authentication cookie"`
	Body          IssueLoanRequest `json:"body"`
}

// ListLoansInput represents the loan listing input
type ListLoansInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
}

// RepayLoanInput represents the loan repayment input
type RepayLoanInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
	LoanID        string `path:"loan_id" minLength:"1" description:"Loan ID"`
}

// CreateQuestRequest is the payload for posting a quest
type CreateQuestRequest struct {
	Title       string `json:"title" validate:"required,max=100" minLength:"1" maxLength:"100" description:"Quest title" example:"Clear the Kingsroad"`
	Description string `json:"description,omitempty" maxLength:"500" description:"Quest details"`
	RewardGold  int64  `json:"reward_gold" validate:"required,gt=0" minimum:"1" description:"Gold paid on claim" example:"300"`
}

// CreateQuestInput represents the quest creation input
type CreateQuestInput struct {
	Authorization string             `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string             `header:"Cookie" doc:"Authentication cookie"`
	Body          CreateQuestRequest `json:"body"`
}

// ListQuestsInput represents the quest listing input
type ListQuestsInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
}

// ClaimQuestInput represents the quest claim input
type ClaimQuestInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
	QuestID       string `path:"quest_id" minLength:"1" description:"Quest ID"`
}
