package models

import "time"

// Collection names for the crown's ledgers
const (
	LoanCollection  = "loans"
	QuestCollection = "quests"
)

// TaxAmount is the fixed tribute a vassal pays the monarch.
const TaxAmount = 200

// Interest on a loan is drawn uniformly from [LoanRateMin, LoanRateMax).
const (
	LoanRateMin = 5.0
	LoanRateMax = 25.0
)

// Loan statuses
const (
	LoanActive = "active"
	LoanRepaid = "repaid"
)

// Quest statuses
const (
	QuestActive  = "active"
	QuestClaimed = "claimed"
)

// Loan is gold advanced by the realm's banker. TotalDue is fixed when
// the loan is issued and never recalculated.
type Loan struct {
	ID         string    `bson:"_id" json:"id"`
	RealmKey   string    `bson:"realm_key" json:"realm_key"`
	LenderID   string    `bson:"lender_id" json:"lender_id"`
	BorrowerID string    `bson:"borrower_id" json:"borrower_id"`
	Amount     int64     `bson:"amount" json:"amount"`
	Rate       float64   `bson:"rate" json:"rate"`
	TotalDue   int64     `bson:"total_due" json:"total_due"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Quest is a bounty posted by the banker, paid out on claim.
type Quest struct {
	ID          string    `bson:"_id" json:"id"`
	RealmKey    string    `bson:"realm_key" json:"realm_key"`
	CreatorID   string    `bson:"creator_id" json:"creator_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	RewardGold  int64     `bson:"reward_gold" json:"reward_gold"`
	Status      string    `bson:"status" json:"status"`
	ClaimedBy   string    `bson:"claimed_by,omitempty" json:"claimed_by,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
