package models

import "time"

// ConflictCollection is the MongoDB collection name for conflicts
const ConflictCollection = "conflicts"

// Conflict statuses. Marching is the only non-terminal state; the
// transition out of it is one-way.
const (
	StatusMarching = "marching"
	StatusVictory  = "victory"
	StatusDefeat   = "defeat"
)

// Conflict represents an army marching from one lord to another. Victory
// and defeat are recorded from the attacker's point of view. AckedBy
// lists the profiles that have already seen the battle report, so a
// terminal conflict is surfaced at most once per side.
type Conflict struct {
	ID         string    `bson:"_id" json:"id"`
	RealmKey   string    `bson:"realm_key" json:"realm_key"`
	AttackerID string    `bson:"attacker_id" json:"attacker_id"`
	DefenderID string    `bson:"defender_id" json:"defender_id"`
	Title      string    `bson:"title" json:"title"`
	Status     string    `bson:"status" json:"status"`
	ETAArrival time.Time `bson:"eta_arrival" json:"eta_arrival"`
	AckedBy    []string  `bson:"acked_by" json:"acked_by"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
