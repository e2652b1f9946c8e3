package models

import "time"

// ProfileCollection is the MongoDB collection name for profiles
const ProfileCollection = "profiles"

// DefaultRealm is the realm assigned when the oath omits one.
const DefaultRealm = "public"

// Starting resources granted at oath time.
const (
	StartingGold     = 1000
	StartingSoldiers = 100
)

// Profile represents a lord in a realm, player-controlled or bot. Gold
// and Soldiers are only ever mutated through the repository's conditional
// or transactional writes.
type Profile struct {
	ID        string    `bson:"_id" json:"id"`
	Pseudo    string    `bson:"pseudo" json:"pseudo"`
	House     string    `bson:"house" json:"house"`
	Culture   string    `bson:"culture" json:"culture"`
	RealmKey  string    `bson:"realm_key" json:"realm_key"`
	X         int       `bson:"x" json:"x"`
	Y         int       `bson:"y" json:"y"`
	Gold      int64     `bson:"gold" json:"gold"`
	Soldiers  int64     `bson:"soldiers" json:"soldiers"`
	IsBot     bool      `bson:"is_bot" json:"is_bot"`
	IsRebel   bool      `bson:"is_rebel" json:"is_rebel"`
	IsMonarch bool      `bson:"is_monarch" json:"is_monarch"`
	IsBanker  bool      `bson:"is_banker" json:"is_banker"`
	Faction   string    `bson:"faction" json:"faction"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
