package models

import "time"

// MessageCollection is the MongoDB collection name for raven messages
const MessageCollection = "messages"

// Channels a raven can fly on. Private messages carry a recipient and
// are only visible to the conversation pair.
const (
	ChannelPublic   = "public"
	ChannelAlliance = "alliance"
	ChannelPrivate  = "private"
)

// Message is one entry in the realm's append-only raven log.
type Message struct {
	ID          string    `bson:"_id" json:"id"`
	RealmKey    string    `bson:"realm_key" json:"realm_key"`
	Channel     string    `bson:"channel" json:"channel"`
	SenderID    string    `bson:"sender_id" json:"sender_id"`
	SenderName  string    `bson:"sender_name" json:"sender_name"`
	RecipientID string    `bson:"recipient_id,omitempty" json:"recipient_id,omitempty"`
	Content     string    `bson:"content" json:"content"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
