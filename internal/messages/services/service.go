package services

import (
	"context"
	"fmt"
	"strings"

	"go-westeros/internal/messages/models"
	"go-westeros/pkg/events"

	"github.com/google/uuid"
)

// Service implements the raven message log
type Service struct {
	repository *Repository
	events     *events.Publisher
}

// NewService creates a new message service
func NewService(repository *Repository, publisher *events.Publisher) *Service {
	return &Service{
		repository: repository,
		events:     publisher,
	}
}

// Send appends a message to a realm channel. Private messages require a
// recipient; the other channels reject one.
func (s *Service) Send(ctx context.Context, realmKey, channel, senderID, senderName, recipientID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("message content is empty")
	}

	switch channel {
	case models.ChannelPublic, models.ChannelAlliance:
		if recipientID != "" {
			return nil, fmt.Errorf("channel %q does not accept a recipient", channel)
		}
	case models.ChannelPrivate:
		if recipientID == "" {
			return nil, fmt.Errorf("private messages require a recipient")
		}
	default:
		return nil, fmt.Errorf("unknown channel %q", channel)
	}

	message := &models.Message{
		ID:          uuid.New().String(),
		RealmKey:    realmKey,
		Channel:     channel,
		SenderID:    senderID,
		SenderName:  senderName,
		RecipientID: recipientID,
		Content:     content,
	}

	if err := s.repository.Insert(ctx, message); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, events.Event{
		Kind:      events.KindMessageCreated,
		RealmKey:  realmKey,
		SubjectID: message.ID,
		Detail:    channel,
	})

	return message, nil
}

// Broadcast appends a public-channel announcement. Used by the rules
// modules for diplomacy and coronation notices.
func (s *Service) Broadcast(ctx context.Context, realmKey, senderID, senderName, content string) (*models.Message, error) {
	return s.Send(ctx, realmKey, models.ChannelPublic, senderID, senderName, "", content)
}

// List returns a channel's messages. For the private channel the caller
// only ever sees its own conversation with the named counterpart.
func (s *Service) List(ctx context.Context, realmKey, channel, callerID, withID string, limit int64) ([]models.Message, error) {
	if channel == models.ChannelPrivate {
		if withID == "" {
			return nil, fmt.Errorf("private listing requires a counterpart")
		}
		return s.repository.ListPrivatePair(ctx, realmKey, callerID, withID, limit)
	}
	return s.repository.ListChannel(ctx, realmKey, channel, limit)
}
