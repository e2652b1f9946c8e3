package routes

import (
	"context"

	"go-westeros/internal/messages/dto"
	"go-westeros/internal/messages/models"
	"go-westeros/internal/messages/services"
	"go-westeros/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the messages routes module
type Module struct {
	service *services.Service
	auth    *middleware.SessionAuth
}

// NewModule creates a new messages routes module
func NewModule(service *services.Service, auth *middleware.SessionAuth) *Module {
	return &Module{
		service: service,
		auth:    auth,
	}
}

// RegisterUnifiedRoutes registers all message routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	// Send a raven
	huma.Register(api, huma.Operation{
		OperationID: "messages-send",
		Method:      "POST",
		Path:        basePath,
		Summary:     "Send Message",
		Description: "Append a message to a realm channel. Private messages require a recipient.",
		Tags:        []string{"Messages"},
	}, func(ctx context.Context, input *dto.SendMessageInput) (*dto.MessageOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		message, err := m.service.Send(ctx, claims.RealmKey, input.Body.Channel,
			claims.ProfileID, claims.Pseudo, input.Body.RecipientID, input.Body.Content)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return &dto.MessageOutput{Body: *message}, nil
	})

	// Read a channel
	huma.Register(api, huma.Operation{
		OperationID: "messages-list",
		Method:      "GET",
		Path:        basePath,
		Summary:     "List Messages",
		Description: "Read a realm channel. The private channel returns only the caller's conversation with the counterpart named in `with`.",
		Tags:        []string{"Messages"},
	}, func(ctx context.Context, input *dto.ListMessagesInput) (*dto.MessageListOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		channel := input.Channel
		if channel == "" {
			channel = models.ChannelPublic
		}

		messages, err := m.service.List(ctx, claims.RealmKey, channel, claims.ProfileID, input.With, input.Limit)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return &dto.MessageListOutput{Body: messages}, nil
	})

	// Status endpoint (public, no auth required)
	huma.Register(api, huma.Operation{
		OperationID: "messages-get-status",
		Method:      "GET",
		Path:        basePath + "/status",
		Summary:     "Get messages module status",
		Description: "Returns the health status of the messages module",
		Tags:        []string{"Module Status"},
	}, func(ctx context.Context, input *struct{}) (*dto.StatusOutput, error) {
		return &dto.StatusOutput{Body: dto.StatusResponse{Module: "messages", Status: "healthy"}}, nil
	})
}
