package routes

import (
	"context"

	"go-westeros/internal/bots/dto"
	"go-westeros/internal/bots/services"
	"go-westeros/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the bots routes module
type Module struct {
	service *services.Service
	auth    *middleware.SessionAuth
}

// NewModule creates a new bots routes module
func NewModule(service *services.Service, auth *middleware.SessionAuth) *Module {
	return &Module{
		service: service,
		auth:    auth,
	}
}

// RegisterUnifiedRoutes registers all bot routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	// Lobby filler generation
	huma.Register(api, huma.Operation{
		OperationID: "bots-generate",
		Method:      "POST",
		Path:        basePath + "/generate",
		Summary:     "Generate Bots",
		Description: "Produce synthetic opponent descriptors for lobby filling. Nothing is persisted.",
		Tags:        []string{"Bots"},
	}, func(ctx context.Context, input *dto.GenerateBotsInput) (*dto.GenerateBotsOutput, error) {
		if _, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie); err != nil {
			return nil, err
		}
		return &dto.GenerateBotsOutput{Body: m.service.GenerateBots(input.Body.Count)}, nil
	})

	// Fixed roster seed
	huma.Register(api, huma.Operation{
		OperationID: "bots-seed-roster",
		Method:      "POST",
		Path:        basePath + "/seed",
		Summary:     "Seed Lore Roster",
		Description: "Insert the fixed roster of famous lords into the caller's realm. Idempotent; an already-populated realm is left untouched.",
		Tags:        []string{"Bots"},
	}, func(ctx context.Context, input *dto.SeedRosterInput) (*dto.SeedRosterOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		seeded, err := m.service.SeedRoster(ctx, claims.RealmKey)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to seed roster", err)
		}

		message := "Winter has come. The Lords of Westeros and the Wights of the North awaken."
		if seeded == 0 {
			message = "The realm is already populated."
		}
		return &dto.SeedRosterOutput{Body: dto.SeedResponse{Seeded: seeded, Message: message}}, nil
	})

	// Status endpoint (public, no auth required)
	huma.Register(api, huma.Operation{
		OperationID: "bots-get-status",
		Method:      "GET",
		Path:        basePath + "/status",
		Summary:     "Get bots module status",
		Description: "Returns the health status of the bots module",
		Tags:        []string{"Module Status"},
	}, func(ctx context.Context, input *struct{}) (*dto.StatusOutput, error) {
		return &dto.StatusOutput{Body: dto.StatusResponse{Module: "bots", Status: "healthy"}}, nil
	})
}
