package routes

import (
	"context"
	"fmt"

	"go-westeros/internal/actions/dto"
	"go-westeros/internal/actions/models"
	"go-westeros/internal/actions/services"
	"go-westeros/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the actions routes module
type Module struct {
	service *services.Service
	auth    *middleware.SessionAuth
}

// NewModule creates a new actions routes module
func NewModule(service *services.Service, auth *middleware.SessionAuth) *Module {
	return &Module{
		service: service,
		auth:    auth,
	}
}

// RegisterUnifiedRoutes registers all action routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	// Resolve an action
	huma.Register(api, huma.Operation{
		OperationID: "actions-resolve",
		Method:      "POST",
		Path:        basePath,
		Summary:     "Resolve Action",
		Description: "Validate and apply one action for the acting lord. Rule violations return a failed result with a narrative message; state is unchanged.",
		Tags:        []string{"Actions"},
	}, func(ctx context.Context, input *dto.ResolveActionInput) (*dto.ResolveActionOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		kind, ok := models.ParseKind(input.Body.Kind)
		if !ok {
			return nil, huma.Error400BadRequest(fmt.Sprintf("Unknown action kind %q", input.Body.Kind))
		}

		result, err := m.service.Resolve(ctx, claims.ProfileID, kind, input.Body.TargetID)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to resolve action", err)
		}
		return &dto.ResolveActionOutput{Body: *result}, nil
	})

	// Status endpoint (public, no auth required)
	huma.Register(api, huma.Operation{
		OperationID: "actions-get-status",
		Method:      "GET",
		Path:        basePath + "/status",
		Summary:     "Get actions module status",
		Description: "Returns the health status of the actions module",
		Tags:        []string{"Module Status"},
	}, func(ctx context.Context, input *struct{}) (*dto.StatusOutput, error) {
		return &dto.StatusOutput{Body: dto.StatusResponse{Module: "actions", Status: "healthy"}}, nil
	})
}
