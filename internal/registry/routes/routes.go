package routes

import (
	"context"
	"fmt"

	"go-westeros/internal/registry/dto"
	"go-westeros/internal/registry/services"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the registry routes module
type Module struct {
	service *services.Service
}

// NewModule creates a new registry routes module
func NewModule(service *services.Service) *Module {
	return &Module{
		service: service,
	}
}

// RegisterUnifiedRoutes registers all registry routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	// List all houses endpoint
	huma.Register(api, huma.Operation{
		OperationID: "registry-list-houses",
		Method:      "GET",
		Path:        basePath + "/houses",
		Summary:     "List Houses",
		Description: "Retrieve the catalog of playable houses with their lore attributes.",
		Tags:        []string{"Registry"},
	}, func(ctx context.Context, input *struct{}) (*dto.HouseListOutput, error) {
		return &dto.HouseListOutput{Body: m.service.ListHouses()}, nil
	})

	// House information endpoint
	huma.Register(api, huma.Operation{
		OperationID: "registry-get-house",
		Method:      "GET",
		Path:        basePath + "/houses/{house_id}",
		Summary:     "Get House Information",
		Description: "Retrieve a single house by its identifier.",
		Tags:        []string{"Registry"},
	}, func(ctx context.Context, input *dto.GetHouseInput) (*dto.HouseOutput, error) {
		house, ok := m.service.GetHouse(input.HouseID)
		if !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("House %q not found", input.HouseID))
		}
		return &dto.HouseOutput{Body: house}, nil
	})

	// List all cultures endpoint
	huma.Register(api, huma.Operation{
		OperationID: "registry-list-cultures",
		Method:      "GET",
		Path:        basePath + "/cultures",
		Summary:     "List Cultures",
		Description: "Retrieve the catalog of selectable cultures.",
		Tags:        []string{"Registry"},
	}, func(ctx context.Context, input *struct{}) (*dto.CultureListOutput, error) {
		return &dto.CultureListOutput{Body: m.service.ListCultures()}, nil
	})

	// Culture information endpoint
	huma.Register(api, huma.Operation{
		OperationID: "registry-get-culture",
		Method:      "GET",
		Path:        basePath + "/cultures/{culture_id}",
		Summary:     "Get Culture Information",
		Description: "Retrieve a single culture by its identifier.",
		Tags:        []string{"Registry"},
	}, func(ctx context.Context, input *dto.GetCultureInput) (*dto.CultureOutput, error) {
		culture, ok := m.service.GetCulture(input.CultureID)
		if !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("Culture %q not found", input.CultureID))
		}
		return &dto.CultureOutput{Body: culture}, nil
	})

	// Status endpoint (public, no auth required)
	huma.Register(api, huma.Operation{
		OperationID: "registry-get-status",
		Method:      "GET",
		Path:        basePath + "/status",
		Summary:     "Get registry module status",
		Description: "Returns the health status of the registry module",
		Tags:        []string{"Module Status"},
	}, func(ctx context.Context, input *struct{}) (*dto.StatusOutput, error) {
		return &dto.StatusOutput{Body: dto.StatusResponse{Module: "registry", Status: "healthy"}}, nil
	})
}
