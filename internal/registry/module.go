package registry

import (
	"log/slog"

	"go-westeros/internal/registry/routes"
	"go-westeros/internal/registry/services"
	"go-westeros/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the registry module
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

// NewModule creates a new registry module instance
func NewModule() *Module {
	service := services.NewService()
	routesModule := routes.NewModule(service)

	m := &Module{
		BaseModule: module.NewBaseModule("registry", nil, nil),
		service:    service,
		routes:     routesModule,
	}

	slog.Info("Registry module initialized", "name", m.Name(), "houses", len(service.ListHouses()), "cultures", len(service.ListCultures()))

	return m
}

// Service exposes the catalog service to sibling modules that need house
// and culture lookups (oath validation, faction derivation).
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers all registry routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
	slog.Info("Registry unified routes registered", "basePath", basePath)
}

// Routes is kept for the module interface; registry uses only Huma v2 routes
func (m *Module) Routes(r chi.Router) {
}

// Name returns the module name
func (m *Module) Name() string {
	return m.BaseModule.Name()
}
