package profiles

import (
	"context"
	"log/slog"

	"go-westeros/internal/profiles/routes"
	"go-westeros/internal/profiles/services"
	registryServices "go-westeros/internal/registry/services"
	"go-westeros/pkg/database"
	"go-westeros/pkg/events"
	"go-westeros/pkg/middleware"
	"go-westeros/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the profiles module
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

// NewModule creates a new profiles module instance
func NewModule(mongodb *database.MongoDB, redis *database.Redis, registry *registryServices.Service, publisher *events.Publisher, auth *middleware.SessionAuth) *Module {
	repository := services.NewRepository(mongodb)
	service := services.NewService(repository, registry, publisher)
	routesModule := routes.NewModule(service, auth)

	m := &Module{
		BaseModule: module.NewBaseModule("profiles", mongodb, redis),
		service:    service,
		routes:     routesModule,
	}

	slog.Info("Profiles module initialized", "name", m.Name())

	return m
}

// Service exposes the profile service to sibling modules
func (m *Module) Service() *services.Service {
	return m.service
}

// SetRealmListHook installs the monarchy election hook on the list route
func (m *Module) SetRealmListHook(hook func(ctx context.Context, realmKey string)) {
	m.routes.SetRealmListHook(hook)
}

// RegisterUnifiedRoutes registers all profile routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
	slog.Info("Profiles unified routes registered", "basePath", basePath)
}

// Routes is kept for the module interface; profiles uses only Huma v2 routes
func (m *Module) Routes(r chi.Router) {
}

// Name returns the module name
func (m *Module) Name() string {
	return m.BaseModule.Name()
}
