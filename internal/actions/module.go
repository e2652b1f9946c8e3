package actions

import (
	"log/slog"

	"go-westeros/internal/actions/routes"
	"go-westeros/internal/actions/services"
	conflictServices "go-westeros/internal/conflicts/services"
	messageServices "go-westeros/internal/messages/services"
	profileServices "go-westeros/internal/profiles/services"
	registryServices "go-westeros/internal/registry/services"
	"go-westeros/pkg/database"
	"go-westeros/pkg/events"
	"go-westeros/pkg/middleware"
	"go-westeros/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the actions module
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

// NewModule creates a new actions module instance
func NewModule(mongodb *database.MongoDB, redis *database.Redis, profiles *profileServices.Repository, registry *registryServices.Service, conflicts *conflictServices.Service, messages *messageServices.Service, publisher *events.Publisher, auth *middleware.SessionAuth) *Module {
	service := services.NewService(profiles, registry, conflicts, messages, publisher)
	routesModule := routes.NewModule(service, auth)

	m := &Module{
		BaseModule: module.NewBaseModule("actions", mongodb, redis),
		service:    service,
		routes:     routesModule,
	}

	slog.Info("Actions module initialized", "name", m.Name())

	return m
}

// Service exposes the action resolver
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers all action routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
	slog.Info("Actions unified routes registered", "basePath", basePath)
}

// Routes is kept for the module interface; actions uses only Huma v2 routes
func (m *Module) Routes(r chi.Router) {
}

// Name returns the module name
func (m *Module) Name() string {
	return m.BaseModule.Name()
}
