package monarchy

import (
	"log/slog"

	messageServices "go-westeros/internal/messages/services"
	"go-westeros/internal/monarchy/routes"
	"go-westeros/internal/monarchy/services"
	profileServices "go-westeros/internal/profiles/services"
	"go-westeros/pkg/database"
	"go-westeros/pkg/events"
	"go-westeros/pkg/middleware"
	"go-westeros/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the monarchy module
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

// NewModule creates a new monarchy module instance
func NewModule(mongodb *database.MongoDB, redis *database.Redis, profiles *profileServices.Repository, messages *messageServices.Service, publisher *events.Publisher, auth *middleware.SessionAuth) *Module {
	repository := services.NewRepository(mongodb)
	service := services.NewService(repository, profiles, messages, redis, publisher)
	routesModule := routes.NewModule(service, auth)

	m := &Module{
		BaseModule: module.NewBaseModule("monarchy", mongodb, redis),
		service:    service,
		routes:     routesModule,
	}

	slog.Info("Monarchy module initialized", "name", m.Name())

	return m
}

// Service exposes the monarchy service (election hook wiring)
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers all monarchy routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
	slog.Info("Monarchy unified routes registered", "basePath", basePath)
}

// Routes is kept for the module interface; monarchy uses only Huma v2 routes
func (m *Module) Routes(r chi.Router) {
}

// Name returns the module name
func (m *Module) Name() string {
	return m.BaseModule.Name()
}
