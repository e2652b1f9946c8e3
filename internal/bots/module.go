package bots

import (
	"log/slog"

	"go-westeros/internal/bots/routes"
	"go-westeros/internal/bots/services"
	profileServices "go-westeros/internal/profiles/services"
	"go-westeros/pkg/database"
	"go-westeros/pkg/events"
	"go-westeros/pkg/middleware"
	"go-westeros/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the bots module
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

// NewModule creates a new bots module instance
func NewModule(mongodb *database.MongoDB, redis *database.Redis, profiles *profileServices.Repository, publisher *events.Publisher, auth *middleware.SessionAuth) *Module {
	service := services.NewService(profiles, publisher)
	routesModule := routes.NewModule(service, auth)

	m := &Module{
		BaseModule: module.NewBaseModule("bots", mongodb, redis),
		service:    service,
		routes:     routesModule,
	}

	slog.Info("Bots module initialized", "name", m.Name())

	return m
}

// Service exposes the bot service
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers all bot routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
	slog.Info("Bots unified routes registered", "basePath", basePath)
}

// Routes is kept for the module interface; bots uses only Huma v2 routes
func (m *Module) Routes(r chi.Router) {
}

// Name returns the module name
func (m *Module) Name() string {
	return m.BaseModule.Name()
}
