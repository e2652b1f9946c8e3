package conflicts

import (
	"context"
	"log/slog"

	"go-westeros/internal/conflicts/routes"
	"go-westeros/internal/conflicts/services"
	profileServices "go-westeros/internal/profiles/services"
	"go-westeros/pkg/database"
	"go-westeros/pkg/events"
	"go-westeros/pkg/middleware"
	"go-westeros/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the conflicts module
type Module struct {
	*module.BaseModule
	service *services.Service
	sweeper *services.Sweeper
	routes  *routes.Module
}

// NewModule creates a new conflicts module instance
func NewModule(mongodb *database.MongoDB, redis *database.Redis, profiles *profileServices.Repository, publisher *events.Publisher, auth *middleware.SessionAuth) *Module {
	repository := services.NewRepository(mongodb)
	service := services.NewService(repository, profiles, publisher)
	sweeper := services.NewSweeper(service)
	routesModule := routes.NewModule(service, auth)

	m := &Module{
		BaseModule: module.NewBaseModule("conflicts", mongodb, redis),
		service:    service,
		sweeper:    sweeper,
		routes:     routesModule,
	}

	slog.Info("Conflicts module initialized", "name", m.Name())

	return m
}

// Service exposes the conflict service to sibling modules (siege creation)
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers all conflict routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
	slog.Info("Conflicts unified routes registered", "basePath", basePath)
}

// Routes is kept for the module interface; conflicts uses only Huma v2 routes
func (m *Module) Routes(r chi.Router) {
}

// StartBackgroundTasks starts the arrival sweeper
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	if err := m.sweeper.Start(ctx); err != nil {
		slog.ErrorContext(ctx, "Failed to start conflict sweeper", "error", err)
	}
}

// Stop halts the sweeper before the base module shuts down
func (m *Module) Stop() {
	m.sweeper.Stop()
	m.BaseModule.Stop()
}

// Name returns the module name
func (m *Module) Name() string {
	return m.BaseModule.Name()
}
