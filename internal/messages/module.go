package messages

import (
	"log/slog"

	"go-westeros/internal/messages/routes"
	"go-westeros/internal/messages/services"
	"go-westeros/pkg/database"
	"go-westeros/pkg/events"
	"go-westeros/pkg/middleware"
	"go-westeros/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the messages module
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

// NewModule creates a new messages module instance
func NewModule(mongodb *database.MongoDB, redis *database.Redis, publisher *events.Publisher, auth *middleware.SessionAuth) *Module {
	repository := services.NewRepository(mongodb)
	service := services.NewService(repository, publisher)
	routesModule := routes.NewModule(service, auth)

	m := &Module{
		BaseModule: module.NewBaseModule("messages", mongodb, redis),
		service:    service,
		routes:     routesModule,
	}

	slog.Info("Messages module initialized", "name", m.Name())

	return m
}

// Service exposes the message service to sibling modules (marriage
// broadcasts, coronation notices)
func (m *Module) Service() *services.Service {
	return m.service
}

// RegisterUnifiedRoutes registers all message routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
	slog.Info("Messages unified routes registered", "basePath", basePath)
}

// Routes is kept for the module interface; messages uses only Huma v2 routes
func (m *Module) Routes(r chi.Router) {
}

// Name returns the module name
func (m *Module) Name() string {
	return m.BaseModule.Name()
}
