package realtime

import (
	"context"
	"log/slog"

	"go-westeros/internal/realtime/routes"
	"go-westeros/internal/realtime/services"
	"go-westeros/pkg/database"
	"go-westeros/pkg/events"
	"go-westeros/pkg/middleware"
	"go-westeros/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module represents the realtime module
type Module struct {
	*module.BaseModule
	hub    *services.Hub
	routes *routes.Module
}

// NewModule creates a new realtime module instance
func NewModule(mongodb *database.MongoDB, redis *database.Redis, publisher *events.Publisher, auth *middleware.SessionAuth) *Module {
	hub := services.NewHub(publisher)
	routesModule := routes.NewModule(hub, auth)

	m := &Module{
		BaseModule: module.NewBaseModule("realtime", mongodb, redis),
		hub:        hub,
		routes:     routesModule,
	}

	slog.Info("Realtime module initialized", "name", m.Name())

	return m
}

// RegisterUnifiedRoutes registers the realtime status route. The
// WebSocket upgrade itself is registered directly on the HTTP router via
// Routes, since the upgrade needs raw response control Huma does not give.
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	huma.Register(api, huma.Operation{
		OperationID: "realtime-get-status",
		Method:      "GET",
		Path:        basePath + "/status",
		Summary:     "Get realtime module status",
		Description: "Returns the health status of the realtime module",
		Tags:        []string{"Module Status"},
	}, func(ctx context.Context, input *struct{}) (*statusOutput, error) {
		return &statusOutput{Body: statusResponse{Module: "realtime", Status: "healthy"}}, nil
	})
	slog.Info("Realtime unified routes registered", "basePath", basePath)
}

// Routes registers the WebSocket upgrade endpoint
func (m *Module) Routes(r chi.Router) {
	r.Get("/connect", m.routes.HandleConnect)
}

// StartBackgroundTasks runs the Redis fan-out loop
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	m.hub.Run(ctx)
}

// Stop closes every socket and halts the fan-out loop
func (m *Module) Stop() {
	m.hub.Stop()
	m.BaseModule.Stop()
}

// Name returns the module name
func (m *Module) Name() string {
	return m.BaseModule.Name()
}

type statusResponse struct {
	Module string `json:"module" example:"realtime"`
	Status string `json:"status" example:"healthy"`
}

type statusOutput struct {
	Body statusResponse `json:"body"`
}
