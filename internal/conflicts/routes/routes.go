package routes

import (
	"context"

	"go-westeros/internal/conflicts/dto"
	"go-westeros/internal/conflicts/services"
	"go-westeros/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the conflicts routes module
type Module struct {
	service *services.Service
	auth    *middleware.SessionAuth
}

// NewModule creates a new conflicts routes module
func NewModule(service *services.Service, auth *middleware.SessionAuth) *Module {
	return &Module{
		service: service,
		auth:    auth,
	}
}

// RegisterUnifiedRoutes registers all conflict routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	// List the caller's conflicts
	huma.Register(api, huma.Operation{
		OperationID: "conflicts-list",
		Method:      "GET",
		Path:        basePath,
		Summary:     "List Conflicts",
		Description: "Retrieve the conflicts the caller is attacker or defender of, newest first.",
		Tags:        []string{"Conflicts"},
	}, func(ctx context.Context, input *dto.ListConflictsInput) (*dto.ConflictListOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		conflicts, err := m.service.ListForProfile(ctx, claims.RealmKey, claims.ProfileID)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to list conflicts", err)
		}
		return &dto.ConflictListOutput{Body: conflicts}, nil
	})

	// Unread battle reports
	huma.Register(api, huma.Operation{
		OperationID: "conflicts-list-reports",
		Method:      "GET",
		Path:        basePath + "/reports",
		Summary:     "List Battle Reports",
		Description: "Retrieve the resolved conflicts the caller has not acknowledged yet. Each report is surfaced at most once per profile.",
		Tags:        []string{"Conflicts"},
	}, func(ctx context.Context, input *dto.ListReportsInput) (*dto.ReportListOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		reports, err := m.service.ListReports(ctx, claims.RealmKey, claims.ProfileID)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to list battle reports", err)
		}
		return &dto.ReportListOutput{Body: reports}, nil
	})

	// Acknowledge a battle report
	huma.Register(api, huma.Operation{
		OperationID: "conflicts-ack-report",
		Method:      "POST",
		Path:        basePath + "/{conflict_id}/ack",
		Summary:     "Acknowledge Battle Report",
		Description: "Record that the caller has seen a resolved conflict's battle report. Repeated acknowledgments are harmless.",
		Tags:        []string{"Conflicts"},
	}, func(ctx context.Context, input *dto.AckReportInput) (*dto.AckReportOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		if err := m.service.AcknowledgeReport(ctx, input.ConflictID, claims.ProfileID); err != nil {
			if err == services.ErrConflictNotFound {
				return nil, huma.Error404NotFound("Battle report not found")
			}
			return nil, huma.Error500InternalServerError("Failed to acknowledge battle report", err)
		}
		return &dto.AckReportOutput{Body: dto.AckResponse{Acknowledged: true}}, nil
	})

	// Status endpoint (public, no auth required)
	huma.Register(api, huma.Operation{
		OperationID: "conflicts-get-status",
		Method:      "GET",
		Path:        basePath + "/status",
		Summary:     "Get conflicts module status",
		Description: "Returns the health status of the conflicts module",
		Tags:        []string{"Module Status"},
	}, func(ctx context.Context, input *struct{}) (*dto.StatusOutput, error) {
		return &dto.StatusOutput{Body: dto.StatusResponse{Module: "conflicts", Status: "healthy"}}, nil
	})
}
