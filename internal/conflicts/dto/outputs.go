package dto

import "go-westeros/internal/conflicts/models"

// ConflictListOutput represents the caller's conflicts
type ConflictListOutput struct {
	Body []models.Conflict `json:"body" description:"Conflicts the caller is a side of, newest first"`
}

// ReportListOutput represents unread battle reports
type ReportListOutput struct {
	Body []models.Conflict `json:"body" description:"Terminal conflicts the caller has not acknowledged"`
}

// AckResponse confirms a battle report acknowledgment
type AckResponse struct {
	Acknowledged bool `json:"acknowledged" example:"true"`
}

// AckReportOutput represents the acknowledgment response (Huma wrapper)
type AckReportOutput struct {
	Body AckResponse `json:"body"`
}

// StatusResponse represents the conflicts module status
type StatusResponse struct {
	Module string `json:"module" example:"conflicts"`
	Status string `json:"status" example:"healthy"`
}

// StatusOutput represents the status response (Huma wrapper)
type StatusOutput struct {
	Body StatusResponse `json:"body"`
}
