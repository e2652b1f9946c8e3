package dto

import "go-westeros/internal/actions/models"

// ResolveActionOutput represents the action result (Huma wrapper)
type ResolveActionOutput struct {
	Body models.Result `json:"body"`
}

// StatusResponse represents the actions module status
type StatusResponse struct {
	Module string `json:"module" example:"actions"`
	Status string `json:"status" example:"healthy"`
}

// StatusOutput represents the status response (Huma wrapper)
type StatusOutput struct {
	Body StatusResponse `json:"body"`
}
