package dto

import "go-westeros/internal/registry/models"

// HouseOutput represents a single house response (Huma wrapper)
type HouseOutput struct {
	Body models.House `json:"body"`
}

// HouseListOutput represents the full house catalog response
type HouseListOutput struct {
	Body []models.House `json:"body" description:"List of playable houses"`
}

// CultureOutput represents a single culture response (Huma wrapper)
type CultureOutput struct {
	Body models.Culture `json:"body"`
}

// CultureListOutput represents the full culture catalog response
type CultureListOutput struct {
	Body []models.Culture `json:"body" description:"List of cultures"`
}

// StatusResponse represents the registry module status
type StatusResponse struct {
	Module string `json:"module" description:"Module name" example:"registry"`
	Status string `json:"status" description:"Module health status" example:"healthy"`
}

// StatusOutput represents the status response (Huma wrapper)
type StatusOutput struct {
	Body StatusResponse `json:"body"`
}
