package dto

import "go-westeros/internal/bots/models"

// GenerateBotsOutput represents the generated bots (Huma wrapper)
type GenerateBotsOutput struct {
	Body []models.Bot `json:"body" description:"Generated lobby fillers"`
}

// SeedResponse reports a roster seed's outcome
type SeedResponse struct {
	Seeded  int    `json:"seeded" description:"How many lords this call inserted" example:"11"`
	Message string `json:"message" example:"Winter has come. The Lords of Westeros awaken."`
}

// SeedRosterOutput represents the seed response (Huma wrapper)
type SeedRosterOutput struct {
	Body SeedResponse `json:"body"`
}

// StatusResponse represents the bots module status
type StatusResponse struct {
	Module string `json:"module" example:"bots"`
	Status string `json:"status" example:"healthy"`
}

// StatusOutput represents the status response (Huma wrapper)
type StatusOutput struct {
	Body StatusResponse `json:"body"`
}
