package dto

import "go-westeros/internal/profiles/models"

// OathResponse carries the new profile and its session token
type OathResponse struct {
	Profile models.Profile `json:"profile"`
	Token   string         `json:"token" description:"Signed session token identifying the profile"`
}

// TakeOathOutput represents the oath endpoint response (Huma wrapper)
type TakeOathOutput struct {
	SetCookie string       `header:"Set-Cookie"`
	Body      OathResponse `json:"body"`
}

// ProfileOutput represents a single profile response (Huma wrapper)
type ProfileOutput struct {
	Body models.Profile `json:"body"`
}

// ProfileListOutput represents a realm member list response
type ProfileListOutput struct {
	Body []models.Profile `json:"body" description:"Profiles in the caller's realm, oldest first"`
}

// StatusResponse represents the profiles module status
type StatusResponse struct {
	Module string `json:"module" example:"profiles"`
	Status string `json:"status" example:"healthy"`
}

// StatusOutput represents the status response (Huma wrapper)
type StatusOutput struct {
	Body StatusResponse `json:"body"`
}
