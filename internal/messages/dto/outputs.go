package dto

import "go-westeros/internal/messages/models"

// MessageOutput represents a single message response (Huma wrapper)
type MessageOutput struct {
	Body models.Message `json:"body"`
}

// MessageListOutput represents a channel listing response
type MessageListOutput struct {
	Body []models.Message `json:"body" description:"Messages oldest first"`
}

// StatusResponse represents the messages module status
type StatusResponse struct {
	Module string `json:"module" example:"messages"`
	Status string `json:"status" example:"healthy"`
}

// StatusOutput represents the status response (Huma wrapper)
type StatusOutput struct {
	Body StatusResponse `json:"body"`
}
