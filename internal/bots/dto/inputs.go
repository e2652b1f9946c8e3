package dto

// GenerateBotsRequest is the payload for generating lobby fillers
type GenerateBotsRequest struct {
	Count int `json:"count" validate:"gte=0,lte=100" minimum:"0" maximum:"100" description:"How many bots to generate" example:"8"`
}

// GenerateBotsInput represents the generation endpoint input
type GenerateBotsInput struct {
	Authorization string              `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string              `header:"Cookie" doc:"Authentication cookie"`
	Body          GenerateBotsRequest `json:"body"`
}

// SeedRosterInput represents the roster seed endpoint input
type SeedRosterInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
}
