package dto

// ActionRequest is the payload for resolving an action
type ActionRequest struct {
	Kind     string `json:"kind" validate:"required" enum:"siege,bribe,infiltrate,propose-alliance,collect-resource,recruit,rebel" description:"Action kind" example:"siege"`
	TargetID string `json:"target_id,omitempty" description:"Target profile ID; required for siege, bribe, infiltrate and propose-alliance" example:""`
}

// ResolveActionInput represents the action endpoint input
type ResolveActionInput struct {
	Authorization string        `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string        `header:"Cookie" doc:"Authentication cookie"`
	Body          ActionRequest `json:"body"`
}
