package dto

// SendMessageRequest is the payload for sending a raven
type SendMessageRequest struct {
	Channel     string `json:"channel" validate:"required,oneof=public alliance private" enum:"public,alliance,private" description:"Target channel" example:"public"`
	RecipientID string `json:"recipient_id,omitempty" description:"Required for private messages" example:""`
	Content     string `json:"content" validate:"required,max=500" minLength:"1" maxLength:"500" description:"Message body" example:"The North remembers."`
}

// SendMessageInput represents the send endpoint input
type SendMessageInput struct {
	Authorization string             `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string             `header:"Cookie" doc:"Authentication cookie"`
	Body          SendMessageRequest `json:"body"`
}

// ListMessagesInput represents the list endpoint input
type ListMessagesInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
	Channel       string `query:"channel" enum:"public,alliance,private" description:"Channel to read" example:"public"`
	With          string `query:"with" description:"Counterpart profile ID for private conversations" example:""`
	Limit         int64  `query:"limit" minimum:"0" maximum:"500" description:"Maximum messages to return (0 = no limit)" example:"100"`
}
