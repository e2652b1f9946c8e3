package dto

// ListConflictsInput represents the input for listing the caller's conflicts
type ListConflictsInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
}

// ListReportsInput represents the input for listing unread battle reports
type ListReportsInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
}

// AckReportInput represents the input for acknowledging a battle report
type AckReportInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
	ConflictID    string `path:"conflict_id" minLength:"1" description:"Conflict ID" example:"6f1c2a3b-4d5e-6789-a0b1-c2d3e4f5a6b7"`
}
