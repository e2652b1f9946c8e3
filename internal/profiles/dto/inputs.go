package dto

// OathRequest is the onboarding payload
type OathRequest struct {
	Pseudo   string `json:"pseudo" validate:"required,lord_pseudo" minLength:"3" maxLength:"32" description:"Display name, unique within the realm" example:"Jon of the Vale"`
	House    string `json:"house" validate:"required" minLength:"1" description:"House identifier from the registry" example:"stark"`
	Culture  string `json:"culture" validate:"required" minLength:"1" description:"Culture identifier from the registry" example:"north"`
	RealmKey string `json:"realm_key,omitempty" maxLength:"64" description:"Realm to join; defaults to public" example:"public"`
}

// TakeOathInput represents the oath endpoint input
type TakeOathInput struct {
	Body OathRequest `json:"body"`
}

// GetProfileInput represents the input for fetching a single profile
type GetProfileInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
	ProfileID     string `path:"profile_id" minLength:"1" description:"Profile ID" example:"8f14e45f-ceea-467f-a0f6-dd7f3f6c5b1a"`
}

// GetMeInput represents the input for fetching the caller's own profile
type GetMeInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
}

// ListProfilesInput represents the input for listing the caller's realm
type ListProfilesInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" doc:"Authentication cookie"`
}
