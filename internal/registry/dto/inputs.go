package dto

// GetHouseInput represents the input for getting a single house
type GetHouseInput struct {
	HouseID string `path:"house_id" minLength:"1" maxLength:"50" description:"House identifier" example:"stark"`
}

// GetCultureInput represents the input for getting a single culture
type GetCultureInput struct {
	CultureID string `path:"culture_id" minLength:"1" maxLength:"50" description:"Culture identifier" example:"north"`
}
