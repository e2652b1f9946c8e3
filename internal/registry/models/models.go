package models

// Faction groups houses by their diplomatic standing. Derived from the
// chosen house at oath time and fixed thereafter; rebellion changes a
// profile's privileges, not its faction.
type Faction string

const (
	FactionNoble       Faction = "noble"
	FactionNightwatch  Faction = "nightwatch"
	FactionWhitewalker Faction = "whitewalker"
)

// House is a playable faction with fixed lore attributes. Color and Icon
// are presentation hints carried for clients; Strengths and Weaknesses are
// flavor text with no mechanical effect.
type House struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Motto       string `json:"motto"`
	Seat        string `json:"seat"`
	Region      string `json:"region"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Strengths   string `json:"strengths"`
	Weaknesses  string `json:"weaknesses"`
}

// Culture is an ancestry choice made at oath time.
type Culture struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Bonus string `json:"bonus"`
}
