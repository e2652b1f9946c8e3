package models

// Bot behaviors drive how lobby-filler opponents present themselves.
const (
	BehaviorAggressive = "aggressive"
	BehaviorDiplomatic = "diplomatic"
	BehaviorBalanced   = "balanced"
)

// Generated power falls in [PowerMin, PowerMin+PowerSpan).
const (
	PowerMin  = 5000
	PowerSpan = 20000
)

// Bot is a synthetic opponent descriptor for lobby filling. Unlike the
// seeded roster, generated bots are not persisted as profiles.
type Bot struct {
	ID       string `json:"id"`
	Pseudo   string `json:"pseudo"`
	House    string `json:"house"`
	Behavior string `json:"behavior"`
	Power    int    `json:"power"`
	Status   string `json:"status"`
}
