package models

// Kind is the closed set of actions a lord can take. The resolver
// switches over it exhaustively; anything else is rejected at parse time.
type Kind string

const (
	KindSiege      Kind = "siege"
	KindBribe      Kind = "bribe"
	KindInfiltrate Kind = "infiltrate"
	KindMarriage   Kind = "propose-alliance"
	KindCollect    Kind = "collect-resource"
	KindRecruit    Kind = "recruit"
	KindRebel      Kind = "rebel"
)

// Kinds lists every valid action kind.
var Kinds = []Kind{
	KindSiege,
	KindBribe,
	KindInfiltrate,
	KindMarriage,
	KindCollect,
	KindRecruit,
	KindRebel,
}

// ParseKind maps a wire string to an action kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// RequiresTarget reports whether the kind acts on another profile.
func (k Kind) RequiresTarget() bool {
	switch k {
	case KindSiege, KindBribe, KindInfiltrate, KindMarriage:
		return true
	default:
		return false
	}
}

// Result is the outcome of one resolved action. Exactly one result is
// produced per call, success or failure; Message is always set.
type Result struct {
	Kind       Kind   `json:"kind"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ConflictID string `json:"conflict_id,omitempty"`
}
