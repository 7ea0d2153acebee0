package models

import (
	"time"
)

// Kinds of entities the local fallback store accepts.
const (
	LocalKindActivity  = "activity"
	LocalKindNutrition = "nutrition"
	LocalKindRoute     = "route"
)

// ValidLocalKind reports whether kind names a known fallback record kind.
func ValidLocalKind(kind string) bool {
	switch kind {
	case LocalKindActivity, LocalKindNutrition, LocalKindRoute:
		return true
	}
	return false
}

// LocalRecord is one append-only entry in the device-local fallback store.
// Records are never mutated after creation, only listed.
type LocalRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	UserID    string    `json:"user_id"`
	Payload   JSONData  `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}
