package sidebar

import (
	"github.com/google/uuid"

	"github.com/ytget/quickbar/internal/model"
)

// maxIDAttempts bounds retries when a generator returns a taken ID
const maxIDAttempts = 16

// IDGenerator returns a new identifier for a group or item
type IDGenerator func() string

// NewID generates a random UUID
func NewID() string {
	return uuid.NewString()
}

// uniqueID draws IDs from gen until one is not used by any group or item
// in the state. After maxIDAttempts it falls back to a UUID.
func uniqueID(state *model.State, gen IDGenerator) string {
	if gen == nil {
		gen = NewID
	}
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := gen()
		if id != "" && !idInUse(state, id) {
			return id
		}
	}
	for {
		id := NewID()
		if !idInUse(state, id) {
			return id
		}
	}
}

func idInUse(state *model.State, id string) bool {
	for _, g := range state.Groups {
		if g.ID == id {
			return true
		}
		for _, item := range g.Items {
			if item.ID == id {
				return true
			}
		}
	}
	return false
}
