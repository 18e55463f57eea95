// Package ids generates unique, time-ordered identifiers for entities.
package ids

import "github.com/google/uuid"

// New returns a unique identifier. UUIDv7 keeps ids monotonically
// distinguishable by creation time; on the rare entropy failure it
// falls back to a random UUIDv4.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
