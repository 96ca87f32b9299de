package uid

import "github.com/google/uuid"

var _ StringID = (*UUID)(nil)

// UUID generates time-ordered UUID strings, used as request correlation ids.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 when v7 generation fails.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
