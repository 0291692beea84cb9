package pkguid

import "github.com/google/uuid"

// UUID generates time-ordered (version 7) UUID strings.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

// Generate falls back to a random (version 4) UUID if the clock source fails.
func (*UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
