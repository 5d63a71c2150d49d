package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
// PasswordHash is a bcrypt hash; it never leaves the backend.
type User struct {
	ID           uuid.UUID
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string

	// LastBeerAddedAt drives the one-beer-per-day creation throttle.
	// It is nil until the user adds their first beer.
	LastBeerAddedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
