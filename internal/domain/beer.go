package domain

import (
	"time"

	"github.com/google/uuid"
)

// BeerGlass is a glass type a beer is recommended to be served in.
type BeerGlass struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Capacity    *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Beer is a catalogued beer. Name is unique across the catalog.
// The numeric attributes are optional; absent values stay nil.
type Beer struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	IBU             *float64
	Calories        *float64
	ABV             *float64
	Style           *string
	BreweryLocation *string
	GlassID         *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Favorite marks a beer as a favorite of a user.
// A (user, beer) pair exists at most once.
type Favorite struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BeerID    uuid.UUID
	CreatedAt time.Time
}
