package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		FirstName:    "Test",
		LastName:     "User " + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, first_name, last_name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedGlass creates a beer glass with a unique name. Returns a filled domain.BeerGlass.
func SeedGlass(t *testing.T, pool *pgxpool.Pool) domain.BeerGlass {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "test glass " + suffix
	capacity := 500.0
	glass := domain.BeerGlass{
		ID:          uuid.New(),
		Name:        "Glass " + suffix,
		Description: &desc,
		Capacity:    &capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO beer_glasses (id, name, description, capacity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		glass.ID, glass.Name, glass.Description, glass.Capacity, glass.CreatedAt, glass.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGlass insert glass: %v", err)
	}

	return glass
}

// SeedBeer creates a beer with a unique name and no glass link.
// Returns a filled domain.Beer.
func SeedBeer(t *testing.T, pool *pgxpool.Pool) domain.Beer {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "test beer " + suffix
	abv := 5.2
	beer := domain.Beer{
		ID:          uuid.New(),
		Name:        "Beer " + suffix,
		Description: &desc,
		ABV:         &abv,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO beers (id, name, description, abv, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		beer.ID, beer.Name, beer.Description, beer.ABV, beer.CreatedAt, beer.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBeer insert beer: %v", err)
	}

	return beer
}
