// Package beer implements the Beer repository using PostgreSQL.
package beer

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wojtowpj/beerlog-backend/internal/adapter/postgres"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

const beerColumns = `id, name, description, ibu, calories, abv, style, brewery_location, glass_id, created_at, updated_at`

const getByIDSQL = `
SELECT ` + beerColumns + `
FROM beers
WHERE id = $1`

const getByNameSQL = `
SELECT ` + beerColumns + `
FROM beers
WHERE name = $1`

const createSQL = `
INSERT INTO beers (id, name, description, ibu, calories, abv, style, brewery_location, glass_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + beerColumns

const updateSQL = `
UPDATE beers
SET name = $2, description = $3, ibu = $4, calories = $5, abv = $6,
    style = $7, brewery_location = $8, glass_id = $9, updated_at = $10
WHERE id = $1
RETURNING ` + beerColumns

const deleteSQL = `DELETE FROM beers WHERE id = $1`

var sortColumns = map[string]string{
	"name":             "name",
	"description":      "description",
	"ibu":              "ibu",
	"calories":         "calories",
	"abv":              "abv",
	"style":            "style",
	"brewery_location": "brewery_location",
	"created_at":       "created_at",
}

// Repo provides beer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new beer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a beer by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBeer(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "beer", id)
	}
	return b, nil
}

// GetByName returns a beer by unique name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Beer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBeer(q.QueryRow(ctx, getByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "beer", uuid.Nil)
	}
	return b, nil
}

// Create inserts a new beer. A name collision maps to ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, b *domain.Beer) (*domain.Beer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanBeer(q.QueryRow(ctx, createSQL,
		b.ID, b.Name, b.Description, b.IBU, b.Calories, b.ABV,
		b.Style, b.BreweryLocation, b.GlassID, b.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "beer", b.ID)
	}
	return created, nil
}

// Update persists the mutable fields of the beer.
func (r *Repo) Update(ctx context.Context, b *domain.Beer) (*domain.Beer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanBeer(q.QueryRow(ctx, updateSQL,
		b.ID, b.Name, b.Description, b.IBU, b.Calories, b.ABV,
		b.Style, b.BreweryLocation, b.GlassID, time.Now()))
	if err != nil {
		return nil, postgres.MapError(err, "beer", b.ID)
	}
	return updated, nil
}

// Delete removes the beer. Returns ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "beer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("beer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns all beers, optionally sorted.
func (r *Repo) List(ctx context.Context, sort domain.SortSpec) ([]*domain.Beer, error) {
	builder := sq.Select("id", "name", "description", "ibu", "calories", "abv",
		"style", "brewery_location", "glass_id", "created_at", "updated_at").
		From("beers").
		PlaceholderFormat(sq.Dollar)
	builder = postgres.ApplySort(builder, sort, sortColumns)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list beers query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}
	defer rows.Close()

	beers := []*domain.Beer{}
	for rows.Next() {
		b, err := scanBeer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan beer: %w", err)
		}
		beers = append(beers, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}
	return beers, nil
}

func scanBeer(row pgx.Row) (*domain.Beer, error) {
	var b domain.Beer
	err := row.Scan(&b.ID, &b.Name, &b.Description, &b.IBU, &b.Calories, &b.ABV,
		&b.Style, &b.BreweryLocation, &b.GlassID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
