// Package glass implements the BeerGlass repository using PostgreSQL.
package glass

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

const glassColumns = `id, name, description, capacity, created_at, updated_at`

const getByIDSQL = `
SELECT ` + glassColumns + `
FROM beer_glasses
WHERE id = $1`

const createSQL = `
INSERT INTO beer_glasses (id, name, description, capacity, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + glassColumns

const updateSQL = `
UPDATE beer_glasses
SET name = $2, description = $3, capacity = $4, updated_at = $5
WHERE id = $1
RETURNING ` + glassColumns

const deleteSQL = `DELETE FROM beer_glasses WHERE id = $1`

var sortColumns = map[string]string{
	"name":        "name",
	"description": "description",
	"capacity":    "capacity",
	"created_at":  "created_at",
}

// Repo provides beer glass persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new beer glass repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a glass by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BeerGlass, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGlass(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "beer_glass", id)
	}
	return g, nil
}

// Create inserts a new glass. A name collision maps to ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanGlass(q.QueryRow(ctx, createSQL,
		g.ID, g.Name, g.Description, g.Capacity, g.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "beer_glass", g.ID)
	}
	return created, nil
}

// Update persists the mutable fields of the glass.
func (r *Repo) Update(ctx context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanGlass(q.QueryRow(ctx, updateSQL,
		g.ID, g.Name, g.Description, g.Capacity, time.Now()))
	if err != nil {
		return nil, postgres.MapError(err, "beer_glass", g.ID)
	}
	return updated, nil
}

// Delete removes the glass. Returns ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "beer_glass", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("beer_glass %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns all glasses, optionally sorted.
func (r *Repo) List(ctx context.Context, sort domain.SortSpec) ([]*domain.BeerGlass, error) {
	builder := sq.Select("id", "name", "description", "capacity", "created_at", "updated_at").
		From("beer_glasses").
		PlaceholderFormat(sq.Dollar)
	builder = postgres.ApplySort(builder, sort, sortColumns)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list glasses query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list glasses: %w", err)
	}
	defer rows.Close()

	glasses := []*domain.BeerGlass{}
	for rows.Next() {
		g, err := scanGlass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan glass: %w", err)
		}
		glasses = append(glasses, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list glasses: %w", err)
	}
	return glasses, nil
}

func scanGlass(row pgx.Row) (*domain.BeerGlass, error) {
	var g domain.BeerGlass
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Capacity, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
