// Package favorite implements the Favorite repository using PostgreSQL.
package favorite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wojtowpj/beerlog-backend/internal/adapter/postgres"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

const favoriteColumns = `id, user_id, beer_id, created_at`

const getByIDSQL = `
SELECT ` + favoriteColumns + `
FROM favorites
WHERE id = $1`

const getByUserBeerSQL = `
SELECT ` + favoriteColumns + `
FROM favorites
WHERE user_id = $1 AND beer_id = $2`

const createSQL = `
INSERT INTO favorites (id, user_id, beer_id, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + favoriteColumns

const deleteSQL = `DELETE FROM favorites WHERE id = $1`

var sortColumns = map[string]string{
	"created_at": "created_at",
}

// Repo provides favorite persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new favorite repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a favorite by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Favorite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanFavorite(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "favorite", id)
	}
	return f, nil
}

// GetByUserBeer returns the favorite for a (user, beer) pair, or ErrNotFound.
func (r *Repo) GetByUserBeer(ctx context.Context, userID, beerID uuid.UUID) (*domain.Favorite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanFavorite(q.QueryRow(ctx, getByUserBeerSQL, userID, beerID))
	if err != nil {
		return nil, postgres.MapError(err, "favorite", uuid.Nil)
	}
	return f, nil
}

// Create inserts a new favorite. A duplicate (user, beer) pair maps to
// ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanFavorite(q.QueryRow(ctx, createSQL,
		f.ID, f.UserID, f.BeerID, f.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "favorite", f.ID)
	}
	return created, nil
}

// Delete removes the favorite. Returns ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "favorite", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns favorites, optionally filtered by user and sorted.
func (r *Repo) List(ctx context.Context, userID *uuid.UUID, sort domain.SortSpec) ([]*domain.Favorite, error) {
	builder := sq.Select("id", "user_id", "beer_id", "created_at").
		From("favorites").
		PlaceholderFormat(sq.Dollar)
	if userID != nil {
		builder = builder.Where(sq.Eq{"user_id": *userID})
	}
	builder = postgres.ApplySort(builder, sort, sortColumns)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list favorites query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []*domain.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

func scanFavorite(row pgx.Row) (*domain.Favorite, error) {
	var f domain.Favorite
	err := row.Scan(&f.ID, &f.UserID, &f.BeerID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
