// Package user implements the User repository using PostgreSQL.
package user

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

const userColumns = `id, username, first_name, last_name, password_hash, last_beer_added_at, created_at, updated_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByUsernameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1`

const createSQL = `
INSERT INTO users (id, username, first_name, last_name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + userColumns

const updateSQL = `
UPDATE users
SET username = $2, first_name = $3, last_name = $4, password_hash = $5, updated_at = $6
WHERE id = $1
RETURNING ` + userColumns

const setLastBeerAddedSQL = `
UPDATE users
SET last_beer_added_at = $2, updated_at = $2
WHERE id = $1`

const deleteSQL = `DELETE FROM users WHERE id = $1`

// sortColumns maps public sort field names to columns.
var sortColumns = map[string]string{
	"user_name":          "username",
	"first_name":         "first_name",
	"last_name":          "last_name",
	"last_beer_added_at": "last_beer_added_at",
	"created_at":         "created_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByUsername returns a user by unique username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// Create inserts a new user. A username collision maps to ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx, createSQL,
		u.ID, u.Username, u.FirstName, u.LastName, u.PasswordHash, u.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// Update persists the mutable fields of the user.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanUser(q.QueryRow(ctx, updateSQL,
		u.ID, u.Username, u.FirstName, u.LastName, u.PasswordHash, time.Now()))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return updated, nil
}

// SetLastBeerAdded records the timestamp of the user's latest beer creation.
func (r *Repo) SetLastBeerAdded(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setLastBeerAddedSQL, id, at)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the user. Returns ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns all users, optionally sorted. The sort field must be
// validated by the caller against domain.UserSortFields.
func (r *Repo) List(ctx context.Context, sort domain.SortSpec) ([]*domain.User, error) {
	builder := sq.Select("id", "username", "first_name", "last_name",
		"password_hash", "last_beer_added_at", "created_at", "updated_at").
		From("users").
		PlaceholderFormat(sq.Dollar)
	builder = postgres.ApplySort(builder, sort, sortColumns)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.LastBeerAddedAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
