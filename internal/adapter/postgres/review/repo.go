// Package review implements the BeerReview and BeerReviewSummary
// repositories using PostgreSQL. Summaries are only ever written through
// the review service's transactional submit path.
package review

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

const reviewColumns = `id, beer_id, user_id, aroma, appearance, taste, palate, bottle_style, overall, comment, created_at`

const getByIDSQL = `
SELECT ` + reviewColumns + `
FROM beer_reviews
WHERE id = $1`

// Any review inside the window satisfies the rate-limit existence check;
// which one is unspecified, so no ORDER BY.
const getRecentByBeerUserSQL = `
SELECT ` + reviewColumns + `
FROM beer_reviews
WHERE beer_id = $1 AND user_id = $2 AND created_at > $3
LIMIT 1`

const createSQL = `
INSERT INTO beer_reviews (id, beer_id, user_id, aroma, appearance, taste, palate, bottle_style, overall, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + reviewColumns

const summaryColumns = `id, beer_id, review_count, aroma, appearance, taste, palate, bottle_style, overall, updated_at`

const getSummaryByBeerSQL = `
SELECT ` + summaryColumns + `
FROM beer_review_summaries
WHERE beer_id = $1`

// FOR UPDATE serializes concurrent submissions for the same beer on the
// summary row; see Service.Submit in internal/service/review.
const getSummaryByBeerForUpdateSQL = getSummaryByBeerSQL + `
FOR UPDATE`

const createSummarySQL = `
INSERT INTO beer_review_summaries (id, beer_id, review_count, aroma, appearance, taste, palate, bottle_style, overall, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + summaryColumns

const updateSummarySQL = `
UPDATE beer_review_summaries
SET review_count = $2, aroma = $3, appearance = $4, taste = $5,
    palate = $6, bottle_style = $7, overall = $8, updated_at = $9
WHERE id = $1
RETURNING ` + summaryColumns

var reviewSortColumns = map[string]string{
	"created_at":   "created_at",
	"aroma":        "aroma",
	"appearance":   "appearance",
	"taste":        "taste",
	"palate":       "palate",
	"bottle_style": "bottle_style",
	"overall":      "overall",
}

var summarySortColumns = map[string]string{
	"count":        "review_count",
	"aroma":        "aroma",
	"appearance":   "appearance",
	"taste":        "taste",
	"palate":       "palate",
	"bottle_style": "bottle_style",
	"overall":      "overall",
}

// Repo provides review and review-summary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

// GetByID returns a review by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BeerReview, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rv, err := scanReview(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "beer_review", id)
	}
	return rv, nil
}

// GetRecentByBeerUser returns any review by the user for the beer created
// after the given instant, or ErrNotFound when none exists.
func (r *Repo) GetRecentByBeerUser(ctx context.Context, beerID, userID uuid.UUID, after time.Time) (*domain.BeerReview, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rv, err := scanReview(q.QueryRow(ctx, getRecentByBeerUserSQL, beerID, userID, after))
	if err != nil {
		return nil, postgres.MapError(err, "beer_review", uuid.Nil)
	}
	return rv, nil
}

// Create inserts a new review.
func (r *Repo) Create(ctx context.Context, rv *domain.BeerReview) (*domain.BeerReview, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanReview(q.QueryRow(ctx, createSQL,
		rv.ID, rv.BeerID, rv.UserID,
		rv.Scores.Aroma, rv.Scores.Appearance, rv.Scores.Taste,
		rv.Scores.Palate, rv.Scores.BottleStyle,
		rv.Overall, rv.Comment, rv.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "beer_review", rv.ID)
	}
	return created, nil
}

// List returns reviews, optionally filtered by beer and/or user and sorted.
func (r *Repo) List(ctx context.Context, beerID, userID *uuid.UUID, sort domain.SortSpec) ([]*domain.BeerReview, error) {
	builder := sq.Select("id", "beer_id", "user_id", "aroma", "appearance",
		"taste", "palate", "bottle_style", "overall", "comment", "created_at").
		From("beer_reviews").
		PlaceholderFormat(sq.Dollar)
	if beerID != nil {
		builder = builder.Where(sq.Eq{"beer_id": *beerID})
	}
	if userID != nil {
		builder = builder.Where(sq.Eq{"user_id": *userID})
	}
	builder = postgres.ApplySort(builder, sort, reviewSortColumns)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reviews query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*domain.BeerReview{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// ---------------------------------------------------------------------------
// Summaries
// ---------------------------------------------------------------------------

// GetSummaryByBeer returns the summary for a beer, or ErrNotFound.
func (r *Repo) GetSummaryByBeer(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSummary(q.QueryRow(ctx, getSummaryByBeerSQL, beerID))
	if err != nil {
		return nil, postgres.MapError(err, "beer_review_summary", beerID)
	}
	return s, nil
}

// GetSummaryByBeerForUpdate locks and returns the summary row for a beer.
// Must be called inside a transaction.
func (r *Repo) GetSummaryByBeerForUpdate(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSummary(q.QueryRow(ctx, getSummaryByBeerForUpdateSQL, beerID))
	if err != nil {
		return nil, postgres.MapError(err, "beer_review_summary", beerID)
	}
	return s, nil
}

// CreateSummary inserts the first summary for a beer. A concurrent first
// review maps the unique(beer_id) violation to ErrAlreadyExists, which the
// service resolves by retrying its transaction.
func (r *Repo) CreateSummary(ctx context.Context, s *domain.BeerReviewSummary) (*domain.BeerReviewSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanSummary(q.QueryRow(ctx, createSummarySQL,
		s.ID, s.BeerID, s.Count,
		s.Aroma, s.Appearance, s.Taste, s.Palate, s.BottleStyle, s.Overall,
		time.Now()))
	if err != nil {
		return nil, postgres.MapError(err, "beer_review_summary", s.BeerID)
	}
	return created, nil
}

// UpdateSummary persists the accumulator state of a locked summary row.
func (r *Repo) UpdateSummary(ctx context.Context, s *domain.BeerReviewSummary) (*domain.BeerReviewSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanSummary(q.QueryRow(ctx, updateSummarySQL,
		s.ID, s.Count,
		s.Aroma, s.Appearance, s.Taste, s.Palate, s.BottleStyle, s.Overall,
		time.Now()))
	if err != nil {
		return nil, postgres.MapError(err, "beer_review_summary", s.BeerID)
	}
	return updated, nil
}

// ListSummaries returns all summaries, optionally sorted.
func (r *Repo) ListSummaries(ctx context.Context, sort domain.SortSpec) ([]*domain.BeerReviewSummary, error) {
	builder := sq.Select("id", "beer_id", "review_count", "aroma", "appearance",
		"taste", "palate", "bottle_style", "overall", "updated_at").
		From("beer_review_summaries").
		PlaceholderFormat(sq.Dollar)
	builder = postgres.ApplySort(builder, sort, summarySortColumns)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list summaries query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	summaries := []*domain.BeerReviewSummary{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	return summaries, nil
}

func scanReview(row pgx.Row) (*domain.BeerReview, error) {
	var rv domain.BeerReview
	err := row.Scan(&rv.ID, &rv.BeerID, &rv.UserID,
		&rv.Scores.Aroma, &rv.Scores.Appearance, &rv.Scores.Taste,
		&rv.Scores.Palate, &rv.Scores.BottleStyle,
		&rv.Overall, &rv.Comment, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func scanSummary(row pgx.Row) (*domain.BeerReviewSummary, error) {
	var s domain.BeerReviewSummary
	err := row.Scan(&s.ID, &s.BeerID, &s.Count,
		&s.Aroma, &s.Appearance, &s.Taste, &s.Palate, &s.BottleStyle,
		&s.Overall, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
