package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

type reviewRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BeerReview, error)
	GetRecentByBeerUser(ctx context.Context, beerID, userID uuid.UUID, after time.Time) (*domain.BeerReview, error)
	Create(ctx context.Context, rv *domain.BeerReview) (*domain.BeerReview, error)
	List(ctx context.Context, beerID, userID *uuid.UUID, sort domain.SortSpec) ([]*domain.BeerReview, error)

	GetSummaryByBeer(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error)
	GetSummaryByBeerForUpdate(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error)
	CreateSummary(ctx context.Context, s *domain.BeerReviewSummary) (*domain.BeerReviewSummary, error)
	UpdateSummary(ctx context.Context, s *domain.BeerReviewSummary) (*domain.BeerReviewSummary, error)
	ListSummaries(ctx context.Context, sort domain.SortSpec) ([]*domain.BeerReviewSummary, error)
}

type beerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides review submission and listing operations.
type Service struct {
	reviews reviewRepo
	beers   beerRepo
	tx      txManager
	log     *slog.Logger

	// window is the rolling period allowing one review per user per beer.
	window time.Duration
	// retryAttempts bounds retries of the submit transaction when two
	// first reviews of the same beer race on the summary insert.
	retryAttempts int

	now func() time.Time
}

// NewService creates a new Review service.
func NewService(
	log *slog.Logger,
	reviews reviewRepo,
	beers beerRepo,
	tx txManager,
	window time.Duration,
	retryAttempts int,
) *Service {
	return &Service{
		reviews:       reviews,
		beers:         beers,
		tx:            tx,
		log:           log.With("service", "review"),
		window:        window,
		retryAttempts: retryAttempts,
		now:           time.Now,
	}
}
