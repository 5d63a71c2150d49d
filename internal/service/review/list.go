package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

// GetReview returns a single review by ID.
func (s *Service) GetReview(ctx context.Context, id uuid.UUID) (*domain.BeerReview, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("review_id", "required")
	}
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return rv, nil
}

// ListReviews returns individual reviews, optionally filtered by beer and
// user, sorted per the request.
func (s *Service) ListReviews(ctx context.Context, input ListReviewsInput) ([]*domain.BeerReview, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	reviews, err := s.reviews.List(ctx, input.BeerID, input.UserID, input.Sort)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// GetSummary returns the running-average summary for a beer.
// A beer with no reviews has no summary and yields ErrNotFound.
func (s *Service) GetSummary(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error) {
	if beerID == uuid.Nil {
		return nil, domain.NewValidationError("beer_id", "required")
	}
	if _, err := s.beers.GetByID(ctx, beerID); err != nil {
		return nil, fmt.Errorf("get beer: %w", err)
	}
	summary, err := s.reviews.GetSummaryByBeer(ctx, beerID)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return summary, nil
}

// ListSummaries returns all per-beer summaries sorted per the request.
func (s *Service) ListSummaries(ctx context.Context, input ListSummariesInput) ([]*domain.BeerReviewSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	summaries, err := s.reviews.ListSummaries(ctx, input.Sort)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	return summaries, nil
}
