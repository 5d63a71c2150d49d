package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

// SubmitReview records a review by the given user and folds it into the
// beer's running-average summary. A user may review a given beer at most
// once per rolling window; a second submission inside the window is rejected
// with a RateLimitError carrying the remaining wait.
//
// The window check, the review insert and the summary update run in one
// transaction, and the summary row is locked before the window check so
// concurrent submissions for the same beer serialize on it: the loser of a
// race always sees the winner's committed review when it checks the window.
// A brand-new beer has no summary row to lock yet; racing first reviews
// resolve via the unique constraint on the summary insert, which rolls the
// losing transaction back and retries it from scratch a bounded number of
// times.
func (s *Service) SubmitReview(ctx context.Context, userID uuid.UUID, input SubmitReviewInput) (*domain.BeerReview, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.beers.GetByID(ctx, input.BeerID); err != nil {
		return nil, fmt.Errorf("get beer: %w", err)
	}

	scores := input.Scores()
	comment := trimOrNil(input.Comment)

	var created *domain.BeerReview
	var err error
	for attempt := 1; ; attempt++ {
		created, err = s.submitOnce(ctx, userID, input.BeerID, scores, comment)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrAlreadyExists) && attempt < s.retryAttempts {
			s.log.WarnContext(ctx, "summary insert race, retrying",
				slog.String("beer_id", input.BeerID.String()),
				slog.Int("attempt", attempt),
			)
			continue
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "review submitted",
		slog.String("user_id", userID.String()),
		slog.String("beer_id", input.BeerID.String()),
		slog.String("review_id", created.ID.String()),
		slog.Float64("overall", created.Overall),
	)

	return created, nil
}

// submitOnce runs one attempt of the submit transaction.
func (s *Service) submitOnce(ctx context.Context, userID, beerID uuid.UUID, scores domain.ReviewScores, comment *string) (*domain.BeerReview, error) {
	var created *domain.BeerReview

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()

		// Serialization point. The FOR UPDATE lock must be taken before
		// the window check: under Read Committed two unserialized
		// submissions could both pass the check and both insert.
		summary, err := s.reviews.GetSummaryByBeerForUpdate(txCtx, beerID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("lock summary: %w", err)
		}

		prior, err := s.reviews.GetRecentByBeerUser(txCtx, beerID, userID, now.Add(-s.window))
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check review window: %w", err)
		}
		if prior != nil {
			_, retryAfter := domain.Allowance(&prior.CreatedAt, s.window, now)
			return domain.NewRateLimitError(retryAfter, "beer already reviewed, you can add only one review per week")
		}

		review := &domain.BeerReview{
			ID:        uuid.New(),
			BeerID:    beerID,
			UserID:    userID,
			Scores:    scores,
			Overall:   scores.Overall(),
			Comment:   comment,
			CreatedAt: now,
		}

		created, err = s.reviews.Create(txCtx, review)
		if err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		if summary == nil {
			// First review of this beer. A concurrent first review may
			// win the insert; the unique constraint surfaces that as
			// ErrAlreadyExists and the caller retries the whole tx.
			if _, err := s.reviews.CreateSummary(txCtx, domain.NewBeerReviewSummary(created)); err != nil {
				return fmt.Errorf("create summary: %w", err)
			}
			return nil
		}

		summary.Apply(created)
		if _, err := s.reviews.UpdateSummary(txCtx, summary); err != nil {
			return fmt.Errorf("update summary: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
