package review

import (
	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

// SubmitReviewInput holds the parameters for submitting a review.
// All five scores are required; any absolute value is accepted.
type SubmitReviewInput struct {
	BeerID      uuid.UUID
	Aroma       *float64
	Appearance  *float64
	Taste       *float64
	Palate      *float64
	BottleStyle *float64
	Comment     *string
}

// Validate checks all fields and collects all errors.
func (i SubmitReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.BeerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "beer_id", Message: "required"})
	}
	if i.Aroma == nil {
		errs = append(errs, domain.FieldError{Field: "aroma", Message: "required"})
	}
	if i.Appearance == nil {
		errs = append(errs, domain.FieldError{Field: "appearance", Message: "required"})
	}
	if i.Taste == nil {
		errs = append(errs, domain.FieldError{Field: "taste", Message: "required"})
	}
	if i.Palate == nil {
		errs = append(errs, domain.FieldError{Field: "palate", Message: "required"})
	}
	if i.BottleStyle == nil {
		errs = append(errs, domain.FieldError{Field: "bottle_style", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Scores assembles the validated input into a ReviewScores value.
// Must only be called after Validate succeeded.
func (i SubmitReviewInput) Scores() domain.ReviewScores {
	return domain.ReviewScores{
		Aroma:       *i.Aroma,
		Appearance:  *i.Appearance,
		Taste:       *i.Taste,
		Palate:      *i.Palate,
		BottleStyle: *i.BottleStyle,
	}
}

// ListReviewsInput holds the filters for listing individual reviews.
// Nil filters mean "all".
type ListReviewsInput struct {
	BeerID *uuid.UUID
	UserID *uuid.UUID
	Sort   domain.SortSpec
}

// Validate checks the sort field against the review field set.
func (i ListReviewsInput) Validate() error {
	return i.Sort.Validate(domain.ReviewSortFields)
}

// ListSummariesInput holds the sort for listing per-beer summaries.
type ListSummariesInput struct {
	Sort domain.SortSpec
}

// Validate checks the sort field against the summary field set.
func (i ListSummariesInput) Validate() error {
	return i.Sort.Validate(domain.SummarySortFields)
}
