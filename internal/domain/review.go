package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewScores holds the five rated dimensions of a beer review.
// Values are accepted as given; no range is enforced.
type ReviewScores struct {
	Aroma       float64
	Appearance  float64
	Taste       float64
	Palate      float64
	BottleStyle float64
}

// Overall returns the unweighted arithmetic mean of the five scores.
func (s ReviewScores) Overall() float64 {
	return (s.Aroma + s.Appearance + s.Taste + s.Palate + s.BottleStyle) / 5
}

// BeerReview is a single user's rating of a beer. Immutable once created.
// Overall is always derived from the five scores at submission time.
type BeerReview struct {
	ID      uuid.UUID
	BeerID  uuid.UUID
	UserID  uuid.UUID
	Scores  ReviewScores
	Overall float64
	Comment *string

	// CreatedAt is server-assigned and anchors the per-(user, beer)
	// one-review-per-week window.
	CreatedAt time.Time
}

// BeerReviewSummary is the per-beer accumulator of running average ratings.
// There is at most one summary per beer, created lazily on the first review.
// Invariant: Count equals the number of reviews for the beer and every field
// equals the arithmetic mean of that field across those reviews.
type BeerReviewSummary struct {
	ID          uuid.UUID
	BeerID      uuid.UUID
	Count       int64
	Aroma       float64
	Appearance  float64
	Taste       float64
	Palate      float64
	BottleStyle float64
	Overall     float64
	UpdatedAt   time.Time
}

// NewBeerReviewSummary seeds a summary from the first review of a beer.
func NewBeerReviewSummary(r *BeerReview) *BeerReviewSummary {
	return &BeerReviewSummary{
		ID:          uuid.New(),
		BeerID:      r.BeerID,
		Count:       1,
		Aroma:       r.Scores.Aroma,
		Appearance:  r.Scores.Appearance,
		Taste:       r.Scores.Taste,
		Palate:      r.Scores.Palate,
		BottleStyle: r.Scores.BottleStyle,
		Overall:     r.Overall,
	}
}

// Apply folds one more review into the summary using the online mean update
// mean += (value - mean) / count. Count is incremented first; all six fields
// divide by the incremented count.
func (s *BeerReviewSummary) Apply(r *BeerReview) {
	s.Count++
	n := float64(s.Count)
	s.Aroma += (r.Scores.Aroma - s.Aroma) / n
	s.Appearance += (r.Scores.Appearance - s.Appearance) / n
	s.Taste += (r.Scores.Taste - s.Taste) / n
	s.Palate += (r.Scores.Palate - s.Palate) / n
	s.BottleStyle += (r.Scores.BottleStyle - s.BottleStyle) / n
	s.Overall += (r.Overall - s.Overall) / n
}
