package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
	"github.com/wojtowpj/beerlog-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	SubmitReview(ctx context.Context, userID uuid.UUID, input review.SubmitReviewInput) (*domain.BeerReview, error)
	GetReview(ctx context.Context, id uuid.UUID) (*domain.BeerReview, error)
	ListReviews(ctx context.Context, input review.ListReviewsInput) ([]*domain.BeerReview, error)
	GetSummary(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error)
	ListSummaries(ctx context.Context, input review.ListSummariesInput) ([]*domain.BeerReviewSummary, error)
}

// ReviewHandler serves beer review REST endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type submitReviewRequest struct {
	// BeerID is taken from the body on POST /api/reviews and ignored in
	// favor of the path parameter on POST /api/beers/{beerID}/reviews.
	BeerID      *string  `json:"beer_id"`
	Aroma       *float64 `json:"aroma"`
	Appearance  *float64 `json:"appearance"`
	Taste       *float64 `json:"taste"`
	Palate      *float64 `json:"palate"`
	BottleStyle *float64 `json:"bottle_style"`
	Comment     *string  `json:"comment"`
}

type reviewResponse struct {
	ID          string    `json:"id"`
	BeerID      string    `json:"beer_id"`
	UserID      string    `json:"user_id"`
	Aroma       float64   `json:"aroma"`
	Appearance  float64   `json:"appearance"`
	Taste       float64   `json:"taste"`
	Palate      float64   `json:"palate"`
	BottleStyle float64   `json:"bottle_style"`
	Overall     float64   `json:"overall"`
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type summaryResponse struct {
	BeerID      string    `json:"beer_id"`
	Count       int64     `json:"count"`
	Aroma       float64   `json:"aroma"`
	Appearance  float64   `json:"appearance"`
	Taste       float64   `json:"taste"`
	Palate      float64   `json:"palate"`
	BottleStyle float64   `json:"bottle_style"`
	Overall     float64   `json:"overall"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toReviewResponse(rv *domain.BeerReview) reviewResponse {
	return reviewResponse{
		ID:          rv.ID.String(),
		BeerID:      rv.BeerID.String(),
		UserID:      rv.UserID.String(),
		Aroma:       rv.Scores.Aroma,
		Appearance:  rv.Scores.Appearance,
		Taste:       rv.Scores.Taste,
		Palate:      rv.Scores.Palate,
		BottleStyle: rv.Scores.BottleStyle,
		Overall:     rv.Overall,
		Comment:     rv.Comment,
		CreatedAt:   rv.CreatedAt,
	}
}

func toSummaryResponse(s *domain.BeerReviewSummary) summaryResponse {
	return summaryResponse{
		BeerID:      s.BeerID.String(),
		Count:       s.Count,
		Aroma:       s.Aroma,
		Appearance:  s.Appearance,
		Taste:       s.Taste,
		Palate:      s.Palate,
		BottleStyle: s.BottleStyle,
		Overall:     s.Overall,
		UpdatedAt:   s.UpdatedAt,
	}
}

// Submit handles POST /api/beers/{beerID}/reviews.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	beerID, err := pathUUID(r, "beerID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.submit(w, r, beerID)
}

// Create handles POST /api/reviews. The target beer comes from the
// request body instead of the path.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, uuid.Nil)
}

func (h *ReviewHandler) submit(w http.ResponseWriter, r *http.Request, beerID uuid.UUID) {
	userID, err := authUserID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if beerID == uuid.Nil && req.BeerID != nil {
		beerID, err = uuid.Parse(*req.BeerID)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("beer_id", "must be a valid UUID"))
			return
		}
	}

	created, err := h.svc.SubmitReview(r.Context(), userID, review.SubmitReviewInput{
		BeerID:      beerID,
		Aroma:       req.Aroma,
		Appearance:  req.Appearance,
		Taste:       req.Taste,
		Palate:      req.Palate,
		BottleStyle: req.BottleStyle,
		Comment:     req.Comment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(created))
}

// ListForBeer handles GET /api/beers/{beerID}/reviews. The type query
// parameter selects the representation: "detail" (default) returns the
// individual reviews, "summary" the running averages.
func (h *ReviewHandler) ListForBeer(w http.ResponseWriter, r *http.Request) {
	beerID, err := pathUUID(r, "beerID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	switch r.URL.Query().Get("type") {
	case "", "detail":
		reviews, err := h.svc.ListReviews(r.Context(), review.ListReviewsInput{
			BeerID: &beerID,
			Sort:   querySort(r),
		})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		out := make([]reviewResponse, len(reviews))
		for i, rv := range reviews {
			out[i] = toReviewResponse(rv)
		}
		writeJSON(w, http.StatusOK, out)

	case "summary":
		summary, err := h.svc.GetSummary(r.Context(), beerID)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toSummaryResponse(summary))

	default:
		writeError(w, http.StatusBadRequest, "type must be detail or summary")
	}
}

// ListForUser handles GET /api/users/{userID}/reviews.
func (h *ReviewHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	reviews, err := h.svc.ListReviews(r.Context(), review.ListReviewsInput{
		UserID: &userID,
		Sort:   querySort(r),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]reviewResponse, len(reviews))
	for i, rv := range reviews {
		out[i] = toReviewResponse(rv)
	}
	writeJSON(w, http.StatusOK, out)
}

// List handles GET /api/reviews. The type query parameter selects the
// representation: "detail" (default) returns the individual reviews,
// "summary" the per-beer running averages.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("type") {
	case "", "detail":
		reviews, err := h.svc.ListReviews(r.Context(), review.ListReviewsInput{Sort: querySort(r)})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		out := make([]reviewResponse, len(reviews))
		for i, rv := range reviews {
			out[i] = toReviewResponse(rv)
		}
		writeJSON(w, http.StatusOK, out)

	case "summary":
		summaries, err := h.svc.ListSummaries(r.Context(), review.ListSummariesInput{Sort: querySort(r)})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		out := make([]summaryResponse, len(summaries))
		for i, s := range summaries {
			out[i] = toSummaryResponse(s)
		}
		writeJSON(w, http.StatusOK, out)

	default:
		writeError(w, http.StatusBadRequest, "type must be detail or summary")
	}
}

// Get handles GET /api/reviews/{reviewID}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "reviewID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rv, err := h.svc.GetReview(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse(rv))
}
