package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
	"github.com/wojtowpj/beerlog-backend/internal/service/catalog"
)

// beerService defines the minimal interface needed by BeerHandler.
type beerService interface {
	CreateBeer(ctx context.Context, userID uuid.UUID, input catalog.CreateBeerInput) (*domain.Beer, error)
	GetBeer(ctx context.Context, id uuid.UUID) (*domain.Beer, error)
	ListBeers(ctx context.Context, input catalog.ListBeersInput) ([]*domain.Beer, error)
	UpdateBeer(ctx context.Context, input catalog.UpdateBeerInput) (*domain.Beer, error)
	DeleteBeer(ctx context.Context, id uuid.UUID) error
}

// BeerHandler serves beer catalog REST endpoints.
type BeerHandler struct {
	svc beerService
	log *slog.Logger

	// descriptionMaxLen caps descriptions on the way in.
	descriptionMaxLen int
}

// NewBeerHandler creates a BeerHandler.
func NewBeerHandler(svc beerService, logger *slog.Logger, descriptionMaxLen int) *BeerHandler {
	return &BeerHandler{
		svc:               svc,
		log:               logger.With("handler", "beer"),
		descriptionMaxLen: descriptionMaxLen,
	}
}

type createBeerRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	IBU             *float64 `json:"ibu"`
	Calories        *float64 `json:"calories"`
	ABV             *float64 `json:"abv"`
	Style           *string  `json:"style"`
	BreweryLocation *string  `json:"brewery_location"`
	GlassID         *string  `json:"glass_id"`
}

type updateBeerRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	IBU             *float64 `json:"ibu"`
	Calories        *float64 `json:"calories"`
	ABV             *float64 `json:"abv"`
	Style           *string  `json:"style"`
	BreweryLocation *string  `json:"brewery_location"`
	GlassID         *string  `json:"glass_id"`
}

type beerResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	IBU             *float64  `json:"ibu,omitempty"`
	Calories        *float64  `json:"calories,omitempty"`
	ABV             *float64  `json:"abv,omitempty"`
	Style           *string   `json:"style,omitempty"`
	BreweryLocation *string   `json:"brewery_location,omitempty"`
	GlassID         *string   `json:"glass_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func toBeerResponse(b *domain.Beer) beerResponse {
	resp := beerResponse{
		ID:              b.ID.String(),
		Name:            b.Name,
		Description:     b.Description,
		IBU:             b.IBU,
		Calories:        b.Calories,
		ABV:             b.ABV,
		Style:           b.Style,
		BreweryLocation: b.BreweryLocation,
		CreatedAt:       b.CreatedAt,
	}
	if b.GlassID != nil {
		id := b.GlassID.String()
		resp.GlassID = &id
	}
	return resp
}

// truncateDescription caps a submitted description at the configured
// number of characters, silently dropping the excess. Counting runes
// rather than bytes keeps a multi-byte character from being split.
func (h *BeerHandler) truncateDescription(desc *string) *string {
	if desc == nil || utf8.RuneCountInString(*desc) <= h.descriptionMaxLen {
		return desc
	}
	runes := []rune(*desc)
	capped := string(runes[:h.descriptionMaxLen])
	return &capped
}

func parseGlassID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domain.NewValidationError("glass_id", "must be a valid UUID")
	}
	return &id, nil
}

// Create handles POST /api/beers.
func (h *BeerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := authUserID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createBeerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	glassID, err := parseGlassID(req.GlassID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateBeer(r.Context(), userID, catalog.CreateBeerInput{
		Name:            req.Name,
		Description:     h.truncateDescription(req.Description),
		IBU:             req.IBU,
		Calories:        req.Calories,
		ABV:             req.ABV,
		Style:           req.Style,
		BreweryLocation: req.BreweryLocation,
		GlassID:         glassID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBeerResponse(created))
}

// Get handles GET /api/beers/{beerID}.
func (h *BeerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "beerID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.GetBeer(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBeerResponse(b))
}

// List handles GET /api/beers.
func (h *BeerHandler) List(w http.ResponseWriter, r *http.Request) {
	beers, err := h.svc.ListBeers(r.Context(), catalog.ListBeersInput{Sort: querySort(r)})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]beerResponse, len(beers))
	for i, b := range beers {
		out[i] = toBeerResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PUT /api/beers/{beerID}.
func (h *BeerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "beerID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateBeerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	glassID, err := parseGlassID(req.GlassID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.UpdateBeer(r.Context(), catalog.UpdateBeerInput{
		BeerID:          id,
		Name:            req.Name,
		Description:     h.truncateDescription(req.Description),
		IBU:             req.IBU,
		Calories:        req.Calories,
		ABV:             req.ABV,
		Style:           req.Style,
		BreweryLocation: req.BreweryLocation,
		GlassID:         glassID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBeerResponse(updated))
}

// Delete handles DELETE /api/beers/{beerID}.
func (h *BeerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "beerID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteBeer(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
