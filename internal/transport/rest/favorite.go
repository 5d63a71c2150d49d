package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
	"github.com/wojtowpj/beerlog-backend/internal/service/favorite"
)

// favoriteService defines the minimal interface needed by FavoriteHandler.
type favoriteService interface {
	AddFavorite(ctx context.Context, userID, beerID uuid.UUID) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, beerID uuid.UUID) error
	GetFavorite(ctx context.Context, id uuid.UUID) (*domain.Favorite, error)
	RemoveFavoriteByID(ctx context.Context, id uuid.UUID) error
	ListFavorites(ctx context.Context, input favorite.ListFavoritesInput) ([]*domain.Favorite, error)
	IsFavorite(ctx context.Context, userID, beerID uuid.UUID) (bool, error)
}

// FavoriteHandler serves favorite-beer REST endpoints.
type FavoriteHandler struct {
	svc favoriteService
	log *slog.Logger
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(svc favoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, log: logger.With("handler", "favorite")}
}

type favoriteRequest struct {
	BeerID string `json:"beer_id"`
}

type favoriteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	BeerID    string    `json:"beer_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toFavoriteResponse(f *domain.Favorite) favoriteResponse {
	return favoriteResponse{
		ID:        f.ID.String(),
		UserID:    f.UserID.String(),
		BeerID:    f.BeerID.String(),
		CreatedAt: f.CreatedAt,
	}
}

// bodyBeerID decodes the beer_id field shared by the favorite endpoints
// that take the beer in the request body.
func bodyBeerID(r *http.Request) (uuid.UUID, error) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return uuid.Nil, domain.NewValidationError("beer_id", "required")
	}
	id, err := uuid.Parse(req.BeerID)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("beer_id", "must be a valid UUID")
	}
	return id, nil
}

// Add handles PUT /api/beers/{beerID}/favorite.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, err := authUserID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	beerID, err := pathUUID(r, "beerID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.AddFavorite(r.Context(), userID, beerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFavoriteResponse(created))
}

// Remove handles DELETE /api/beers/{beerID}/favorite.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, err := authUserID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	beerID, err := pathUUID(r, "beerID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.RemoveFavorite(r.Context(), userID, beerID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Check handles GET /api/beers/{beerID}/favorite.
func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, err := authUserID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	beerID, err := pathUUID(r, "beerID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	isFav, err := h.svc.IsFavorite(r.Context(), userID, beerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"favorite": isFav})
}

// Create handles POST /api/favorites. The beer comes from the body; the
// favorite is recorded for the authenticated user.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := authUserID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	beerID, err := bodyBeerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.AddFavorite(r.Context(), userID, beerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFavoriteResponse(created))
}

// List handles GET /api/favorites.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.svc.ListFavorites(r.Context(), favorite.ListFavoritesInput{Sort: querySort(r)})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]favoriteResponse, len(favorites))
	for i, f := range favorites {
		out[i] = toFavoriteResponse(f)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/favorites/{favoriteID}.
func (h *FavoriteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "favoriteID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	f, err := h.svc.GetFavorite(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFavoriteResponse(f))
}

// DeleteByID handles DELETE /api/favorites/{favoriteID}.
func (h *FavoriteHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "favoriteID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.RemoveFavoriteByID(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListForUser handles GET /api/users/{userID}/favorites.
func (h *FavoriteHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	favorites, err := h.svc.ListFavorites(r.Context(), favorite.ListFavoritesInput{
		UserID: &userID,
		Sort:   querySort(r),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]favoriteResponse, len(favorites))
	for i, f := range favorites {
		out[i] = toFavoriteResponse(f)
	}
	writeJSON(w, http.StatusOK, out)
}

// AddForUser handles POST /api/users/{userID}/favorites. The favorite is
// recorded for the user named in the path.
func (h *FavoriteHandler) AddForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	beerID, err := bodyBeerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.AddFavorite(r.Context(), userID, beerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFavoriteResponse(created))
}

// RemoveForUser handles DELETE /api/users/{userID}/favorites, deleting
// by the (user, beer) pair.
func (h *FavoriteHandler) RemoveForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	beerID, err := bodyBeerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.RemoveFavorite(r.Context(), userID, beerID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
