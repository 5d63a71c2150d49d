package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
	"github.com/wojtowpj/beerlog-backend/internal/service/catalog"
)

// glassService defines the minimal interface needed by GlassHandler.
type glassService interface {
	CreateGlass(ctx context.Context, input catalog.CreateGlassInput) (*domain.BeerGlass, error)
	GetGlass(ctx context.Context, id uuid.UUID) (*domain.BeerGlass, error)
	ListGlasses(ctx context.Context, input catalog.ListGlassesInput) ([]*domain.BeerGlass, error)
	UpdateGlass(ctx context.Context, input catalog.UpdateGlassInput) (*domain.BeerGlass, error)
	DeleteGlass(ctx context.Context, id uuid.UUID) error
}

// GlassHandler serves beer glass REST endpoints.
type GlassHandler struct {
	svc glassService
	log *slog.Logger
}

// NewGlassHandler creates a GlassHandler.
func NewGlassHandler(svc glassService, logger *slog.Logger) *GlassHandler {
	return &GlassHandler{svc: svc, log: logger.With("handler", "glass")}
}

type createGlassRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Capacity    *float64 `json:"capacity"`
}

type updateGlassRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Capacity    *float64 `json:"capacity"`
}

type glassResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Capacity    *float64  `json:"capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toGlassResponse(g *domain.BeerGlass) glassResponse {
	return glassResponse{
		ID:          g.ID.String(),
		Name:        g.Name,
		Description: g.Description,
		Capacity:    g.Capacity,
		CreatedAt:   g.CreatedAt,
	}
}

// Create handles POST /api/glasses.
func (h *GlassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGlassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateGlass(r.Context(), catalog.CreateGlassInput{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGlassResponse(created))
}

// Get handles GET /api/glasses/{glassID}.
func (h *GlassHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "glassID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	g, err := h.svc.GetGlass(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGlassResponse(g))
}

// List handles GET /api/glasses.
func (h *GlassHandler) List(w http.ResponseWriter, r *http.Request) {
	glasses, err := h.svc.ListGlasses(r.Context(), catalog.ListGlassesInput{Sort: querySort(r)})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]glassResponse, len(glasses))
	for i, g := range glasses {
		out[i] = toGlassResponse(g)
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PUT /api/glasses/{glassID}.
func (h *GlassHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "glassID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateGlassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateGlass(r.Context(), catalog.UpdateGlassInput{
		GlassID:     id,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGlassResponse(updated))
}

// Delete handles DELETE /api/glasses/{glassID}.
func (h *GlassHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "glassID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteGlass(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
