package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

// CreateGlass adds a glass type. Glass names are unique; the adapter maps
// a duplicate insert to ErrAlreadyExists.
func (s *Service) CreateGlass(ctx context.Context, input CreateGlassInput) (*domain.BeerGlass, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.glasses.Create(ctx, &domain.BeerGlass{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Capacity:    input.Capacity,
	})
	if err != nil {
		return nil, fmt.Errorf("create glass: %w", err)
	}

	s.log.InfoContext(ctx, "glass created",
		slog.String("glass_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// GetGlass returns a glass type by ID.
func (s *Service) GetGlass(ctx context.Context, id uuid.UUID) (*domain.BeerGlass, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("glass_id", "required")
	}
	g, err := s.glasses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get glass: %w", err)
	}
	return g, nil
}

// ListGlasses returns all glass types sorted per the request.
func (s *Service) ListGlasses(ctx context.Context, input ListGlassesInput) ([]*domain.BeerGlass, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	glasses, err := s.glasses.List(ctx, input.Sort)
	if err != nil {
		return nil, fmt.Errorf("list glasses: %w", err)
	}
	return glasses, nil
}

// UpdateGlass applies a partial update.
func (s *Service) UpdateGlass(ctx context.Context, input UpdateGlassInput) (*domain.BeerGlass, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.glasses.GetByID(ctx, input.GlassID)
	if err != nil {
		return nil, fmt.Errorf("get glass: %w", err)
	}

	if input.Name != nil {
		g.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		g.Description = trimOrNil(input.Description)
	}
	if input.Capacity != nil {
		g.Capacity = input.Capacity
	}

	updated, err := s.glasses.Update(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("update glass: %w", err)
	}

	s.log.InfoContext(ctx, "glass updated", slog.String("glass_id", updated.ID.String()))

	return updated, nil
}

// DeleteGlass removes a glass type. Beers referencing it keep existing
// with their glass link cleared.
func (s *Service) DeleteGlass(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("glass_id", "required")
	}
	if err := s.glasses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete glass: %w", err)
	}

	s.log.InfoContext(ctx, "glass deleted", slog.String("glass_id", id.String()))
	return nil
}
