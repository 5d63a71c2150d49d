package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

// CreateBeer adds a beer to the catalog on behalf of the given user.
// Beer names are unique; a taken name yields ErrAlreadyExists. Each
// user may add at most one beer per rolling window; a submission inside
// the window is rejected with a RateLimitError carrying the remaining wait.
func (s *Service) CreateBeer(ctx context.Context, userID uuid.UUID, input CreateBeerInput) (*domain.Beer, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	if _, err := s.beers.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("beer %q: %w", name, domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check beer name: %w", err)
	}

	if input.GlassID != nil {
		if _, err := s.glasses.GetByID(ctx, *input.GlassID); err != nil {
			return nil, fmt.Errorf("get glass: %w", err)
		}
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	now := s.now()
	if ok, retryAfter := domain.Allowance(u.LastBeerAddedAt, s.addWindow, now); !ok {
		return nil, domain.NewRateLimitError(retryAfter, "you can add only one beer per day")
	}

	var created *domain.Beer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.beers.Create(txCtx, &domain.Beer{
			ID:              uuid.New(),
			Name:            name,
			Description:     trimOrNil(input.Description),
			IBU:             input.IBU,
			Calories:        input.Calories,
			ABV:             input.ABV,
			Style:           trimOrNil(input.Style),
			BreweryLocation: trimOrNil(input.BreweryLocation),
			GlassID:         input.GlassID,
		})
		if createErr != nil {
			return fmt.Errorf("create beer: %w", createErr)
		}

		if err := s.users.SetLastBeerAdded(txCtx, userID, now); err != nil {
			return fmt.Errorf("mark beer added: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "beer created",
		slog.String("user_id", userID.String()),
		slog.String("beer_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// GetBeer returns a beer by ID.
func (s *Service) GetBeer(ctx context.Context, id uuid.UUID) (*domain.Beer, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("beer_id", "required")
	}
	b, err := s.beers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get beer: %w", err)
	}
	return b, nil
}

// ListBeers returns the catalog sorted per the request.
func (s *Service) ListBeers(ctx context.Context, input ListBeersInput) ([]*domain.Beer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	beers, err := s.beers.List(ctx, input.Sort)
	if err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}
	return beers, nil
}

// UpdateBeer applies a partial update. Renaming onto an existing beer
// yields ErrAlreadyExists.
func (s *Service) UpdateBeer(ctx context.Context, input UpdateBeerInput) (*domain.Beer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.beers.GetByID(ctx, input.BeerID)
	if err != nil {
		return nil, fmt.Errorf("get beer: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != b.Name {
			if other, err := s.beers.GetByName(ctx, name); err == nil && other.ID != b.ID {
				return nil, fmt.Errorf("beer %q: %w", name, domain.ErrAlreadyExists)
			} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("check beer name: %w", err)
			}
		}
		b.Name = name
	}
	if input.Description != nil {
		b.Description = trimOrNil(input.Description)
	}
	if input.IBU != nil {
		b.IBU = input.IBU
	}
	if input.Calories != nil {
		b.Calories = input.Calories
	}
	if input.ABV != nil {
		b.ABV = input.ABV
	}
	if input.Style != nil {
		b.Style = trimOrNil(input.Style)
	}
	if input.BreweryLocation != nil {
		b.BreweryLocation = trimOrNil(input.BreweryLocation)
	}
	if input.GlassID != nil {
		if _, err := s.glasses.GetByID(ctx, *input.GlassID); err != nil {
			return nil, fmt.Errorf("get glass: %w", err)
		}
		b.GlassID = input.GlassID
	}

	updated, err := s.beers.Update(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("update beer: %w", err)
	}

	s.log.InfoContext(ctx, "beer updated", slog.String("beer_id", updated.ID.String()))

	return updated, nil
}

// DeleteBeer removes a beer from the catalog.
func (s *Service) DeleteBeer(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("beer_id", "required")
	}
	if err := s.beers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete beer: %w", err)
	}

	s.log.InfoContext(ctx, "beer deleted", slog.String("beer_id", id.String()))
	return nil
}
