package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

type favoriteRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Favorite, error)
	GetByUserBeer(ctx context.Context, userID, beerID uuid.UUID) (*domain.Favorite, error)
	Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID *uuid.UUID, sort domain.SortSpec) ([]*domain.Favorite, error)
}

type beerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error)
}

// Service provides favorite-beer bookkeeping.
type Service struct {
	favorites favoriteRepo
	beers     beerRepo
	log       *slog.Logger
}

// NewService creates a new Favorite service.
func NewService(log *slog.Logger, favorites favoriteRepo, beers beerRepo) *Service {
	return &Service{
		favorites: favorites,
		beers:     beers,
		log:       log.With("service", "favorite"),
	}
}

// ListFavoritesInput holds the filters for listing favorites.
type ListFavoritesInput struct {
	UserID *uuid.UUID
	Sort   domain.SortSpec
}

// Validate checks the sort field against the favorite field set.
func (i ListFavoritesInput) Validate() error {
	return i.Sort.Validate(domain.FavoriteSortFields)
}

// AddFavorite marks a beer as a favorite of the given user.
// A beer can be favorited at most once per user.
func (s *Service) AddFavorite(ctx context.Context, userID, beerID uuid.UUID) (*domain.Favorite, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if beerID == uuid.Nil {
		return nil, domain.NewValidationError("beer_id", "required")
	}

	if _, err := s.beers.GetByID(ctx, beerID); err != nil {
		return nil, fmt.Errorf("get beer: %w", err)
	}

	created, err := s.favorites.Create(ctx, &domain.Favorite{
		ID:     uuid.New(),
		UserID: userID,
		BeerID: beerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}

	s.log.InfoContext(ctx, "favorite added",
		slog.String("user_id", userID.String()),
		slog.String("beer_id", beerID.String()),
	)

	return created, nil
}

// RemoveFavorite unmarks a beer as a favorite of the given user.
func (s *Service) RemoveFavorite(ctx context.Context, userID, beerID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if beerID == uuid.Nil {
		return domain.NewValidationError("beer_id", "required")
	}

	fav, err := s.favorites.GetByUserBeer(ctx, userID, beerID)
	if err != nil {
		return fmt.Errorf("get favorite: %w", err)
	}
	if err := s.favorites.Delete(ctx, fav.ID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	s.log.InfoContext(ctx, "favorite removed",
		slog.String("user_id", userID.String()),
		slog.String("beer_id", beerID.String()),
	)

	return nil
}

// GetFavorite returns a favorite by its own ID.
func (s *Service) GetFavorite(ctx context.Context, id uuid.UUID) (*domain.Favorite, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("favorite_id", "required")
	}
	fav, err := s.favorites.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	return fav, nil
}

// RemoveFavoriteByID deletes a favorite by its own ID.
func (s *Service) RemoveFavoriteByID(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("favorite_id", "required")
	}
	if err := s.favorites.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	s.log.InfoContext(ctx, "favorite removed", slog.String("favorite_id", id.String()))
	return nil
}

// ListFavorites returns favorites, optionally filtered to one user.
func (s *Service) ListFavorites(ctx context.Context, input ListFavoritesInput) ([]*domain.Favorite, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	favorites, err := s.favorites.List(ctx, input.UserID, input.Sort)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

// IsFavorite reports whether the given user has favorited the beer.
func (s *Service) IsFavorite(ctx context.Context, userID, beerID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, domain.ErrUnauthorized
	}

	_, err := s.favorites.GetByUserBeer(ctx, userID, beerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get favorite: %w", err)
	}
	return true, nil
}
