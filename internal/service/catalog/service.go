package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

type beerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error)
	GetByName(ctx context.Context, name string) (*domain.Beer, error)
	Create(ctx context.Context, b *domain.Beer) (*domain.Beer, error)
	Update(ctx context.Context, b *domain.Beer) (*domain.Beer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, sort domain.SortSpec) ([]*domain.Beer, error)
}

type glassRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BeerGlass, error)
	Create(ctx context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error)
	Update(ctx context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, sort domain.SortSpec) ([]*domain.BeerGlass, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetLastBeerAdded(ctx context.Context, id uuid.UUID, at time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides beer and glass catalog management.
type Service struct {
	beers   beerRepo
	glasses glassRepo
	users   userRepo
	tx      txManager
	log     *slog.Logger

	// addWindow is the rolling period allowing one beer creation per user.
	addWindow time.Duration

	now func() time.Time
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	beers beerRepo,
	glasses glassRepo,
	users userRepo,
	tx txManager,
	addWindow time.Duration,
) *Service {
	return &Service{
		beers:     beers,
		glasses:   glasses,
		users:     users,
		tx:        tx,
		log:       log.With("service", "catalog"),
		addWindow: addWindow,
		now:       time.Now,
	}
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
