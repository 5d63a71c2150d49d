package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, sort domain.SortSpec) ([]*domain.User, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// Service provides user account management.
type Service struct {
	users  userRepo
	hasher passwordHasher
	log    *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, hasher passwordHasher) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		log:    log.With("service", "user"),
	}
}

// sanitize clears fields that must never leave the service layer.
func sanitize(u *domain.User) *domain.User {
	cp := *u
	cp.PasswordHash = ""
	return &cp
}
