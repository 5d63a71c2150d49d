package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type passwordVerifier interface {
	Verify(hash, password string) bool
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
	TTL() time.Duration
}

// Service verifies credentials and issues access tokens.
type Service struct {
	users    userRepo
	verifier passwordVerifier
	jwt      jwtManager
	log      *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, users userRepo, verifier passwordVerifier, jwt jwtManager) *Service {
	return &Service{
		users:    users,
		verifier: verifier,
		jwt:      jwt,
		log:      log.With("service", "auth"),
	}
}

// TokenResult is the outcome of a successful token request.
type TokenResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	User        *domain.User
}

// VerifyCredentials checks a username/password pair against the stored
// bcrypt hash. Unknown users and wrong passwords both yield
// ErrUnauthorized so callers cannot probe for accounts.
func (s *Service) VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !s.verifier.Verify(u.PasswordHash, password) {
		return nil, domain.ErrUnauthorized
	}

	return u, nil
}

// IssueToken verifies the credentials and returns a signed access token.
func (s *Service) IssueToken(ctx context.Context, username, password string) (*TokenResult, error) {
	u, err := s.VerifyCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.InfoContext(ctx, "access token issued",
		slog.String("user_id", u.ID.String()),
		slog.String("user_name", u.Username),
	)

	return &TokenResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwt.TTL().Seconds()),
		User:        u,
	}, nil
}
