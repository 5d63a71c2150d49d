package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

func newTestService(t *testing.T, users *userRepoMock, verifier *passwordVerifierMock, jwt *jwtManagerMock) *Service {
	t.Helper()
	return NewService(slog.Default(), users, verifier, jwt)
}

func storedUser(username string) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: "bcrypt-hash",
	}
}

func TestIssueToken_Success(t *testing.T) {
	t.Parallel()

	u := storedUser("wojtek")

	users := &userRepoMock{
		GetByUsernameFunc: func(_ context.Context, username string) (*domain.User, error) {
			if username != "wojtek" {
				return nil, domain.ErrNotFound
			}
			return u, nil
		},
	}
	verifier := &passwordVerifierMock{
		VerifyFunc: func(hash, password string) bool {
			return hash == "bcrypt-hash" && password == "secret-password"
		},
	}
	jwt := &jwtManagerMock{
		GenerateAccessTokenFunc: func(userID uuid.UUID, username string) (string, error) {
			if userID != u.ID || username != "wojtek" {
				t.Error("token must carry the authenticated identity")
			}
			return "signed.jwt.token", nil
		},
		TTLFunc: func() time.Duration { return time.Hour },
	}

	svc := newTestService(t, users, verifier, jwt)

	result, err := svc.IssueToken(context.Background(), "wojtek", "secret-password")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.AccessToken != "signed.jwt.token" {
		t.Errorf("unexpected token: %q", result.AccessToken)
	}
	if result.TokenType != "Bearer" {
		t.Errorf("expected Bearer, got %q", result.TokenType)
	}
	if result.ExpiresIn != 3600 {
		t.Errorf("expected expires_in 3600, got %d", result.ExpiresIn)
	}
}

func TestIssueToken_WrongPassword(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByUsernameFunc: func(_ context.Context, username string) (*domain.User, error) {
			return storedUser(username), nil
		},
	}
	verifier := &passwordVerifierMock{
		VerifyFunc: func(_, _ string) bool { return false },
	}

	svc := newTestService(t, users, verifier, &jwtManagerMock{})

	_, err := svc.IssueToken(context.Background(), "wojtek", "wrong")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestIssueToken_UnknownUserIndistinguishable(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByUsernameFunc: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newTestService(t, users, &passwordVerifierMock{}, &jwtManagerMock{})

	_, err := svc.IssueToken(context.Background(), "nobody", "whatever")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatal("unknown users must not be distinguishable from bad passwords")
	}
}

func TestVerifyCredentials_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &userRepoMock{}, &passwordVerifierMock{}, &jwtManagerMock{})

	for _, tc := range []struct{ username, password string }{
		{"", "password"},
		{"wojtek", ""},
		{"  ", "password"},
	} {
		_, err := svc.VerifyCredentials(context.Background(), tc.username, tc.password)
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("(%q, %q): expected ErrUnauthorized, got %v", tc.username, tc.password, err)
		}
	}
}
