package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	return mock.GetByUsernameFunc(ctx, username)
}

var _ passwordVerifier = &passwordVerifierMock{}

type passwordVerifierMock struct {
	VerifyFunc func(hash, password string) bool
}

func (mock *passwordVerifierMock) Verify(hash, password string) bool {
	if mock.VerifyFunc == nil {
		panic("passwordVerifierMock.VerifyFunc: method is nil but passwordVerifier.Verify was just called")
	}
	return mock.VerifyFunc(hash, password)
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, username string) (string, error)
	TTLFunc                 func() time.Duration
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, username string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	return mock.GenerateAccessTokenFunc(userID, username)
}

func (mock *jwtManagerMock) TTL() time.Duration {
	if mock.TTLFunc == nil {
		panic("jwtManagerMock.TTLFunc: method is nil but jwtManager.TTL was just called")
	}
	return mock.TTLFunc()
}
