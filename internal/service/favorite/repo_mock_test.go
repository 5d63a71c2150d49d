package favorite

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

var _ favoriteRepo = &favoriteRepoMock{}

type favoriteRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Favorite, error)
	GetByUserBeerFunc func(ctx context.Context, userID, beerID uuid.UUID) (*domain.Favorite, error)
	CreateFunc        func(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	ListFunc          func(ctx context.Context, userID *uuid.UUID, sort domain.SortSpec) ([]*domain.Favorite, error)

	calls struct {
		Create []struct{ Favorite *domain.Favorite }
		Delete []struct{ ID uuid.UUID }
	}
	mu sync.RWMutex
}

func (mock *favoriteRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Favorite, error) {
	if mock.GetByIDFunc == nil {
		panic("favoriteRepoMock.GetByIDFunc: method is nil but favoriteRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *favoriteRepoMock) GetByUserBeer(ctx context.Context, userID, beerID uuid.UUID) (*domain.Favorite, error) {
	if mock.GetByUserBeerFunc == nil {
		panic("favoriteRepoMock.GetByUserBeerFunc: method is nil but favoriteRepo.GetByUserBeer was just called")
	}
	return mock.GetByUserBeerFunc(ctx, userID, beerID)
}

func (mock *favoriteRepoMock) Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	if mock.CreateFunc == nil {
		panic("favoriteRepoMock.CreateFunc: method is nil but favoriteRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Favorite *domain.Favorite }{Favorite: f})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *favoriteRepoMock) CreateCalls() []struct{ Favorite *domain.Favorite } {
	mock.mu.RLock()
	calls := mock.calls.Create
	mock.mu.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("favoriteRepoMock.DeleteFunc: method is nil but favoriteRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *favoriteRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.mu.RLock()
	calls := mock.calls.Delete
	mock.mu.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) List(ctx context.Context, userID *uuid.UUID, sort domain.SortSpec) ([]*domain.Favorite, error) {
	if mock.ListFunc == nil {
		panic("favoriteRepoMock.ListFunc: method is nil but favoriteRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID, sort)
}

var _ beerRepo = &beerRepoMock{}

type beerRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Beer, error)
}

func (mock *beerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error) {
	if mock.GetByIDFunc == nil {
		panic("beerRepoMock.GetByIDFunc: method is nil but beerRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}
