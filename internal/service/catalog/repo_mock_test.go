package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

var _ beerRepo = &beerRepoMock{}

type beerRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Beer, error)
	GetByNameFunc func(ctx context.Context, name string) (*domain.Beer, error)
	CreateFunc    func(ctx context.Context, b *domain.Beer) (*domain.Beer, error)
	UpdateFunc    func(ctx context.Context, b *domain.Beer) (*domain.Beer, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	ListFunc      func(ctx context.Context, sort domain.SortSpec) ([]*domain.Beer, error)

	calls struct {
		Create []struct{ Beer *domain.Beer }
		Update []struct{ Beer *domain.Beer }
	}
	mu sync.RWMutex
}

func (mock *beerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error) {
	if mock.GetByIDFunc == nil {
		panic("beerRepoMock.GetByIDFunc: method is nil but beerRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *beerRepoMock) GetByName(ctx context.Context, name string) (*domain.Beer, error) {
	if mock.GetByNameFunc == nil {
		panic("beerRepoMock.GetByNameFunc: method is nil but beerRepo.GetByName was just called")
	}
	return mock.GetByNameFunc(ctx, name)
}

func (mock *beerRepoMock) Create(ctx context.Context, b *domain.Beer) (*domain.Beer, error) {
	if mock.CreateFunc == nil {
		panic("beerRepoMock.CreateFunc: method is nil but beerRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Beer *domain.Beer }{Beer: b})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *beerRepoMock) CreateCalls() []struct{ Beer *domain.Beer } {
	mock.mu.RLock()
	calls := mock.calls.Create
	mock.mu.RUnlock()
	return calls
}

func (mock *beerRepoMock) Update(ctx context.Context, b *domain.Beer) (*domain.Beer, error) {
	if mock.UpdateFunc == nil {
		panic("beerRepoMock.UpdateFunc: method is nil but beerRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Beer *domain.Beer }{Beer: b})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, b)
}

func (mock *beerRepoMock) UpdateCalls() []struct{ Beer *domain.Beer } {
	mock.mu.RLock()
	calls := mock.calls.Update
	mock.mu.RUnlock()
	return calls
}

func (mock *beerRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("beerRepoMock.DeleteFunc: method is nil but beerRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

func (mock *beerRepoMock) List(ctx context.Context, sort domain.SortSpec) ([]*domain.Beer, error) {
	if mock.ListFunc == nil {
		panic("beerRepoMock.ListFunc: method is nil but beerRepo.List was just called")
	}
	return mock.ListFunc(ctx, sort)
}

var _ glassRepo = &glassRepoMock{}

type glassRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.BeerGlass, error)
	CreateFunc  func(ctx context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error)
	UpdateFunc  func(ctx context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ListFunc    func(ctx context.Context, sort domain.SortSpec) ([]*domain.BeerGlass, error)
}

func (mock *glassRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.BeerGlass, error) {
	if mock.GetByIDFunc == nil {
		panic("glassRepoMock.GetByIDFunc: method is nil but glassRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *glassRepoMock) Create(ctx context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error) {
	if mock.CreateFunc == nil {
		panic("glassRepoMock.CreateFunc: method is nil but glassRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, g)
}

func (mock *glassRepoMock) Update(ctx context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error) {
	if mock.UpdateFunc == nil {
		panic("glassRepoMock.UpdateFunc: method is nil but glassRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, g)
}

func (mock *glassRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("glassRepoMock.DeleteFunc: method is nil but glassRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

func (mock *glassRepoMock) List(ctx context.Context, sort domain.SortSpec) ([]*domain.BeerGlass, error) {
	if mock.ListFunc == nil {
		panic("glassRepoMock.ListFunc: method is nil but glassRepo.List was just called")
	}
	return mock.ListFunc(ctx, sort)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetLastBeerAddedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		SetLastBeerAdded []struct {
			ID uuid.UUID
			At time.Time
		}
	}
	mu sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) SetLastBeerAdded(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.SetLastBeerAddedFunc == nil {
		panic("userRepoMock.SetLastBeerAddedFunc: method is nil but userRepo.SetLastBeerAdded was just called")
	}
	mock.mu.Lock()
	mock.calls.SetLastBeerAdded = append(mock.calls.SetLastBeerAdded, struct {
		ID uuid.UUID
		At time.Time
	}{ID: id, At: at})
	mock.mu.Unlock()
	return mock.SetLastBeerAddedFunc(ctx, id, at)
}

func (mock *userRepoMock) SetLastBeerAddedCalls() []struct {
	ID uuid.UUID
	At time.Time
} {
	mock.mu.RLock()
	calls := mock.calls.SetLastBeerAdded
	mock.mu.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
