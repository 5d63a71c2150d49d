package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	GetByIDFunc                   func(ctx context.Context, id uuid.UUID) (*domain.BeerReview, error)
	GetRecentByBeerUserFunc       func(ctx context.Context, beerID, userID uuid.UUID, after time.Time) (*domain.BeerReview, error)
	CreateFunc                    func(ctx context.Context, rv *domain.BeerReview) (*domain.BeerReview, error)
	ListFunc                      func(ctx context.Context, beerID, userID *uuid.UUID, sort domain.SortSpec) ([]*domain.BeerReview, error)
	GetSummaryByBeerFunc          func(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error)
	GetSummaryByBeerForUpdateFunc func(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error)
	CreateSummaryFunc             func(ctx context.Context, s *domain.BeerReviewSummary) (*domain.BeerReviewSummary, error)
	UpdateSummaryFunc             func(ctx context.Context, s *domain.BeerReviewSummary) (*domain.BeerReviewSummary, error)
	ListSummariesFunc             func(ctx context.Context, sort domain.SortSpec) ([]*domain.BeerReviewSummary, error)

	calls struct {
		GetRecentByBeerUser []struct {
			BeerID uuid.UUID
			UserID uuid.UUID
			After  time.Time
		}
		Create []struct {
			Review *domain.BeerReview
		}
		CreateSummary []struct {
			Summary *domain.BeerReviewSummary
		}
		UpdateSummary []struct {
			Summary *domain.BeerReviewSummary
		}
	}
	mu sync.RWMutex
}

func (mock *reviewRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.BeerReview, error) {
	if mock.GetByIDFunc == nil {
		panic("reviewRepoMock.GetByIDFunc: method is nil but reviewRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *reviewRepoMock) GetRecentByBeerUser(ctx context.Context, beerID, userID uuid.UUID, after time.Time) (*domain.BeerReview, error) {
	if mock.GetRecentByBeerUserFunc == nil {
		panic("reviewRepoMock.GetRecentByBeerUserFunc: method is nil but reviewRepo.GetRecentByBeerUser was just called")
	}
	callInfo := struct {
		BeerID uuid.UUID
		UserID uuid.UUID
		After  time.Time
	}{BeerID: beerID, UserID: userID, After: after}
	mock.mu.Lock()
	mock.calls.GetRecentByBeerUser = append(mock.calls.GetRecentByBeerUser, callInfo)
	mock.mu.Unlock()
	return mock.GetRecentByBeerUserFunc(ctx, beerID, userID, after)
}

func (mock *reviewRepoMock) GetRecentByBeerUserCalls() []struct {
	BeerID uuid.UUID
	UserID uuid.UUID
	After  time.Time
} {
	mock.mu.RLock()
	calls := mock.calls.GetRecentByBeerUser
	mock.mu.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Create(ctx context.Context, rv *domain.BeerReview) (*domain.BeerReview, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Review *domain.BeerReview
	}{Review: rv})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, rv)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Review *domain.BeerReview
} {
	mock.mu.RLock()
	calls := mock.calls.Create
	mock.mu.RUnlock()
	return calls
}

func (mock *reviewRepoMock) List(ctx context.Context, beerID, userID *uuid.UUID, sort domain.SortSpec) ([]*domain.BeerReview, error) {
	if mock.ListFunc == nil {
		panic("reviewRepoMock.ListFunc: method is nil but reviewRepo.List was just called")
	}
	return mock.ListFunc(ctx, beerID, userID, sort)
}

func (mock *reviewRepoMock) GetSummaryByBeer(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error) {
	if mock.GetSummaryByBeerFunc == nil {
		panic("reviewRepoMock.GetSummaryByBeerFunc: method is nil but reviewRepo.GetSummaryByBeer was just called")
	}
	return mock.GetSummaryByBeerFunc(ctx, beerID)
}

func (mock *reviewRepoMock) GetSummaryByBeerForUpdate(ctx context.Context, beerID uuid.UUID) (*domain.BeerReviewSummary, error) {
	if mock.GetSummaryByBeerForUpdateFunc == nil {
		panic("reviewRepoMock.GetSummaryByBeerForUpdateFunc: method is nil but reviewRepo.GetSummaryByBeerForUpdate was just called")
	}
	return mock.GetSummaryByBeerForUpdateFunc(ctx, beerID)
}

func (mock *reviewRepoMock) CreateSummary(ctx context.Context, s *domain.BeerReviewSummary) (*domain.BeerReviewSummary, error) {
	if mock.CreateSummaryFunc == nil {
		panic("reviewRepoMock.CreateSummaryFunc: method is nil but reviewRepo.CreateSummary was just called")
	}
	mock.mu.Lock()
	mock.calls.CreateSummary = append(mock.calls.CreateSummary, struct {
		Summary *domain.BeerReviewSummary
	}{Summary: s})
	mock.mu.Unlock()
	return mock.CreateSummaryFunc(ctx, s)
}

func (mock *reviewRepoMock) CreateSummaryCalls() []struct {
	Summary *domain.BeerReviewSummary
} {
	mock.mu.RLock()
	calls := mock.calls.CreateSummary
	mock.mu.RUnlock()
	return calls
}

func (mock *reviewRepoMock) UpdateSummary(ctx context.Context, s *domain.BeerReviewSummary) (*domain.BeerReviewSummary, error) {
	if mock.UpdateSummaryFunc == nil {
		panic("reviewRepoMock.UpdateSummaryFunc: method is nil but reviewRepo.UpdateSummary was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateSummary = append(mock.calls.UpdateSummary, struct {
		Summary *domain.BeerReviewSummary
	}{Summary: s})
	mock.mu.Unlock()
	return mock.UpdateSummaryFunc(ctx, s)
}

func (mock *reviewRepoMock) UpdateSummaryCalls() []struct {
	Summary *domain.BeerReviewSummary
} {
	mock.mu.RLock()
	calls := mock.calls.UpdateSummary
	mock.mu.RUnlock()
	return calls
}

func (mock *reviewRepoMock) ListSummaries(ctx context.Context, sort domain.SortSpec) ([]*domain.BeerReviewSummary, error) {
	if mock.ListSummariesFunc == nil {
		panic("reviewRepoMock.ListSummariesFunc: method is nil but reviewRepo.ListSummaries was just called")
	}
	return mock.ListSummariesFunc(ctx, sort)
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
