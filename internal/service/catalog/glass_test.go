package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

func TestCreateGlass_Success(t *testing.T) {
	t.Parallel()

	glasses := &glassRepoMock{
		CreateFunc: func(_ context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error) {
			return g, nil
		},
	}

	svc := newTestService(t, &beerRepoMock{}, glasses, &userRepoMock{})

	created, err := svc.CreateGlass(context.Background(), CreateGlassInput{
		Name:     "Pint",
		Capacity: fptr(0.568),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Name != "Pint" {
		t.Errorf("unexpected name %q", created.Name)
	}
}

func TestCreateGlass_DuplicateName(t *testing.T) {
	t.Parallel()

	glasses := &glassRepoMock{
		CreateFunc: func(_ context.Context, _ *domain.BeerGlass) (*domain.BeerGlass, error) {
			return nil, domain.ErrAlreadyExists
		},
	}

	svc := newTestService(t, &beerRepoMock{}, glasses, &userRepoMock{})

	_, err := svc.CreateGlass(context.Background(), CreateGlassInput{Name: "Pint"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateGlass_InvalidCapacity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &beerRepoMock{}, &glassRepoMock{}, &userRepoMock{})

	_, err := svc.CreateGlass(context.Background(), CreateGlassInput{
		Name:     "Pint",
		Capacity: fptr(0),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateGlass_NoFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &beerRepoMock{}, &glassRepoMock{}, &userRepoMock{})

	_, err := svc.UpdateGlass(context.Background(), UpdateGlassInput{GlassID: uuid.New()})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateGlass_Partial(t *testing.T) {
	t.Parallel()

	glasses := &glassRepoMock{
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.BeerGlass, error) {
			return &domain.BeerGlass{ID: id, Name: "Pint", Capacity: fptr(0.568)}, nil
		},
		UpdateFunc: func(_ context.Context, g *domain.BeerGlass) (*domain.BeerGlass, error) {
			return g, nil
		},
	}

	svc := newTestService(t, &beerRepoMock{}, glasses, &userRepoMock{})

	updated, err := svc.UpdateGlass(context.Background(), UpdateGlassInput{
		GlassID: uuid.New(),
		Name:    strptr("Imperial Pint"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Name != "Imperial Pint" {
		t.Errorf("expected renamed glass, got %q", updated.Name)
	}
	if updated.Capacity == nil || *updated.Capacity != 0.568 {
		t.Error("expected capacity untouched")
	}
}

func TestListGlasses_SortValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &beerRepoMock{}, &glassRepoMock{}, &userRepoMock{})

	_, err := svc.ListGlasses(context.Background(), ListGlassesInput{
		Sort: domain.SortSpec{Field: "volume"},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
