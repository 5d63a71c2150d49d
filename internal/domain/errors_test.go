package domain

import (
	"errors"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("aroma", "required")

	if got := err.Error(); got != "validation: aroma: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "aroma", Message: "required"},
		{Field: "taste", Message: "required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}

func TestRateLimitError(t *testing.T) {
	t.Parallel()

	err := NewRateLimitError(42, "only one review per user per beer per week allowed")

	if !errors.Is(err, ErrRateLimited) {
		t.Fatal("errors.Is(err, ErrRateLimited) = false")
	}

	var rle *RateLimitError
	if !errors.As(err, &rle) {
		t.Fatal("errors.As(err, *RateLimitError) = false")
	}
	if rle.RetryAfter != 42 {
		t.Fatalf("RetryAfter: got %d, want 42", rle.RetryAfter)
	}
}
