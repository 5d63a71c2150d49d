package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

const maxNameLen = 200

// CreateBeerInput holds the parameters for adding a beer to the catalog.
type CreateBeerInput struct {
	Name            string
	Description     *string
	IBU             *float64
	Calories        *float64
	ABV             *float64
	Style           *string
	BreweryLocation *string
	GlassID         *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateBeerInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.IBU != nil && *i.IBU < 0 {
		errs = append(errs, domain.FieldError{Field: "ibu", Message: "must not be negative"})
	}
	if i.Calories != nil && *i.Calories < 0 {
		errs = append(errs, domain.FieldError{Field: "calories", Message: "must not be negative"})
	}
	if i.ABV != nil && *i.ABV < 0 {
		errs = append(errs, domain.FieldError{Field: "abv", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBeerInput holds the parameters for a partial beer update.
// Nil fields are left unchanged.
type UpdateBeerInput struct {
	BeerID          uuid.UUID
	Name            *string
	Description     *string
	IBU             *float64
	Calories        *float64
	ABV             *float64
	Style           *string
	BreweryLocation *string
	GlassID         *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateBeerInput) Validate() error {
	var errs []domain.FieldError

	if i.BeerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "beer_id", Message: "required"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.IBU != nil && *i.IBU < 0 {
		errs = append(errs, domain.FieldError{Field: "ibu", Message: "must not be negative"})
	}
	if i.Calories != nil && *i.Calories < 0 {
		errs = append(errs, domain.FieldError{Field: "calories", Message: "must not be negative"})
	}
	if i.ABV != nil && *i.ABV < 0 {
		errs = append(errs, domain.FieldError{Field: "abv", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListBeersInput holds the sort for listing beers.
type ListBeersInput struct {
	Sort domain.SortSpec
}

// Validate checks the sort field against the beer field set.
func (i ListBeersInput) Validate() error {
	return i.Sort.Validate(domain.BeerSortFields)
}

// CreateGlassInput holds the parameters for adding a glass type.
type CreateGlassInput struct {
	Name        string
	Description *string
	Capacity    *float64
}

// Validate checks all fields and collects all errors.
func (i CreateGlassInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.Capacity != nil && *i.Capacity <= 0 {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateGlassInput holds the parameters for a partial glass update.
// Nil fields are left unchanged.
type UpdateGlassInput struct {
	GlassID     uuid.UUID
	Name        *string
	Description *string
	Capacity    *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateGlassInput) Validate() error {
	var errs []domain.FieldError

	if i.GlassID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "glass_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.Capacity == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Capacity != nil && *i.Capacity <= 0 {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListGlassesInput holds the sort for listing glass types.
type ListGlassesInput struct {
	Sort domain.SortSpec
}

// Validate checks the sort field against the glass field set.
func (i ListGlassesInput) Validate() error {
	return i.Sort.Validate(domain.GlassSortFields)
}
