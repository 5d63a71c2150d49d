package user

import (
	"strings"

	"github.com/google/uuid"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

const (
	maxUsernameLen = 64
	maxNameLen     = 100
	minPasswordLen = 8
)

// CreateUserInput holds the parameters for registering a user.
type CreateUserInput struct {
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "user_name", Message: "required"})
	}
	if len(username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "user_name", Message: "max 64 characters"})
	}
	if strings.ContainsAny(username, " \t") {
		errs = append(errs, domain.FieldError{Field: "user_name", Message: "must not contain whitespace"})
	}

	if len(strings.TrimSpace(i.FirstName)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "max 100 characters"})
	}
	if len(strings.TrimSpace(i.LastName)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "max 100 characters"})
	}

	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds the parameters for a partial user update.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	UserID    uuid.UUID
	FirstName *string
	LastName  *string
	Password  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.FirstName == nil && i.LastName == nil && i.Password == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.FirstName != nil && len(strings.TrimSpace(*i.FirstName)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "max 100 characters"})
	}
	if i.LastName != nil && len(strings.TrimSpace(*i.LastName)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "max 100 characters"})
	}
	if i.Password != nil && len(*i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListUsersInput holds the sort for listing users.
type ListUsersInput struct {
	Sort domain.SortSpec
}

// Validate checks the sort field against the user field set.
func (i ListUsersInput) Validate() error {
	return i.Sort.Validate(domain.UserSortFields)
}
