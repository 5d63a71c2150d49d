package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Limits.validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}

	return nil
}

func (l *LimitsConfig) validate() error {
	if l.ReviewWindow <= 0 {
		return fmt.Errorf("review_window must be > 0 (got %v)", l.ReviewWindow)
	}
	if l.BeerAddWindow <= 0 {
		return fmt.Errorf("beer_add_window must be > 0 (got %v)", l.BeerAddWindow)
	}
	if l.DescriptionMaxLen <= 0 {
		return fmt.Errorf("description_max_len must be > 0 (got %d)", l.DescriptionMaxLen)
	}
	if l.SummaryRetryAttempts < 1 {
		return fmt.Errorf("summary_retry_attempts must be >= 1 (got %d)", l.SummaryRetryAttempts)
	}
	return nil
}
