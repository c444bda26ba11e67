package auth

import "github.com/pantryplan/pantryplan-backend/internal/domain"

// LoginInput holds the parameters for logging in.
type LoginInput struct {
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	if i.Password == "" {
		return domain.NewValidationError("password", "required")
	}
	return nil
}
