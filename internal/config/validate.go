package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("auth.session_secret must be at least 32 characters (got %d)", len(c.Auth.SessionSecret))
	}

	if !strings.HasPrefix(c.Auth.PasswordHash, "$2") {
		return fmt.Errorf("auth.password_hash must be a bcrypt hash")
	}

	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}

	if c.Auth.LoginRatePerMin <= 0 {
		return fmt.Errorf("auth.login_rate_per_min must be > 0 (got %d)", c.Auth.LoginRatePerMin)
	}

	if strings.TrimSpace(c.Household.Key) == "" {
		return fmt.Errorf("household.key must not be blank")
	}

	return nil
}
