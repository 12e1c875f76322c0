package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	domain := strings.TrimSpace(c.Community.AllowedEmailDomain)
	if domain == "" {
		return fmt.Errorf("community.allowed_email_domain must not be empty")
	}
	if strings.ContainsAny(domain, "@ ") {
		return fmt.Errorf("community.allowed_email_domain must be a bare domain (got %q)", domain)
	}
	c.Community.AllowedEmailDomain = strings.ToLower(domain)

	if c.Mail.Enabled() && c.Mail.From == "" {
		return fmt.Errorf("mail.from is required when mail.host is set")
	}

	return nil
}
