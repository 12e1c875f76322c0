package user

import (
	"strings"

	"github.com/campushub/campushub-backend/internal/domain"
)

const maxUsernameLen = 150

// UpdateProfileInput holds the parameters for editing the profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Username *string
	Email    *string
}

// Validate validates the profile input against the membership policy.
func (i UpdateProfileInput) Validate(allowedDomain string) error {
	var errs []domain.FieldError

	if i.Username == nil && i.Email == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Username != nil {
		username := strings.TrimSpace(*i.Username)
		if username == "" {
			errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
		} else if len(username) > maxUsernameLen {
			errs = append(errs, domain.FieldError{Field: "username", Message: "max 150 characters"})
		}
	}
	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		if email == "" {
			errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
		} else if !domain.EmailInDomain(email, allowedDomain) {
			errs = append(errs, domain.FieldError{Field: "email", Message: "must be a @" + allowedDomain + " address"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds the parameters for a password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate checks all fields and collects all errors.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	errs = append(errs, domain.PasswordErrors("new_password", i.NewPassword)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
