package auth

import (
	"strings"

	"github.com/campushub/campushub-backend/internal/domain"
)

const maxUsernameLen = 150

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	CaptchaToken string
	RemoteIP     string
}

// Validate validates the register input against the membership policy.
// allowedDomain is the email domain members must belong to.
func (i RegisterInput) Validate(allowedDomain string) error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 150 characters"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid address"})
	} else if !domain.EmailInDomain(i.Email, allowedDomain) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a @" + allowedDomain + " address"})
	}

	errs = append(errs, domain.PasswordErrors("password", i.Password)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the password login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
