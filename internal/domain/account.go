package domain

import "strings"

const (
	PasswordMinLen = 8
	PasswordMaxLen = 128
)

// PasswordErrors checks the account password policy and returns one
// FieldError per violation. The policy rejects short passwords and
// passwords made of digits only.
func PasswordErrors(field, password string) []FieldError {
	var errs []FieldError

	if len(password) < PasswordMinLen {
		errs = append(errs, FieldError{Field: field, Message: "min 8 characters"})
	}
	if len(password) > PasswordMaxLen {
		errs = append(errs, FieldError{Field: field, Message: "max 128 characters"})
	}
	if len(password) > 0 && strings.IndexFunc(password, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		errs = append(errs, FieldError{Field: field, Message: "must not be entirely numeric"})
	}

	return errs
}

// EmailInDomain reports whether email belongs to the given domain.
// Comparison is case-insensitive; subdomains do not match.
func EmailInDomain(email, domain string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.EqualFold(email[at+1:], domain)
}
