// Package user implements account profile operations: viewing and editing
// the profile, changing the password and deleting the account.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

type notifier interface {
	SendAccountUpdated(ctx context.Context, to, username string) error
}

// Service provides account operations.
type Service struct {
	users         userRepo
	tokens        tokenRepo
	mail          notifier
	log           *slog.Logger
	hashCost      int
	allowedDomain string
}

// NewService creates a new account service. allowedDomain constrains what a
// member may change their email to; hashCost is the bcrypt cost for new
// password hashes.
func NewService(
	log *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	mail notifier,
	hashCost int,
	allowedDomain string,
) *Service {
	return &Service{
		users:         users,
		tokens:        tokens,
		mail:          mail,
		log:           log.With("service", "user"),
		hashCost:      hashCost,
		allowedDomain: allowedDomain,
	}
}

// notifyUpdated emails the account owner that their details changed.
// Best effort only.
func (s *Service) notifyUpdated(ctx context.Context, u *domain.User) {
	if err := s.mail.SendAccountUpdated(ctx, u.Email, u.Username); err != nil {
		s.log.WarnContext(ctx, "account update notification failed",
			slog.String("user_id", u.ID.String()),
			slog.String("error", err.Error()))
	}
}
