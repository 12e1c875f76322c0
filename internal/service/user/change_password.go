package user

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// ChangePassword replaces the authenticated user's password after checking
// the current one. Every refresh token is revoked on success, so other
// sessions have to log in again.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("change password: get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return domain.NewValidationError("current_password", "wrong password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}
	hashStr := string(hash)

	updated, err := s.users.Update(ctx, userID, nil, nil, &hashStr)
	if err != nil {
		return fmt.Errorf("change password: update: %w", err)
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("change password: revoke tokens: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", userID.String()))

	s.notifyUpdated(ctx, updated)

	return nil
}
