package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// DeleteAccount removes the authenticated user's account. Their posts,
// notes, comments, likes and sessions all go with it.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted", slog.String("user_id", userID.String()))

	return nil
}
