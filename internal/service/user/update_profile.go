package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// UpdateProfile edits the authenticated user's username and/or email. The
// new email must stay inside the community domain. A confirmation email goes
// to the updated address; failures there are logged, not returned.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.allowedDomain); err != nil {
		return nil, err
	}

	var username, email *string
	if input.Username != nil {
		trimmed := strings.TrimSpace(*input.Username)
		username = &trimmed
	}
	if input.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*input.Email))
		email = &normalized
	}

	updated, err := s.users.Update(ctx, userID, username, email, nil)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("email_changed", email != nil),
	)

	s.notifyUpdated(ctx, updated)

	return updated, nil
}
