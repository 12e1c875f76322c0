package forum

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// DeletePost removes a post the authenticated user owns, along with its
// replies and likes. Non-owners get domain.ErrNotFound.
func (s *Service) DeletePost(ctx context.Context, input DeletePostInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, userID, input.PostID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	s.log.InfoContext(ctx, "post deleted",
		slog.String("user_id", userID.String()),
		slog.String("post_id", input.PostID.String()),
	)

	return nil
}
