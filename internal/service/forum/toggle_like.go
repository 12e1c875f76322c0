package forum

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// ToggleLike flips the authenticated user's like on a post. Liking a liked
// post removes the like; the result always reflects the state after the
// toggle. The toggle and the recount run in one transaction so the returned
// count can never drift from the membership.
func (s *Service) ToggleLike(ctx context.Context, input ToggleLikeInput) (*ToggleLikeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result ToggleLikeResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		liked, count, toggleErr := s.posts.ToggleLike(txCtx, input.PostID, userID)
		if toggleErr != nil {
			return fmt.Errorf("toggle like: %w", toggleErr)
		}
		result = ToggleLikeResult{Liked: liked, LikeCount: count}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post like toggled",
		slog.String("user_id", userID.String()),
		slog.String("post_id", input.PostID.String()),
		slog.Bool("liked", result.Liked),
	)

	return &result, nil
}
