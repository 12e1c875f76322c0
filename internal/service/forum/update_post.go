package forum

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// UpdatePost edits a post the authenticated user owns. A post owned by
// someone else is indistinguishable from a missing one: both come back as
// domain.ErrNotFound.
func (s *Service) UpdatePost(ctx context.Context, input UpdatePostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PostUpdateParams{
		Title:   trimOrNil(input.Title),
		Content: trimOrNil(input.Content),
	}
	if input.Topic != nil {
		topic := domain.Topic(*input.Topic)
		params.Topic = &topic
	}

	updated, err := s.posts.Update(ctx, userID, input.PostID, params)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	s.log.InfoContext(ctx, "post updated",
		slog.String("user_id", userID.String()),
		slog.String("post_id", input.PostID.String()),
	)

	return updated, nil
}
