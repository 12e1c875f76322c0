package forum

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// CreatePost creates a new forum post owned by the authenticated user.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, &domain.Post{
		UserID:  userID,
		Title:   strings.TrimSpace(input.Title),
		Topic:   domain.Topic(input.Topic),
		Content: strings.TrimSpace(input.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("user_id", userID.String()),
		slog.String("post_id", post.ID.String()),
		slog.String("topic", post.Topic.String()),
	)

	return post, nil
}
