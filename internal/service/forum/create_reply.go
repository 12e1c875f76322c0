package forum

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// CreateReply adds a reply under a post and notifies the post owner by
// email, unless the owner is replying to their own post. Notification
// failures are logged and swallowed; the reply itself already committed.
func (s *Service) CreateReply(ctx context.Context, input CreateReplyInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, input.PostID, userID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	reply, err := s.comments.Create(ctx, &domain.Comment{
		ItemID:  input.PostID,
		UserID:  userID,
		Content: strings.TrimSpace(input.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}

	s.log.InfoContext(ctx, "reply created",
		slog.String("user_id", userID.String()),
		slog.String("post_id", input.PostID.String()),
		slog.String("reply_id", reply.ID.String()),
	)

	if post.UserID != userID {
		s.notifyOwner(ctx, post, userID)
	}

	return reply, nil
}

// notifyOwner emails the post owner about a new reply. Best effort only.
func (s *Service) notifyOwner(ctx context.Context, post *domain.Post, commenterID uuid.UUID) {
	owner, err := s.users.GetByID(ctx, post.UserID)
	if err != nil {
		s.log.WarnContext(ctx, "reply notification skipped",
			slog.String("post_id", post.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	commenter, err := s.users.GetByID(ctx, commenterID)
	if err != nil {
		s.log.WarnContext(ctx, "reply notification skipped",
			slog.String("post_id", post.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	err = s.mail.SendCommentNotification(ctx,
		owner.Email, owner.Username, commenter.Username,
		"post", post.Title, "/forum/posts/"+post.ID.String())
	if err != nil {
		s.log.WarnContext(ctx, "reply notification failed",
			slog.String("post_id", post.ID.String()),
			slog.String("error", err.Error()))
	}
}
