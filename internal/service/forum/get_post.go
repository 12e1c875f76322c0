package forum

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// PostDetail bundles a post with its replies for the detail view.
type PostDetail struct {
	Post    *domain.Post
	Replies []domain.Comment
}

// GetPost returns one post with its replies. Reads are open to anonymous
// visitors; LikedByMe reflects the viewer when one is authenticated.
func (s *Service) GetPost(ctx context.Context, postID uuid.UUID) (*PostDetail, error) {
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	if postID == uuid.Nil {
		return nil, domain.NewValidationError("post_id", "required")
	}

	post, err := s.posts.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	replies, err := s.comments.ListByItem(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}

	return &PostDetail{Post: post, Replies: replies}, nil
}
