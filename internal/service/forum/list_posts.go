package forum

import (
	"context"
	"fmt"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// ListPosts returns one page of posts matching the filter, newest first.
// An out-of-range page number is clamped to the nearest valid page rather
// than rejected, so stale pagination links keep working. Anonymous readers
// are allowed; LikedByMe is false for them.
func (s *Service) ListPosts(ctx context.Context, input ListPostsInput) (*domain.Page[domain.Post], error) {
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ListFilter{Search: trimOrNil(input.Search)}
	if input.Topic != nil {
		topic := domain.Topic(*input.Topic)
		filter.Topic = &topic
	}

	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	page, totalPages, offset := domain.PageBounds(total, input.Page)

	items, err := s.posts.List(ctx, filter, userID, offset, domain.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return &domain.Page[domain.Post]{
		Items:      items,
		TotalCount: total,
		PageNumber: page,
		TotalPages: totalPages,
	}, nil
}
