package notes

import (
	"context"
	"fmt"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// ListNotes returns one page of notes matching the filter, newest first.
// Out-of-range page numbers are clamped to the nearest valid page.
// Anonymous readers are allowed; LikedByMe is false for them.
func (s *Service) ListNotes(ctx context.Context, input ListNotesInput) (*domain.Page[domain.Note], error) {
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ListFilter{Search: trimOrNil(input.Search)}
	if input.Department != nil {
		dept := domain.Department(*input.Department)
		filter.Department = &dept
	}

	total, err := s.notes.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}

	page, totalPages, offset := domain.PageBounds(total, input.Page)

	items, err := s.notes.List(ctx, filter, userID, offset, domain.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return &domain.Page[domain.Note]{
		Items:      items,
		TotalCount: total,
		PageNumber: page,
		TotalPages: totalPages,
	}, nil
}
