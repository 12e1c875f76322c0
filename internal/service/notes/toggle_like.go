package notes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// ToggleLike flips the authenticated user's like on a note. The toggle and
// the recount run in one transaction so the returned count matches the
// membership it reports.
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
		liked, count, toggleErr := s.notes.ToggleLike(txCtx, input.NoteID, userID)
		if toggleErr != nil {
			return fmt.Errorf("toggle like: %w", toggleErr)
		}
		result = ToggleLikeResult{Liked: liked, LikeCount: count}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note like toggled",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
		slog.Bool("liked", result.Liked),
	)

	return &result, nil
}
